package nib

// Sink receives the patches a Pen produces, one call per patch, in order.
type Sink interface {
	StrokePatch(p Patch)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(p Patch)

// StrokePatch calls f(p).
func (f SinkFunc) StrokePatch(p Patch) { f(p) }

// Mode selects what a host does with finished patches.
type Mode int

const (
	// ModePreview draws each patch as soon as it is produced.
	ModePreview Mode = iota
	// ModeTrace accumulates patches for reconstruction into a new path.
	ModeTrace
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePreview:
		return "preview"
	case ModeTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Trace accumulates the patches of one stroking pass. It is consumed once by
// Reconstruct, which empties it.
//
// A Trace is not safe for concurrent use.
type Trace struct {
	patches []Patch
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// StrokePatch appends p to the trace.
func (t *Trace) StrokePatch(p Patch) {
	t.patches = append(t.patches, p)
}

// Patches returns the accumulated patches.
func (t *Trace) Patches() []Patch {
	return t.patches
}

// Len returns the number of accumulated patches.
func (t *Trace) Len() int {
	return len(t.patches)
}

// take hands the patches to the caller and leaves the trace empty.
func (t *Trace) take() []Patch {
	p := t.patches
	t.patches = nil
	return p
}
