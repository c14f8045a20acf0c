// Package glyph loads glyph outlines from TrueType and OpenType fonts as nib
// path events, ready to be stroked by a nib.Pen.
//
// Two loaders are provided: SFNTSource reads outlines through
// golang.org/x/image/font/sfnt, GoTextSource through
// github.com/go-text/typesetting. Both return coordinates in font units with
// y increasing upward, and close every contour explicitly.
package glyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/nib"
)

var (
	// ErrNoGlyph is returned when the font has no glyph for a rune.
	ErrNoGlyph = errors.New("glyph: rune not mapped by font")

	// ErrNoOutline is returned for glyphs without vector contours, such as
	// spaces or bitmap glyphs.
	ErrNoOutline = errors.New("glyph: glyph has no outline")
)

// outlineCacheSize bounds the per-source outline memo.
const outlineCacheSize = 256

// Source loads glyph outlines.
type Source interface {
	// Outline returns the contours of the glyph mapped to r.
	Outline(r rune) ([]nib.PathEvent, error)
	// UnitsPerEm returns the font design grid size.
	UnitsPerEm() int
}

// Loader names an outline loader implementation.
type Loader string

const (
	LoaderSFNT   Loader = "sfnt"
	LoaderGoText Loader = "gotext"
)

// Open parses font data with the named loader.
func Open(data []byte, loader Loader) (Source, error) {
	switch Loader(strings.ToLower(string(loader))) {
	case LoaderSFNT, "":
		return NewSFNTSource(data)
	case LoaderGoText:
		return NewGoTextSource(data)
	default:
		return nil, fmt.Errorf("glyph: unknown loader %q", loader)
	}
}

// contourBuilder turns a stream of outline segments into path events,
// closing each contour before the next one starts and at the end.
type contourBuilder struct {
	events []nib.PathEvent
	open   bool
}

func (b *contourBuilder) moveTo(p nib.Point) {
	b.close()
	b.events = append(b.events, nib.MoveTo{Point: p})
	b.open = true
}

func (b *contourBuilder) lineTo(p nib.Point) {
	b.events = append(b.events, nib.LineTo{Point: p})
}

func (b *contourBuilder) quadTo(c, p nib.Point) {
	b.events = append(b.events, nib.QuadTo{Control: c, Point: p})
}

func (b *contourBuilder) curveTo(c1, c2, p nib.Point) {
	b.events = append(b.events, nib.CurveTo{Control1: c1, Control2: c2, Point: p})
}

func (b *contourBuilder) close() {
	if b.open {
		b.events = append(b.events, nib.ClosePath{})
		b.open = false
	}
}

func (b *contourBuilder) finish() []nib.PathEvent {
	b.close()
	return b.events
}
