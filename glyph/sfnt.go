package glyph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/nib"
	"github.com/gogpu/nib/internal/cache"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTSource loads outlines with golang.org/x/image/font/sfnt.
//
// SFNTSource is safe for concurrent use.
type SFNTSource struct {
	font *sfnt.Font
	upem int

	mu  sync.Mutex // guards buf
	buf sfnt.Buffer

	outlines *cache.Cache[rune, []nib.PathEvent]
}

// NewSFNTSource parses TrueType or OpenType font data.
func NewSFNTSource(data []byte) (*SFNTSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	return &SFNTSource{
		font:     f,
		upem:     int(f.UnitsPerEm()),
		outlines: cache.New[rune, []nib.PathEvent](outlineCacheSize),
	}, nil
}

// UnitsPerEm returns the font design grid size.
func (s *SFNTSource) UnitsPerEm() int { return s.upem }

// Outline returns the contours of the glyph for r in font units, y up.
func (s *SFNTSource) Outline(r rune) ([]nib.PathEvent, error) {
	if events, ok := s.outlines.Get(r); ok {
		return events, nil
	}
	events, err := s.load(r)
	if err != nil {
		return nil, err
	}
	s.outlines.Set(r, events)
	return events, nil
}

func (s *SFNTSource) load(r rune) ([]nib.PathEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}

	// A ppem equal to the em size yields coordinates in font units.
	ppem := fixed.I(s.upem)
	segments, err := s.font.LoadGlyph(&s.buf, gid, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, fmt.Errorf("%w: %q is a color glyph", ErrNoOutline, r)
		}
		return nil, fmt.Errorf("glyph: load %q: %w", r, err)
	}
	if len(segments) == 0 {
		nib.Logger().Warn("glyph: no outline", "rune", string(r), "gid", gid)
		return nil, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}

	var b contourBuilder
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fromFixed(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.lineTo(fromFixed(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(fromFixed(seg.Args[0]), fromFixed(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.curveTo(fromFixed(seg.Args[0]), fromFixed(seg.Args[1]), fromFixed(seg.Args[2]))
		}
	}
	return b.finish(), nil
}

// fromFixed converts a 26.6 point from sfnt's y-down space to y-up units.
func fromFixed(p fixed.Point26_6) nib.Point {
	return nib.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
