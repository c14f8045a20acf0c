package glyph

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/gogpu/nib"
	"github.com/gogpu/nib/internal/cache"
)

// GoTextSource loads outlines with github.com/go-text/typesetting.
//
// GoTextSource is safe for concurrent use.
type GoTextSource struct {
	mu   sync.Mutex // font.Face is not safe for concurrent use
	face *font.Face
	upem int

	outlines *cache.Cache[rune, []nib.PathEvent]
}

// NewGoTextSource parses TrueType or OpenType font data.
func NewGoTextSource(data []byte) (*GoTextSource, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	return &GoTextSource{
		face:     face,
		upem:     int(face.Upem()),
		outlines: cache.New[rune, []nib.PathEvent](outlineCacheSize),
	}, nil
}

// UnitsPerEm returns the font design grid size.
func (s *GoTextSource) UnitsPerEm() int { return s.upem }

// Outline returns the contours of the glyph for r in font units, y up.
func (s *GoTextSource) Outline(r rune) ([]nib.PathEvent, error) {
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

func (s *GoTextSource) load(r rune) ([]nib.PathEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, ok := s.face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	outline, ok := s.face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		nib.Logger().Warn("glyph: no outline", "rune", string(r), "gid", gid)
		return nil, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}

	var b contourBuilder
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			b.moveTo(fromSegment(seg.Args[0]))
		case opentype.SegmentOpLineTo:
			b.lineTo(fromSegment(seg.Args[0]))
		case opentype.SegmentOpQuadTo:
			b.quadTo(fromSegment(seg.Args[0]), fromSegment(seg.Args[1]))
		case opentype.SegmentOpCubeTo:
			b.curveTo(fromSegment(seg.Args[0]), fromSegment(seg.Args[1]), fromSegment(seg.Args[2]))
		}
	}
	return b.finish(), nil
}

func fromSegment(p opentype.SegmentPoint) nib.Point {
	return nib.Pt(float64(p.X), float64(p.Y))
}
