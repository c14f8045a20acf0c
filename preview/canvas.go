// Package preview rasterizes nib stroke patches into an image as they are
// produced, the way a host draws the stroke while the pen moves.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/nib"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Default ink colours: swept patches are translucent black so overlaps
// darken, nib faces a light red.
var (
	DefaultInk  = color.NRGBA{A: 128}
	DefaultFace = color.NRGBA{R: 220, G: 40, B: 40, A: 96}
)

// Canvas is a nib.Sink that fills every patch into an RGBA image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img   *image.RGBA
	view  f64.Aff3
	ink   image.Image
	face  image.Image
	rast  vector.Rasterizer
	count int
}

// NewCanvas creates a white canvas of the given size. view maps path
// coordinates to pixels.
func NewCanvas(width, height int, view f64.Aff3) *Canvas {
	c := &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		view: view,
		ink:  image.NewUniform(DefaultInk),
		face: image.NewUniform(DefaultFace),
	}
	draw.Draw(c.img, c.img.Bounds(), image.White, image.Point{}, draw.Src)
	return c
}

// SetInk sets the colours for swept patches and nib faces.
func (c *Canvas) SetInk(ink, face color.Color) {
	c.ink = image.NewUniform(ink)
	c.face = image.NewUniform(face)
}

// FitView returns the transform that maps bounds, given y-up, into a
// width by height image with margin pixels on every side, preserving the
// aspect ratio and centring the content.
func FitView(bounds nib.Rect, width, height int, margin float64) f64.Aff3 {
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin
	bw, bh := bounds.Width(), bounds.Height()
	s := 1.0
	switch {
	case bw > 0 && bh > 0:
		s = math.Min(w/bw, h/bh)
	case bw > 0:
		s = w / bw
	case bh > 0:
		s = h / bh
	}
	dx := margin + 0.5*(w-s*bw) - s*bounds.Min.X
	dy := margin + 0.5*(h-s*bh) + s*bounds.Max.Y
	return f64.Aff3{
		s, 0, dx,
		0, -s, dy,
	}
}

// StrokePatch fills p.
func (c *Canvas) StrokePatch(p nib.Patch) {
	if p.Len() < 2 {
		nib.Logger().Debug("preview: patch skipped", "vertices", p.Len())
		return
	}
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.DrawOp = draw.Over

	start := c.apply(p.Vertices[0].Pt)
	c.rast.MoveTo(start[0], start[1])
	for _, v := range p.Vertices[1:] {
		pt := c.apply(v.Pt)
		if v.Curve {
			c1, c2 := c.apply(v.C1), c.apply(v.C2)
			c.rast.CubeTo(c1[0], c1[1], c2[0], c2[1], pt[0], pt[1])
		} else {
			c.rast.LineTo(pt[0], pt[1])
		}
	}
	c.rast.ClosePath()

	src := c.ink
	if p.Face {
		src = c.face
	}
	c.rast.Draw(c.img, b, src, image.Point{})
	c.count++
}

// apply maps a path point to pixel coordinates.
func (c *Canvas) apply(p nib.Point) [2]float32 {
	v := c.view
	return [2]float32{
		float32(v[0]*p.X + v[1]*p.Y + v[2]),
		float32(v[3]*p.X + v[4]*p.Y + v[5]),
	}
}

// Patches returns the number of patches drawn.
func (c *Canvas) Patches() int { return c.count }

// Image returns the canvas image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	nib.Logger().Info("preview: encoding", "patches", c.count, "size", c.img.Bounds().Size())
	return png.Encode(w, c.img)
}
