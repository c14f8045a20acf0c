// Command nibstroke strokes a font glyph with a calligraphic nib and writes
// either a raster preview (PNG) or the reconstructed outline (SVG).
//
// Usage:
//
//	nibstroke -glyph g -shape rectangle -angle 30 -width 60 -height 2 -out g.png
//	nibstroke -glyph g -shape superellipse -superness 3 -mode trace -out g.svg
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/nib"
	"github.com/gogpu/nib/glyph"
	"github.com/gogpu/nib/preview"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"
)

func main() {
	def := nib.DefaultConfig()
	var (
		fontPath  = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		loader    = flag.String("loader", string(glyph.LoaderSFNT), "outline loader: sfnt or gotext")
		glyphArg  = flag.String("glyph", "a", "character to stroke")
		shape     = flag.String("shape", def.Shape, "nib shape: rectangle, oval or superellipse")
		angle     = flag.Float64("angle", def.AngleDegrees, "nib angle in degrees")
		width     = flag.Float64("width", def.Width, "nib width in font units")
		height    = flag.Float64("height", def.Height, "nib height in font units")
		superness = flag.Float64("superness", def.Superness, "superellipse exponent")
		mode      = flag.String("mode", def.Mode.String(), "preview (PNG) or trace (SVG)")
		faces     = flag.Bool("faces", false, "draw the nib at every node")
		round     = flag.Bool("round", false, "round traced coordinates to integers")
		step      = flag.Float64("step", nib.DefaultCurveStep, "curve sampling step for oval and superellipse nibs")
		size      = flag.Int("size", 800, "preview image size in pixels")
		output    = flag.String("out", "", "output file (default: <glyph>.png or <glyph>.svg)")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	nib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := nib.Config{
		Shape:        *shape,
		AngleDegrees: *angle,
		Width:        *width,
		Height:       *height,
		Superness:    *superness,
		ShowNibFaces: *faces,
		RoundCoords:  *round,
	}
	switch strings.ToLower(*mode) {
	case "preview":
		cfg.Mode = nib.ModePreview
	case "trace":
		cfg.Mode = nib.ModeTrace
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid nib: %v", err)
	}

	r, err := parseGlyph(*glyphArg)
	if err != nil {
		log.Fatalf("Invalid glyph: %v", err)
	}
	events, err := loadOutline(*fontPath, glyph.Loader(*loader), r)
	if err != nil {
		log.Fatalf("Failed to load glyph: %v", err)
	}

	out := *output
	if out == "" {
		out = fmt.Sprintf("glyph-%04X%s", r, map[nib.Mode]string{nib.ModePreview: ".png", nib.ModeTrace: ".svg"}[cfg.Mode])
	}

	opts := append(cfg.PenOptions(), nib.WithCurveStep(*step))
	if cfg.Mode == nib.ModePreview {
		err = runPreview(cfg, opts, events, *size, out)
	} else {
		err = runTrace(cfg, opts, events, out)
	}
	if err != nil {
		log.Fatalf("Failed: %v", err)
	}
	log.Printf("Stroked %q with %s nib, saved to %s\n", r, cfg.Shape, out)
}

// parseGlyph normalizes s to NFC and requires a single code point, so that
// "e" followed by a combining acute accent selects the precomposed glyph.
func parseGlyph(s string) (rune, error) {
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func loadOutline(path string, loader glyph.Loader, r rune) ([]nib.PathEvent, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	src, err := glyph.Open(data, loader)
	if err != nil {
		return nil, err
	}
	return src.Outline(r)
}

func runPreview(cfg nib.Config, opts []nib.PenOption, events []nib.PathEvent, size int, out string) error {
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}
	bounds := nib.PathOf(events).Bounds()
	pad := 0.5 * max(cfg.Width, cfg.Height)
	bounds.Min = bounds.Min.Sub(nib.Pt(pad, pad))
	bounds.Max = bounds.Max.Add(nib.Pt(pad, pad))

	canvas := preview.NewCanvas(size, size, preview.FitView(bounds, size, size, 16))
	pen, err := nib.NewPen(spec, canvas, opts...)
	if err != nil {
		return err
	}
	if err := pen.Stroke(events); err != nil {
		nib.Logger().Warn("stroke finished with diagnostics", "err", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return canvas.EncodePNG(f)
}

func runTrace(cfg nib.Config, opts []nib.PenOption, events []nib.PathEvent, out string) error {
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}
	trace := nib.NewTrace()
	pen, err := nib.NewPen(spec, trace, opts...)
	if err != nil {
		return err
	}
	if err := pen.Stroke(events); err != nil {
		nib.Logger().Warn("stroke finished with diagnostics", "err", err)
	}

	path, err := nib.Reconstruct(trace, nil, cfg.ReconstructOptions())
	if path == nil {
		return err
	}
	if err != nil {
		nib.Logger().Warn("some patches kept as polygons", "err", err)
	}

	var doc string
	if strings.EqualFold(filepath.Ext(out), ".svg") {
		b := path.Bounds()
		// Flip y so the y-up outline renders upright.
		doc = fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+
			`<path transform="scale(1,-1)" fill-rule="nonzero" d="%s"/></svg>`+"\n",
			b.Min.X, -b.Max.Y, b.Width(), b.Height(), path.SVGData())
	} else {
		doc = path.SVGData() + "\n"
	}
	return os.WriteFile(out, []byte(doc), 0o644)
}
