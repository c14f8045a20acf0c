package glyph

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/nib"
	"golang.org/x/image/font/gofont/goregular"
)

func openAll(t *testing.T) map[Loader]Source {
	t.Helper()
	sources := map[Loader]Source{}
	for _, l := range []Loader{LoaderSFNT, LoaderGoText} {
		src, err := Open(goregular.TTF, l)
		if err != nil {
			t.Fatalf("Open(%s): %v", l, err)
		}
		sources[l] = src
	}
	return sources
}

func countEvents(events []nib.PathEvent) (moves, closes int) {
	for _, e := range events {
		switch e.(type) {
		case nib.MoveTo:
			moves++
		case nib.ClosePath:
			closes++
		}
	}
	return moves, closes
}

func TestOutlineContours(t *testing.T) {
	tests := []struct {
		r        rune
		contours int
	}{
		{'l', 1},
		{'o', 2},
		{'B', 3},
	}
	for loader, src := range openAll(t) {
		for _, tt := range tests {
			t.Run(string(loader)+"/"+string(tt.r), func(t *testing.T) {
				events, err := src.Outline(tt.r)
				if err != nil {
					t.Fatalf("Outline: %v", err)
				}
				moves, closes := countEvents(events)
				if moves != tt.contours || closes != tt.contours {
					t.Errorf("got %d moves and %d closes, want %d of each", moves, closes, tt.contours)
				}
				if _, ok := events[0].(nib.MoveTo); !ok {
					t.Errorf("first event is %T, want MoveTo", events[0])
				}
				if _, ok := events[len(events)-1].(nib.ClosePath); !ok {
					t.Errorf("last event is %T, want ClosePath", events[len(events)-1])
				}
			})
		}
	}
}

func TestOutlineIsYUp(t *testing.T) {
	for loader, src := range openAll(t) {
		t.Run(string(loader), func(t *testing.T) {
			events, err := src.Outline('H')
			if err != nil {
				t.Fatalf("Outline: %v", err)
			}
			b := nib.PathOf(events).Bounds()
			// Capitals sit on the baseline and rise to the cap height.
			if b.Min.Y < -1 || b.Max.Y < 0.5*float64(src.UnitsPerEm()) {
				t.Errorf("bounds %+v are not baseline-up", b)
			}
		})
	}
}

func TestLoadersAgree(t *testing.T) {
	sources := openAll(t)
	if a, b := sources[LoaderSFNT].UnitsPerEm(), sources[LoaderGoText].UnitsPerEm(); a != b {
		t.Fatalf("units per em differ: %d vs %d", a, b)
	}
	for _, r := range "aHgQ&" {
		x, err := sources[LoaderSFNT].Outline(r)
		if err != nil {
			t.Fatalf("sfnt Outline(%q): %v", r, err)
		}
		y, err := sources[LoaderGoText].Outline(r)
		if err != nil {
			t.Fatalf("gotext Outline(%q): %v", r, err)
		}
		bx, by := nib.PathOf(x).Bounds(), nib.PathOf(y).Bounds()
		const eps = 0.5
		if math.Abs(bx.Min.X-by.Min.X) > eps || math.Abs(bx.Min.Y-by.Min.Y) > eps ||
			math.Abs(bx.Max.X-by.Max.X) > eps || math.Abs(bx.Max.Y-by.Max.Y) > eps {
			t.Errorf("%q bounds differ: sfnt %+v, gotext %+v", r, bx, by)
		}
	}
}

func TestOutlineErrors(t *testing.T) {
	for loader, src := range openAll(t) {
		t.Run(string(loader), func(t *testing.T) {
			if _, err := src.Outline(' '); !errors.Is(err, ErrNoOutline) {
				t.Errorf("Outline(' ') error = %v, want ErrNoOutline", err)
			}
			if _, err := src.Outline('\U0001F600'); !errors.Is(err, ErrNoGlyph) {
				t.Errorf("Outline(emoji) error = %v, want ErrNoGlyph", err)
			}
		})
	}
}

func TestOutlineCached(t *testing.T) {
	src, err := NewSFNTSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	a, err := src.Outline('e')
	if err != nil {
		t.Fatal(err)
	}
	b, _ := src.Outline('e')
	if &a[0] != &b[0] {
		t.Error("second Outline call did not reuse the cached events")
	}
	if s := src.outlines.Stats(); s.Hits != 1 {
		t.Errorf("cache hits = %d, want 1", s.Hits)
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open(goregular.TTF, "freetype"); err == nil {
		t.Error("Open with unknown loader succeeded")
	}
	for _, l := range []Loader{LoaderSFNT, LoaderGoText} {
		if _, err := Open([]byte("not a font"), l); err == nil {
			t.Errorf("Open(%s) accepted garbage", l)
		}
	}
}
