package nib

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	s, err := c.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if s.Shape != Oval || s.Width != 60 || s.Height != 2 {
		t.Errorf("Spec() = %+v", s)
	}
	if !almostEqual(s.Angle, math.Pi/6, 1e-12) {
		t.Errorf("Angle = %v, want π/6", s.Angle)
	}
	if c.Mode != ModePreview {
		t.Errorf("Mode = %v, want preview", c.Mode)
	}
}

func TestConfigWith(t *testing.T) {
	base := DefaultConfig()
	c := base.WithShape("superellipse").WithAngle(-45).WithSize(30, 10)
	if base.Shape != Oval.String() || base.AngleDegrees != 30 || base.Width != 60 {
		t.Error("With methods modified the receiver")
	}
	s, err := c.Spec()
	if err != nil {
		t.Fatal(err)
	}
	want := Spec{Shape: Superellipse, Angle: -math.Pi / 4, Width: 30, Height: 10, Superness: 2.5}
	if s.Shape != want.Shape || !almostEqual(s.Angle, want.Angle, 1e-12) ||
		s.Width != want.Width || s.Height != want.Height || s.Superness != want.Superness {
		t.Errorf("Spec() = %+v, want %+v", s, want)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"unknown shape", DefaultConfig().WithShape("star"), ErrUnknownShape},
		{"zero width", DefaultConfig().WithSize(0, 2), ErrInvalidNibDimensions},
		{"flat superellipse", Config{Shape: "superellipse", Width: 10, Height: 5, Superness: 0.2}, ErrInvalidSuperness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}

	bad := DefaultConfig()
	bad.Mode = Mode(5)
	if err := bad.Validate(); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestConfigOptions(t *testing.T) {
	c := DefaultConfig()
	c.ShowNibFaces = true
	c.RoundCoords = true

	o := defaultPenOptions()
	for _, opt := range c.PenOptions() {
		opt(&o)
	}
	if !o.showFaces {
		t.Error("ShowNibFaces not carried into the pen options")
	}
	if !c.ReconstructOptions().RoundCoords {
		t.Error("RoundCoords not carried into the reconstruction options")
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{ModePreview: "preview", ModeTrace: "trace", Mode(9): "unknown"} {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
