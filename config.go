package nib

import (
	"fmt"
	"math"
)

// Config is the host-facing nib configuration: the values a settings panel
// or command line collects before a stroking pass.
type Config struct {
	// Shape is a shape name accepted by ParseShape.
	Shape string
	// AngleDegrees is the nib rotation in degrees.
	AngleDegrees float64
	// Width and Height are the full nib dimensions.
	Width, Height float64
	// Superness is the superellipse exponent.
	Superness float64

	// ShowNibFaces draws the nib outline at every node.
	ShowNibFaces bool
	// RoundCoords rounds reconstructed outlines to integer coordinates.
	RoundCoords bool
	// Mode selects between immediate preview and trace reconstruction.
	Mode Mode
}

// DefaultConfig returns a 60 by 2 oval nib at 30 degrees.
func DefaultConfig() Config {
	return Config{
		Shape:        Oval.String(),
		AngleDegrees: 30,
		Width:        60,
		Height:       2,
		Superness:    2.5,
		Mode:         ModePreview,
	}
}

// WithShape returns a copy of the config with the given shape name.
func (c Config) WithShape(name string) Config {
	c.Shape = name
	return c
}

// WithAngle returns a copy of the config with the given angle in degrees.
func (c Config) WithAngle(degrees float64) Config {
	c.AngleDegrees = degrees
	return c
}

// WithSize returns a copy of the config with the given nib dimensions.
func (c Config) WithSize(width, height float64) Config {
	c.Width = width
	c.Height = height
	return c
}

// Spec converts the config into a nib spec, angle in radians.
func (c Config) Spec() (Spec, error) {
	shape, err := ParseShape(c.Shape)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Shape:     shape,
		Angle:     c.AngleDegrees * math.Pi / 180,
		Width:     c.Width,
		Height:    c.Height,
		Superness: c.Superness,
	}, nil
}

// Validate checks the config.
func (c Config) Validate() error {
	s, err := c.Spec()
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	switch c.Mode {
	case ModePreview, ModeTrace:
	default:
		return fmt.Errorf("nib: unknown mode %d", int(c.Mode))
	}
	return nil
}

// PenOptions returns the pen options implied by the config.
func (c Config) PenOptions() []PenOption {
	return []PenOption{WithNibFaces(c.ShowNibFaces)}
}

// ReconstructOptions returns the reconstruction options implied by the
// config.
func (c Config) ReconstructOptions() ReconstructOptions {
	return ReconstructOptions{RoundCoords: c.RoundCoords}
}
