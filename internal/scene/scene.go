// Package scene loads declarative grid descriptions from YAML files and
// materializes them as lattice grids. It is a CLI input format only; the
// container itself stays serialization-free.
package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/lattice"
)

// Scene is a named grid layout: dimensions plus the initially occupied cells.
type Scene struct {
	Name   string
	Width  int
	Height int
	Cells  []Placement
}

// Placement puts a single value at a coordinate.
type Placement struct {
	X     int
	Y     int
	Value string
}

// Dimensions and coordinates are decoded as floats so that fractional input
// ("width: 2.5") is caught by validation instead of a YAML type error.
type rawScene struct {
	Name   string    `yaml:"name"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Cells  []rawCell `yaml:"cells"`
}

type rawCell struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value string  `yaml:"value"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scene document and validates its dimensions and
// coordinates. Fractional dimensions yield a *lattice.ValidationError;
// fractional or out-of-range coordinates surface later, from Build, as
// lattice.ErrOutOfBounds.
func Parse(data []byte) (*Scene, error) {
	var raw rawScene
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	width, err := dimension("width", raw.Width)
	if err != nil {
		return nil, err
	}
	height, err := dimension("height", raw.Height)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Name:   raw.Name,
		Width:  width,
		Height: height,
		Cells:  make([]Placement, 0, len(raw.Cells)),
	}
	for _, c := range raw.Cells {
		x, err := coordinate(c.X)
		if err != nil {
			return nil, err
		}
		y, err := coordinate(c.Y)
		if err != nil {
			return nil, err
		}
		s.Cells = append(s.Cells, Placement{X: x, Y: y, Value: c.Value})
	}
	return s, nil
}

// Build allocates the grid and applies every placement through the checked
// API, so an out-of-range placement fails with lattice.ErrOutOfBounds.
func (s *Scene) Build() (*lattice.Grid[string], error) {
	g, err := lattice.New[string](s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	for _, p := range s.Cells {
		if err := g.Put(p.X, p.Y, p.Value); err != nil {
			return nil, fmt.Errorf("cell %q: %w", p.Value, err)
		}
	}
	return g, nil
}

func dimension(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, &lattice.ValidationError{Dimension: name, Reason: lattice.ReasonNonInteger}
	}
	if v > lattice.MaxCells {
		return 0, &lattice.ValidationError{Reason: lattice.ReasonTooLarge}
	}
	if v <= 0 {
		return 0, &lattice.ValidationError{Dimension: name, Reason: lattice.ReasonNonPositive}
	}
	return int(v), nil
}

func coordinate(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, fmt.Errorf("%w: coordinate %v is not an integer", lattice.ErrOutOfBounds, v)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: coordinate %v", lattice.ErrOutOfBounds, v)
	}
	return int(v), nil
}
