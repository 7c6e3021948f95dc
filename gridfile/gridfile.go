package gridfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/lattice"
)

var (
	// ErrNotFound is returned by Load when the file does not exist.
	ErrNotFound = errors.New("gridfile: file not found")

	// ErrInvalidFile is returned for undecodable or inconsistent documents.
	ErrInvalidFile = errors.New("gridfile: invalid lattice file")
)

// Document is the serialised form of a lattice.Geometry.
type Document struct {
	XTicks    []float64    `json:"x_ticks,omitempty" yaml:"x_ticks,omitempty"`
	YTicks    []float64    `json:"y_ticks,omitempty" yaml:"y_ticks,omitempty"`
	Bounds    []float64    `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	CellSize  float64      `json:"cell_size" yaml:"cell_size"`
	Excluded  [][2]float64 `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	RiskCells [][4]float64 `json:"risk_cells,omitempty" yaml:"risk_cells,omitempty"`
}

// Load reads and builds the geometry stored at path.
func Load(path string) (*lattice.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("gridfile: failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return Decode(f)
	}
}

// Decode builds a geometry from a JSON document.
func Decode(r io.Reader) (*lattice.Geometry, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return doc.Geometry()
}

// DecodeYAML builds a geometry from a YAML document.
func DecodeYAML(r io.Reader) (*lattice.Geometry, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return doc.Geometry()
}

// Geometry validates d and constructs the lattice it describes.
// Exactly one of the tick pair or Bounds must be present.
func (d Document) Geometry() (*lattice.Geometry, error) {
	opts := []lattice.Option{
		lattice.WithExcluded(d.excluded()...),
		lattice.WithRiskCells(d.riskCells()...),
	}

	hasTicks := len(d.XTicks) > 0 || len(d.YTicks) > 0
	switch {
	case hasTicks && len(d.Bounds) > 0:
		return nil, fmt.Errorf("%w: both ticks and bounds given", ErrInvalidFile)
	case len(d.Bounds) > 0:
		if len(d.Bounds) != 4 {
			return nil, fmt.Errorf("%w: bounds need 4 values, got %d", ErrInvalidFile, len(d.Bounds))
		}
		b := d.Bounds
		g, err := lattice.Uniform(b[0], b[1], b[2], b[3], d.CellSize, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		return g, nil
	default:
		g, err := lattice.NewGeometry(d.XTicks, d.YTicks, d.CellSize, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		return g, nil
	}
}

func (d Document) excluded() []lattice.Coordinate {
	out := make([]lattice.Coordinate, len(d.Excluded))
	for i, p := range d.Excluded {
		out[i] = lattice.Coordinate{X: p[0], Y: p[1]}
	}
	return out
}

func (d Document) riskCells() []lattice.Cell {
	out := make([]lattice.Cell, len(d.RiskCells))
	for i, q := range d.RiskCells {
		out[i] = lattice.Cell{Left: q[0], Bottom: q[1], Right: q[2], Top: q[3]}
	}
	return out
}
