// Package tsplib reads and writes 2-D Euclidean instances in the TSPLIB
// text format:
//
//	NAME : berlin52
//	TYPE : TSP
//	DIMENSION : 52
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 565.0 575.0
//	2 25.0 185.0
//	…
//	EOF
//
// Only the header keys above are interpreted; others are skipped. The node
// index column is ignored: points keep their order of appearance, which is
// the index the optimiser uses.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/psotsp/geom"
)

var (
	// ErrNoCoordSection is returned when the input has no NODE_COORD_SECTION.
	ErrNoCoordSection = errors.New("tsplib: missing NODE_COORD_SECTION")

	// ErrMalformedLine is returned for a coordinate or header line that
	// cannot be parsed.
	ErrMalformedLine = errors.New("tsplib: malformed line")

	// ErrDimensionMismatch is returned when DIMENSION disagrees with the
	// number of coordinate lines.
	ErrDimensionMismatch = errors.New("tsplib: DIMENSION does not match coordinate count")

	// ErrUnsupportedWeightType is returned for any metric other than EUC_2D.
	ErrUnsupportedWeightType = errors.New("tsplib: unsupported EDGE_WEIGHT_TYPE")
)

const (
	keyName           = "NAME"
	keyComment        = "COMMENT"
	keyType           = "TYPE"
	keyDimension      = "DIMENSION"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"
	coordSection      = "NODE_COORD_SECTION"
	eofMarker         = "EOF"

	// WeightEuclid2D is the only supported EDGE_WEIGHT_TYPE.
	WeightEuclid2D = "EUC_2D"
)

// Instance is a parsed TSPLIB file.
type Instance struct {
	Name           string
	Comment        string
	Type           string
	Dimension      int
	EdgeWeightType string
	Points         []geom.Point
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	inst, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Read parses a TSPLIB instance. Parsing stops at an EOF line or at the end
// of input, whichever comes first. The returned points have passed
// geom.Validate.
func Read(r io.Reader) (*Instance, error) {
	var (
		inst    Instance
		sc      = bufio.NewScanner(r)
		lineNo  int
		line    string
		inCoord bool
		found   bool
		err     error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == eofMarker {
			break
		}
		if inCoord {
			var p geom.Point
			if p, err = parseCoord(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			inst.Points = append(inst.Points, p)
			continue
		}
		if line == coordSection {
			inCoord, found = true, true
			continue
		}
		if err = inst.parseHeader(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	if !found {
		return nil, ErrNoCoordSection
	}
	if inst.EdgeWeightType != "" && inst.EdgeWeightType != WeightEuclid2D {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedWeightType, inst.EdgeWeightType)
	}
	if inst.Dimension > 0 && inst.Dimension != len(inst.Points) {
		return nil, fmt.Errorf("%w: DIMENSION %d, %d coordinates", ErrDimensionMismatch, inst.Dimension, len(inst.Points))
	}
	if err = geom.Validate(inst.Points); err != nil {
		return nil, err
	}

	return &inst, nil
}

// parseHeader interprets a "KEY : VALUE" line. Unknown keys and lines
// without a colon (e.g. other section names) are ignored.
func (inst *Instance) parseHeader(line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case keyName:
		inst.Name = value
	case keyComment:
		inst.Comment = value
	case keyType:
		inst.Type = value
	case keyEdgeWeightType:
		inst.EdgeWeightType = value
	case keyDimension:
		d, err := strconv.Atoi(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: DIMENSION %q", ErrMalformedLine, value)
		}
		inst.Dimension = d
	}

	return nil
}

// parseCoord parses "index x y".
func parseCoord(line string) (geom.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return geom.Point{}, fmt.Errorf("%w: want \"index x y\", got %q", ErrMalformedLine, line)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: x %q", ErrMalformedLine, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: y %q", ErrMalformedLine, fields[2])
	}

	return geom.Point{X: x, Y: y}, nil
}

// Write emits pts as an EUC_2D instance named name, with 1-based node
// indices, so Read(Write(pts)) yields pts again.
func Write(w io.Writer, name string, pts []geom.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s : %s\n", keyName, name)
	fmt.Fprintf(bw, "%s : TSP\n", keyType)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, len(pts))
	fmt.Fprintf(bw, "%s : %s\n", keyEdgeWeightType, WeightEuclid2D)
	fmt.Fprintln(bw, coordSection)
	for i, p := range pts {
		fmt.Fprintf(bw, "%d %s %s\n", i+1,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	fmt.Fprintln(bw, eofMarker)

	return bw.Flush()
}
