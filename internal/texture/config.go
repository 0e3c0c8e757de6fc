package texture

import (
	"fmt"
	"strconv"
	"strings"

	"ctext/internal/core"

	"github.com/pkg/errors"
)

// DistanceOperation selects how the distances from a pixel to its nearest
// texture points are folded into one value.
type DistanceOperation int

const (
	// Add sums the distances.
	Add DistanceOperation = iota
	// Subtract subtracts each subsequent distance from the running total.
	Subtract
	// Multiply multiplies the distances.
	Multiply
	// Divide divides the running total by each subsequent distance.
	Divide
)

var distanceOperationNames = [...]string{"add", "subtract", "multiply", "divide"}

// DistanceOperations lists every operation in declaration order.
func DistanceOperations() []DistanceOperation {
	return []DistanceOperation{Add, Subtract, Multiply, Divide}
}

func (op DistanceOperation) String() string {
	if op < 0 || int(op) >= len(distanceOperationNames) {
		return "DistanceOperation(" + strconv.Itoa(int(op)) + ")"
	}
	return distanceOperationNames[op]
}

// Next returns the following operation, wrapping after Divide.
func (op DistanceOperation) Next() DistanceOperation {
	return DistanceOperation((int(op) + 1) % len(distanceOperationNames))
}

// MarshalText implements encoding.TextMarshaler.
func (op DistanceOperation) MarshalText() ([]byte, error) {
	if op < 0 || int(op) >= len(distanceOperationNames) {
		return nil, errors.Errorf("unknown distance operation %d", int(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *DistanceOperation) UnmarshalText(text []byte) error {
	parsed, err := ParseDistanceOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParseDistanceOperation parses one of add, subtract, multiply or divide.
func ParseDistanceOperation(s string) (DistanceOperation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range distanceOperationNames {
		if n == name {
			return DistanceOperation(i), nil
		}
	}
	return Add, errors.Errorf("invalid distance operation %q (want one of %s)", s, strings.Join(distanceOperationNames[:], ", "))
}

// DistanceMetric selects the distance used when folding neighbor distances.
// Neighbor selection always uses the planar metric of the spatial index.
type DistanceMetric int

const (
	// Wrapped treats the grid as a torus so the texture tiles seamlessly.
	Wrapped DistanceMetric = iota
	// Planar uses plain Euclidean distance.
	Planar
)

var distanceMetricNames = [...]string{"wrapped", "planar"}

func (m DistanceMetric) String() string {
	if m < 0 || int(m) >= len(distanceMetricNames) {
		return "DistanceMetric(" + strconv.Itoa(int(m)) + ")"
	}
	return distanceMetricNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m DistanceMetric) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(distanceMetricNames) {
		return nil, errors.Errorf("unknown distance metric %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DistanceMetric) UnmarshalText(text []byte) error {
	parsed, err := ParseDistanceMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseDistanceMetric parses wrapped or planar.
func ParseDistanceMetric(s string) (DistanceMetric, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range distanceMetricNames {
		if n == name {
			return DistanceMetric(i), nil
		}
	}
	return Wrapped, errors.Errorf("invalid distance metric %q (want one of %s)", s, strings.Join(distanceMetricNames[:], ", "))
}

// Distance measures a to b under m.
func (m DistanceMetric) Distance(a, b core.Point, dims core.Dimensions) float64 {
	if m == Planar {
		return core.PlanarDistance(a, b)
	}
	return core.WrappedDistance(a, b, dims)
}

// Config holds the parameters of one texture generation. It is treated as a
// value and never mutated by the generator.
type Config struct {
	Dimensions       core.Dimensions
	InvertColors     bool
	NumNeighbors     int
	NumTexturePoints int
	DistOp           DistanceOperation
	Metric           DistanceMetric
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dimensions:       core.Dimensions{W: 256, H: 256},
		NumNeighbors:     1,
		NumTexturePoints: 1000,
		DistOp:           Add,
		Metric:           Wrapped,
	}
}

// Validate reports the first setting that cannot produce a texture.
func (c Config) Validate() error {
	if !c.Dimensions.Valid() {
		return errors.Errorf("dimensions must be positive, got %s", c.Dimensions)
	}
	if c.NumNeighbors < 1 {
		return errors.Errorf("num_neighbors must be at least 1, got %d", c.NumNeighbors)
	}
	if c.NumTexturePoints < 0 {
		return errors.Errorf("num_texture_points must not be negative, got %d", c.NumTexturePoints)
	}
	if _, err := c.DistOp.MarshalText(); err != nil {
		return err
	}
	if _, err := c.Metric.MarshalText(); err != nil {
		return err
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("Config{dimensions: %s, invert_colors: %t, num_neighbors: %d, num_texture_points: %d, dist_op: %s, metric: %s}",
		c.Dimensions, c.InvertColors, c.NumNeighbors, c.NumTexturePoints, c.DistOp, c.Metric)
}

// Parameters exports the configuration for logging and display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Image",
			Params: []core.Parameter{
				intParam("width", "Width", c.Dimensions.W),
				intParam("height", "Height", c.Dimensions.H),
				boolParam("invert_colors", "Invert colors", c.InvertColors),
			},
		},
		{
			Name: "Texture",
			Params: []core.Parameter{
				intParam("num_texture_points", "Texture points", c.NumTexturePoints),
				intParam("num_neighbors", "Neighbors", c.NumNeighbors),
				enumParam("dist_op", "Distance op", c.DistOp.String()),
				enumParam("metric", "Metric", c.Metric.String()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}

func enumParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeEnum, Value: v}
}
