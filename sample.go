package turtle

import "math"

// Sample is the set of element types a Grid can hold.
type Sample interface {
	bool |
		uint8 | uint16 | uint32 | uint64 | uint |
		int8 | int16 | int32 | int64 | int |
		float32 | float64
}

// DepthKind classifies sample types by how colour intensity is stored.
type DepthKind int

const (
	// DepthBoolean samples are on or off; the depth is 1.
	DepthBoolean DepthKind = iota

	// DepthInteger samples store integral intensities up to the type's
	// maximum value.
	DepthInteger

	// DepthFloat samples store intensities in [0, 1].
	DepthFloat
)

// String returns the kind name.
func (k DepthKind) String() string {
	switch k {
	case DepthBoolean:
		return "Boolean"
	case DepthInteger:
		return "Integer"
	case DepthFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Depth is the colour range of a sample type.
type Depth struct {
	Kind DepthKind

	// Max is the largest colour component value: 1 for booleans, the type's
	// maximum for integers and 1.0 for floats.
	Max float64

	// Bits is the storage size of one sample, used to pick an image format.
	Bits int
}

// DepthOf returns the depth of sample type T.
func DepthOf[T Sample]() Depth {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Depth{Kind: DepthBoolean, Max: 1, Bits: 1}
	case uint8:
		return Depth{Kind: DepthInteger, Max: math.MaxUint8, Bits: 8}
	case uint16:
		return Depth{Kind: DepthInteger, Max: math.MaxUint16, Bits: 16}
	case uint32:
		return Depth{Kind: DepthInteger, Max: math.MaxUint32, Bits: 32}
	case uint64:
		return Depth{Kind: DepthInteger, Max: math.MaxUint64, Bits: 64}
	case uint:
		return Depth{Kind: DepthInteger, Max: math.MaxUint, Bits: 64}
	case int8:
		return Depth{Kind: DepthInteger, Max: math.MaxInt8, Bits: 8}
	case int16:
		return Depth{Kind: DepthInteger, Max: math.MaxInt16, Bits: 16}
	case int32:
		return Depth{Kind: DepthInteger, Max: math.MaxInt32, Bits: 32}
	case int64:
		return Depth{Kind: DepthInteger, Max: math.MaxInt64, Bits: 64}
	case int:
		return Depth{Kind: DepthInteger, Max: math.MaxInt, Bits: 64}
	case float32:
		return Depth{Kind: DepthFloat, Max: 1, Bits: 32}
	default:
		return Depth{Kind: DepthFloat, Max: 1, Bits: 64}
	}
}

// integer is the subset of Sample with integral values.
type integer interface {
	uint8 | uint16 | uint32 | uint64 | uint |
		int8 | int16 | int32 | int64 | int
}

// saturate truncates v toward zero and clamps it to [lo, hi].
// NaN maps to zero.
func saturate[I integer](v float64, lo, hi I) I {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Trunc(v)
	if v <= float64(lo) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return I(v)
}

// converterFor returns the function that stores a float intensity as a T.
// Integers truncate toward zero and saturate, booleans are set when the
// value is non-zero, floats are stored as is.
func converterFor[T Sample]() func(float64) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return func(v float64) T { return any(v != 0 && !math.IsNaN(v)).(T) }
	case uint8:
		return func(v float64) T { return any(saturate[uint8](v, 0, math.MaxUint8)).(T) }
	case uint16:
		return func(v float64) T { return any(saturate[uint16](v, 0, math.MaxUint16)).(T) }
	case uint32:
		return func(v float64) T { return any(saturate[uint32](v, 0, math.MaxUint32)).(T) }
	case uint64:
		return func(v float64) T { return any(saturate[uint64](v, 0, math.MaxUint64)).(T) }
	case uint:
		return func(v float64) T { return any(saturate[uint](v, 0, math.MaxUint)).(T) }
	case int8:
		return func(v float64) T { return any(saturate[int8](v, math.MinInt8, math.MaxInt8)).(T) }
	case int16:
		return func(v float64) T { return any(saturate[int16](v, math.MinInt16, math.MaxInt16)).(T) }
	case int32:
		return func(v float64) T { return any(saturate[int32](v, math.MinInt32, math.MaxInt32)).(T) }
	case int64:
		return func(v float64) T { return any(saturate[int64](v, math.MinInt64, math.MaxInt64)).(T) }
	case int:
		return func(v float64) T { return any(saturate[int](v, math.MinInt, math.MaxInt)).(T) }
	case float32:
		return func(v float64) T { return any(float32(v)).(T) }
	default:
		return func(v float64) T { return any(v).(T) }
	}
}

// sampleValue returns s as a float64 intensity.
func sampleValue[T Sample](s T) float64 {
	switch v := any(s).(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case uint:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
