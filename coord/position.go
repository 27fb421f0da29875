package coord

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
)

// Scale is the fixed-point multiplier applied to coordinate values
// before they are stored in a Position or Offset.
const Scale = 1 << 16

// ErrOutOfRange is returned when a value does not fit the fixed-point
// coordinate range.
var ErrOutOfRange = errors.New("coordinate value out of range")

// Axes names which axes a Position defines.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	AxesAll = AxisX | AxisY | AxisZ
)

// Has reports whether all axes in b are set.
func (a Axes) Has(b Axes) bool { return a&b == b }

// Position is a 3-axis coordinate where each axis is independently
// optional; an unset axis is not part of the position at all.
//
// Values are stored fixed-point rather than floating-point to preserve
// accuracy over repeated manipulation. Position is a plain value; all
// methods return new values.
type Position struct {
	x, y, z int64
	axes    Axes
}

// Offset is a relative Position.
type Offset = Position

// ToFixed converts a floating-point coordinate to the fixed-point
// representation used by Position, truncating toward zero.
func ToFixed(v float64) (int64, error) {
	v *= Scale
	// 1<<63 is the first float64 past the int64 range; -(1<<63) is
	// math.MinInt64 exactly, so it stays in range.
	if math.IsNaN(v) || v >= 1<<63 || v < -(1<<63) {
		return 0, ErrOutOfRange
	}
	return int64(v), nil
}

// FromFixed converts a stored fixed-point value back to floating point.
func FromFixed(v int64) float64 { return float64(v) / Scale }

// FromFloats creates a Position from floating-point values for the
// named axes. It fails if any named axis does not fit the fixed-point
// range; values for unnamed axes are ignored.
func FromFloats(x, y, z float64, axes Axes) (Position, error) {
	p := Position{axes: axes & AxesAll}
	var err error
	if p.axes.Has(AxisX) {
		if p.x, err = ToFixed(x); err != nil {
			return Position{}, err
		}
	}
	if p.axes.Has(AxisY) {
		if p.y, err = ToFixed(y); err != nil {
			return Position{}, err
		}
	}
	if p.axes.Has(AxisZ) {
		if p.z, err = ToFixed(z); err != nil {
			return Position{}, err
		}
	}
	return p, nil
}

// FromFloatsFull is FromFloats with all three axes present.
func FromFloatsFull(x, y, z float64) (Position, error) {
	return FromFloats(x, y, z, AxesAll)
}

// FromRaw creates a Position from already-scaled values for the named
// axes. No validation is applied.
func FromRaw(x, y, z int64, axes Axes) Position {
	p := Position{axes: axes & AxesAll}
	if p.axes.Has(AxisX) {
		p.x = x
	}
	if p.axes.Has(AxisY) {
		p.y = y
	}
	if p.axes.Has(AxisZ) {
		p.z = z
	}
	return p
}

// FromRawFull is FromRaw with all three axes present.
func FromRawFull(x, y, z int64) Position {
	return FromRaw(x, y, z, AxesAll)
}

// Axes returns the set of present axes.
func (p Position) Axes() Axes { return p.axes }

// X returns the X component as a float64 and whether it is present.
func (p Position) X() (float64, bool) { return FromFixed(p.x), p.axes.Has(AxisX) }

// Y returns the Y component as a float64 and whether it is present.
func (p Position) Y() (float64, bool) { return FromFixed(p.y), p.axes.Has(AxisY) }

// Z returns the Z component as a float64 and whether it is present.
func (p Position) Z() (float64, bool) { return FromFixed(p.z), p.axes.Has(AxisZ) }

// Floats returns all three components as float64s along with the set
// of present axes. Absent components are zero.
func (p Position) Floats() (x, y, z float64, axes Axes) {
	return FromFixed(p.x), FromFixed(p.y), FromFixed(p.z), p.axes
}

// Add combines p with o per axis: an axis is summed only when both
// sides define it, otherwise the result keeps p's axis as-is (present
// or absent).
func (p Position) Add(o Offset) Position {
	if p.axes.Has(AxisX) && o.axes.Has(AxisX) {
		p.x += o.x
	}
	if p.axes.Has(AxisY) && o.axes.Has(AxisY) {
		p.y += o.y
	}
	if p.axes.Has(AxisZ) && o.axes.Has(AxisZ) {
		p.z += o.z
	}
	return p
}

// Sub subtracts o from p per axis, with the same presence rule as Add.
func (p Position) Sub(o Offset) Position {
	if p.axes.Has(AxisX) && o.axes.Has(AxisX) {
		p.x -= o.x
	}
	if p.axes.Has(AxisY) && o.axes.Has(AxisY) {
		p.y -= o.y
	}
	if p.axes.Has(AxisZ) && o.axes.Has(AxisZ) {
		p.z -= o.z
	}
	return p
}

// Mul scales each present axis by val. Absent axes remain absent. It
// fails if val or any scaled axis does not fit the fixed-point range.
func (p Position) Mul(val float64) (Position, error) {
	f, err := ToFixed(val)
	if err != nil {
		return Position{}, err
	}
	if p.axes.Has(AxisX) {
		if p.x, err = mulFixed(p.x, f); err != nil {
			return Position{}, err
		}
	}
	if p.axes.Has(AxisY) {
		if p.y, err = mulFixed(p.y, f); err != nil {
			return Position{}, err
		}
	}
	if p.axes.Has(AxisZ) {
		if p.z, err = mulFixed(p.z, f); err != nil {
			return Position{}, err
		}
	}
	return p, nil
}

// Div divides each present axis by val, with the same rules as Mul. A
// val too small to represent in fixed point fails with ErrOutOfRange.
func (p Position) Div(val float64) (Position, error) {
	f, err := ToFixed(val)
	if err != nil {
		return Position{}, err
	}
	if p.axes.Has(AxisX) {
		if p.x, err = divFixed(p.x, f); err != nil {
			return Position{}, err
		}
	}
	if p.axes.Has(AxisY) {
		if p.y, err = divFixed(p.y, f); err != nil {
			return Position{}, err
		}
	}
	if p.axes.Has(AxisZ) {
		if p.z, err = divFixed(p.z, f); err != nil {
			return Position{}, err
		}
	}
	return p, nil
}

// Equal reports whether b has the same present axes and values as p.
func (p Position) Equal(b Position) bool {
	return p.axes == b.axes && p.x == b.x && p.y == b.y && p.z == b.z
}

// String renders the position as "(x,y,z)" with absent axes shown
// as "_".
func (p Position) String() string {
	part := func(v int64, axis Axes) string {
		if !p.axes.Has(axis) {
			return "_"
		}
		return strconv.FormatFloat(FromFixed(v), 'f', -1, 64)
	}
	return "(" + part(p.x, AxisX) + "," + part(p.y, AxisY) + "," + part(p.z, AxisZ) + ")"
}

// mulFixed multiplies two fixed-point values using a 128-bit
// intermediate product, rescaling back down by Scale.
func mulFixed(a, b int64) (int64, error) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	if hi>>16 != 0 {
		return 0, ErrOutOfRange
	}
	return signed64(hi<<48|lo>>16, neg)
}

// divFixed divides two fixed-point values using a 128-bit widened
// numerator, truncating toward zero.
func divFixed(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrOutOfRange
	}
	neg := (a < 0) != (b < 0)
	ua, ub := abs64(a), abs64(b)
	hi, lo := ua>>48, ua<<16
	if hi >= ub {
		return 0, ErrOutOfRange
	}
	q, _ := bits.Div64(hi, lo, ub)
	return signed64(q, neg)
}

func abs64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

func signed64(m uint64, neg bool) (int64, error) {
	if neg {
		if m > 1<<63 {
			return 0, ErrOutOfRange
		}
		return -int64(m), nil
	}
	if m > math.MaxInt64 {
		return 0, ErrOutOfRange
	}
	return int64(m), nil
}
