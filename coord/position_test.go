package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixed_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 1.5, 3.14159, -123.456, 1e9} {
		f, err := ToFixed(v)
		assert.NoError(t, err)
		assert.InDelta(t, v, FromFixed(f), 1.0/Scale)
	}
}

func TestFromFloats(t *testing.T) {
	p, err := FromFloatsFull(1, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, FromRawFull(1*Scale, 2*Scale, 3*Scale), p)

	p, err = FromFloats(1, 0, 3, AxisX|AxisZ)
	assert.NoError(t, err)
	assert.Equal(t, FromRaw(1*Scale, 0, 3*Scale, AxisX|AxisZ), p)
	assert.True(t, p.Axes().Has(AxisX | AxisZ))
	_, ok := p.Y()
	assert.False(t, ok)
}

func TestFromFloats_OutOfRange(t *testing.T) {
	// largest/smallest whole coordinates that still fit once scaled
	maxCoord := float64(math.MaxInt64 / Scale)
	minCoord := float64(math.MinInt64 / Scale)

	_, err := FromFloatsFull(maxCoord, 1, 1)
	assert.NoError(t, err)
	_, err = FromFloatsFull(minCoord, 1, 1)
	assert.NoError(t, err)

	_, err = FromFloatsFull(maxCoord+2, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = FromFloatsFull(minCoord-2, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// all-or-nothing: a single bad axis fails the whole construction
	_, err = FromFloatsFull(1, maxCoord+2, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPosition_Add(t *testing.T) {
	a := FromRawFull(1*Scale, 2*Scale, 3*Scale)
	b := FromRawFull(4*Scale, 5*Scale, 6*Scale)
	assert.Equal(t, FromRawFull(5*Scale, 7*Scale, 9*Scale), a.Add(b))

	// axis absent on the right: left value passes through untouched
	b = FromRaw(4*Scale, 0, 6*Scale, AxisX|AxisZ)
	assert.Equal(t, FromRawFull(5*Scale, 2*Scale, 9*Scale), a.Add(b))

	// axis absent on the left: stays absent, not adopted from the right
	c := FromRaw(1*Scale, 0, 0, AxisX)
	assert.Equal(t, FromRaw(5*Scale, 0, 0, AxisX), c.Add(b))
}

func TestPosition_Sub(t *testing.T) {
	a := FromRawFull(5*Scale, 7*Scale, 9*Scale)
	b := FromRawFull(4*Scale, 5*Scale, 6*Scale)
	assert.Equal(t, FromRawFull(1*Scale, 2*Scale, 3*Scale), a.Sub(b))

	b = FromRaw(4*Scale, 0, 6*Scale, AxisX|AxisZ)
	assert.Equal(t, FromRawFull(1*Scale, 7*Scale, 3*Scale), a.Sub(b))

	c := FromRaw(5*Scale, 0, 0, AxisX)
	assert.Equal(t, FromRaw(1*Scale, 0, 0, AxisX), c.Sub(b))
}

func TestPosition_Mul(t *testing.T) {
	p := FromRaw(2*Scale, 0, 6*Scale, AxisX|AxisZ)

	got, err := p.Mul(1.5)
	assert.NoError(t, err)
	assert.Equal(t, FromRaw(3*Scale, 0, 9*Scale, AxisX|AxisZ), got)
	_, ok := got.Y()
	assert.False(t, ok)

	got, err = p.Mul(-2)
	assert.NoError(t, err)
	assert.Equal(t, FromRaw(-4*Scale, 0, -12*Scale, AxisX|AxisZ), got)

	_, err = FromRawFull(math.MaxInt64, 0, 0).Mul(2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = p.Mul(math.MaxFloat64)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPosition_Div(t *testing.T) {
	p := FromRawFull(3*Scale, 6*Scale, 9*Scale)

	got, err := p.Div(3)
	assert.NoError(t, err)
	assert.Equal(t, FromRawFull(1*Scale, 2*Scale, 3*Scale), got)

	q := FromRaw(0, 5*Scale, 0, AxisY)
	got, err = q.Div(2)
	assert.NoError(t, err)
	assert.Equal(t, FromRaw(0, 5*Scale/2, 0, AxisY), got)
	_, ok := got.X()
	assert.False(t, ok)

	_, err = p.Div(0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// too small to represent in fixed point
	_, err = p.Div(1e-9)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPosition_Equal(t *testing.T) {
	a := FromRawFull(1, 2, 3)
	assert.True(t, a.Equal(FromRawFull(1, 2, 3)))
	assert.False(t, a.Equal(FromRawFull(1, 2, 4)))
	// same values, different presence
	assert.False(t, a.Equal(FromRaw(1, 2, 3, AxisX|AxisY)))
}

func TestPosition_Floats(t *testing.T) {
	p, err := FromFloats(1.25, 0, -2.5, AxisX|AxisZ)
	assert.NoError(t, err)

	x, y, z, axes := p.Floats()
	assert.Equal(t, 1.25, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, -2.5, z)
	assert.Equal(t, AxisX|AxisZ, axes)
}

func TestPosition_String(t *testing.T) {
	p := FromRaw(3*Scale/2, 0, 3*Scale, AxisX|AxisZ)
	assert.Equal(t, "(1.5,_,3)", p.String())

	assert.Equal(t, "(0,0,0)", FromRawFull(0, 0, 0).String())
	assert.Equal(t, "(_,_,_)", Position{}.String())
}
