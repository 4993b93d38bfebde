package ot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionFallback(t *testing.T) {
	toInt16 := func(x float64) int16 { return int16(math.Round(x)) }
	assert.Equal(t, int16(-120), Map(Some(-119.6), toInt16).Or(-50))
	assert.Equal(t, int16(-50), Map(None[float64](), toInt16).Or(-50))
	//
	called := false
	Map(None[int](), func(int) int { called = true; return 0 })
	assert.False(t, called, "Map must not call f for None")
	//
	zero := Some(0.0) // a present zero is not absent
	assert.True(t, zero.IsSome())
	assert.Equal(t, 0.0, zero.Or(12))
}

func TestOptionFromPtr(t *testing.T) {
	assert.True(t, FromPtr[int](nil).IsNone())
	v := 700
	o := FromPtr(&v)
	v = 400
	w, ok := o.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, 700, w, "FromPtr copies the pointee")
	assert.Equal(t, 700, o.MustUnwrap())
	assert.Panics(t, func() { None[string]().MustUnwrap() })
}
