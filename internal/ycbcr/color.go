package ycbcr

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image/color"
	"math"
)

// Channel bounds shared by Y, Cb and Cr.
const (
	Min = 0.0
	Max = 255.0
)

// Color is a YCbCr pixel value with each channel in [Min, Max].
//
// The zero value is a valid color (Y=0, Cb=0, Cr=0).
type Color struct {
	y, cb, cr float64
}

// New returns a Color built from y, cb and cr, clamping each to [Min, Max].
func New(y, cb, cr float64) Color {
	return Color{y: clamp(y), cb: clamp(cb), cr: clamp(cr)}
}

// FromVector returns a Color built from a (y, cb, cr) vector.
// It applies the same clamping as New.
func FromVector(v [3]float64) Color {
	return New(v[0], v[1], v[2])
}

// FromYCbCr widens an 8-bit stdlib YCbCr sample to a Color.
func FromYCbCr(c color.YCbCr) Color {
	return Color{y: float64(c.Y), cb: float64(c.Cb), cr: float64(c.Cr)}
}

// Y returns the luma channel.
func (c Color) Y() float64 { return c.y }

// Cb returns the blue-difference chroma channel.
func (c Color) Cb() float64 { return c.cb }

// Cr returns the red-difference chroma channel.
func (c Color) Cr() float64 { return c.cr }

// Vector returns the channels as (y, cb, cr).
func (c Color) Vector() [3]float64 {
	return [3]float64{c.y, c.cb, c.cr}
}

// Equal reports whether all three channels of c and o are exactly equal.
func (c Color) Equal(o Color) bool {
	return c.y == o.y && c.cb == o.cb && c.cr == o.cr
}

// NotEqual reports whether c and o differ in any channel.
func (c Color) NotEqual(o Color) bool {
	return !c.Equal(o)
}

// Hash returns a deterministic 64-bit hash of c.
//
// Channel hashes are folded in the order Y, Cb, Cr, so permuting channels
// changes the result. The hash is unseeded and stable across runs.
func (c Color) Hash() uint64 {
	var seed uint64
	seed = combine(seed, hashFloat(c.y))
	seed = combine(seed, hashFloat(c.cb))
	seed = combine(seed, hashFloat(c.cr))
	return seed
}

// String renders c for logs and debugging. The format is not parseable.
func (c Color) String() string {
	return fmt.Sprintf("YCbCr(Y=%g, Cb=%g, Cr=%g)", c.y, c.cb, c.cr)
}

// clamp limits v to [Min, Max]. NaN and -0 map to +0.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= Min:
		return Min
	case v >= Max:
		return Max
	}
	return v
}

func hashFloat(v float64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// combine mixes h into seed (64-bit variant of boost::hash_combine).
func combine(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}
