// Package ycbcr provides an immutable color value for a single pixel in the
// YCbCr color model used by JPEG/JFIF.
//
// A Color holds three float64 channels: luma (Y) and the two chroma
// components (Cb, Cr). Each channel is constrained to the closed range
// [0, 255]. Construction never fails; out-of-range input is clamped to the
// nearest bound.
//
// # Clamping
//
//   - Values below 0 become 0, values above 255 become 255.
//   - NaN becomes 0.
//   - -0 becomes +0, so that equal colors always share a hash.
//
// # Equality
//
// Colors compare by content with exact floating-point equality. Because
// clamping removes NaN and negative zero, the built-in == operator agrees
// with Equal, and a Color can be used directly as a map key.
//
// # Thread Safety
//
// Color is an immutable value type. Copies may be shared freely across
// goroutines without synchronization.
package ycbcr
