// Package imaging loads images and reads the YCbCr samples they store.
//
// JPEG/JFIF images keep their pixels as luma (Y) and chroma (Cb, Cr) planes.
// This package decodes such files without changing their color model and
// exposes the stored values at individual pixels as ycbcr.Color values.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Sampling functions are
// stateless and read-only, and can be called concurrently on the same image.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Images with no stored YCbCr samples (matches ErrNotYCbCr via errors.Is)
//   - File I/O or decoding errors during image loading
package imaging
