// Package imaging implements the pixel-buffer transform core of the editor.
//
// Images are held as Buffer values: rectangular, row-major grids of packed
// 24-bit RGB words. The transforms — Rotate, DownSample, Patch and Crop —
// operate on whole buffers; Rotate, DownSample and Crop produce a fresh
// buffer, Patch mutates its destination in place and reports how many cells
// it wrote.
//
// # Coordinate System
//
// Cells are addressed as (row, col), 0-based, with (0, 0) the top-left
// pixel. Rows grow downward and columns grow rightward.
//
// # Packed Colors
//
// A pixel is one uint32 with red in bits 23:16, green in 15:8 and blue in
// 7:0. Pack and the Unpack functions convert between the packed word and
// the Color struct; bits above 23 are zero on encode and ignored on decode.
//
// # Invalid Input Policy
//
// Transforms do not return errors for bad parameters. A rotation degree
// that is negative or not a multiple of 90, a scale factor that does not
// divide its dimension, or a patch placement that does not fit all leave
// the image unchanged — Rotate, DownSample and Crop return the original
// buffer, Patch returns 0 without touching its destination. This no-op
// contract is deliberate and callers depend on it; do not convert these
// conditions into errors.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Buffers are not internally locked:
// transforms may run concurrently on distinct buffers, but concurrent
// access to one buffer must be serialized by the caller (the editor
// session does this with a mutex).
package imaging
