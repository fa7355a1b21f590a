// Package algotranspose transposes flattened row-major matrices of any
// element type, out of place or in place with a bounded workspace, and
// builds two-axis Fourier transforms from a one-axis transform and
// intervening transposes.
//
// A rows x cols matrix stores element (r, c) at index r*cols+c. Every
// transpose moves it to index c*rows+r of a cols x rows matrix.
//
//	dst := make([]float64, rows*cols)
//	if err := algotranspose.Transpose(dst, src, rows, cols); err != nil {
//		return err
//	}
//
// The in-place engine needs only a caller-provided workspace; a larger
// workspace trades memory for fewer element swaps:
//
//	work := make([]float64, rows*cols/4)
//	err := algotranspose.TransposeInPlace(buf, work, rows, cols)
package algotranspose
