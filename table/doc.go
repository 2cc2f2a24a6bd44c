// Package table maps UFS documents to and from comma-separated text tables.
//
// The table layout is:
//
//	row 1:     [placeholder, axis2 values...]
//	rows 2..N: [axis1 value, matrix row...]
//
// The placeholder cell of the header is ignored on read and written as 0.
//
// # End of the matrix
//
// The matrix runs to the end of the input. Every data row must be exactly as
// wide as the header, and every cell in it must be a decimal number; anything
// else is an error carrying the row and field position. Blank lines are
// skipped.
//
// WithLegacyTrailer restores the behavior of older converters: the first data
// row containing a non-numeric cell ends the matrix, and that row plus every
// row after it are kept as a trailer appended to the document metadata.
//
// # Precision
//
// Writing rounds axis1 values to 1 decimal place and matrix values to 7, using
// correctly rounded decimal rounding (halfway cases go to the even digit of the
// exact binary value). Axis2 values are written unrounded. Numbers are rendered
// in their shortest round-trip form, with a trailing ".0" on integral values
// and exponent notation outside [1e-4, 1e16).
package table
