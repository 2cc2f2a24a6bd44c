// Package ufs implements the UFS binary container used to archive
// two-dimensional spectroscopic measurements, such as transient absorption
// spectra indexed by wavelength and pump-probe delay.
//
// A Document holds two labeled axes, a data matrix with one row per axis1
// entry and one column per axis2 entry, and a free-form metadata string.
// Marshal and Unmarshal convert between a Document and the container bytes:
//
//	[u32 len][bytes]          version
//	[u32 len][bytes]          axis1.label
//	[u32 len][bytes]          axis1.units
//	[u32]                     axis1_count = N1
//	[f64 x N1]                axis1.values
//	[u32 len][bytes]          axis2.label
//	[u32 len][bytes]          axis2.units
//	[u32]                     axis2_count = N2
//	[f64 x N2]                axis2.values
//	[u32 len][bytes]          data_label
//	[u32]                     data_kind (reserved, 0)
//	[u32]                     matrix_rows (= N1)
//	[u32]                     matrix_cols (= N2)
//	[f64 x N2] x N1           matrix rows, row-major
//	[u32 len][bytes]          metadata
//
// Everything is big-endian, with no padding, checksum or magic number beyond
// the version string.
//
// # Shape
//
// The model keeps a single shape: the number of matrix rows and columns. The
// encoder writes it twice (next to each axis and again in front of the matrix)
// because the layout demands it. The decoder sizes the matrix from the second
// pair of fields; Validate reports any disagreement with the axis lengths.
//
// # Files
//
// ReadFile and WriteFile read and write whole files. Writes are atomic: the
// document is encoded fully in memory and moved into place only once written,
// so a failed conversion never leaves a partial file behind. WriteFile can wrap
// the container in an archival compression codec (see package compress); such
// files carry an extra suffix that ReadFile recognizes.
package ufs
