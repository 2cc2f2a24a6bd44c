// Package compress provides optional archival compression for UFS files.
//
// The UFS container itself is never compressed: readers of the format expect
// the plain big-endian layout. When archiving, a whole encoded document can be
// wrapped by one of the codecs here and stored with a suffix after ".ufs":
//
//	None  scan.csv.ufs        plain container
//	Zstd  scan.csv.ufs.zst    best ratio
//	S2    scan.csv.ufs.s2     fastest
//	LZ4   scan.csv.ufs.lz4    LZ4 frame, readable by the lz4 tool
//
// Usage:
//
//	archived, stats, err := compress.Compress(format.CompressionZstd, data)
//	...
//	data, err := compress.Decompress(format.CompressionFromPath(path), archived)
//
// All codecs are stateless values and safe for concurrent use.
package compress
