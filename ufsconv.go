// Package ufsconv converts 2-D spectroscopy measurements between
// comma-separated tables and the UFS binary container.
//
// A UFS file holds one matrix of float64 values sampled along two labeled,
// unit-tagged axes (typically wavelength and delay time), a version tag and a
// free-form metadata string. All numbers are big-endian.
//
// # Basic Usage
//
// Converting a table to UFS bytes:
//
//	f, _ := os.Open("scan.csv")
//	data, err := ufsconv.TableToUFS(f, "scan.csv")
//
// and back:
//
//	err := ufsconv.UFSToTable(data, os.Stdout)
//
// # Packages
//
//   - ufs: the document model, Marshal/Unmarshal and atomic file I/O
//   - table: the CSV adapter with its rounding and number rendering policy
//   - encoding: the length-prefixed primitive codec
//   - compress: optional zstd, s2 and lz4 archives of whole UFS files
//
// The ufsconv command in cmd/ufsconv wraps these as encode, decode and
// inspect subcommands.
package ufsconv

import (
	"io"

	"github.com/arloliu/ufsconv/internal/hash"
	"github.com/arloliu/ufsconv/table"
	"github.com/arloliu/ufsconv/ufs"
)

// TableToUFS reads a comma-separated table and returns its encoded UFS bytes.
//
// Parameters:
//   - r: Table input
//   - source: Input name recorded in the metadata
//   - opts: Table options (labels, units, legacy trailer mode)
//
// Returns:
//   - []byte: The encoded container
//   - error: Any table parsing or validation error
func TableToUFS(r io.Reader, source string, opts ...table.Option) ([]byte, error) {
	doc, err := table.Read(r, source, opts...)
	if err != nil {
		return nil, err
	}

	return ufs.Marshal(doc)
}

// UFSToTable decodes UFS bytes and writes them to w as a comma-separated table.
//
// Nothing is written if data does not decode.
func UFSToTable(data []byte, w io.Writer, opts ...table.Option) error {
	doc, err := ufs.Unmarshal(data)
	if err != nil {
		return err
	}

	return table.Write(w, doc, opts...)
}

// Fingerprint returns the xxHash64 fingerprint of encoded UFS bytes as 16 hex
// digits, the same value logged by the converter and shown by inspect.
func Fingerprint(data []byte) string {
	return hash.FingerprintHex(data)
}
