package ufs

import (
	"fmt"
	"os"

	"github.com/moby/sys/atomicwriter"

	"github.com/arloliu/ufsconv/compress"
	"github.com/arloliu/ufsconv/format"
	"github.com/arloliu/ufsconv/internal/hash"
	"github.com/arloliu/ufsconv/internal/options"
)

// Extension is the file name extension of a plain UFS container.
const Extension = ".ufs"

// WriteOption configures WriteFile.
type WriteOption = options.Option[*WriteConfig]

// WriteConfig holds the settings applied by WriteOption values.
type WriteConfig struct {
	compression format.CompressionType
	perm        os.FileMode
}

// WithCompression wraps the container in an archival compression codec.
// Callers are expected to append compression.Suffix() to the file name.
func WithCompression(c format.CompressionType) WriteOption {
	return options.New(func(cfg *WriteConfig) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	})
}

// WithFileMode sets the permission bits of the written file.
func WithFileMode(perm os.FileMode) WriteOption {
	return options.NoError(func(cfg *WriteConfig) {
		cfg.perm = perm
	})
}

// WriteResult reports what WriteFile stored.
type WriteResult struct {
	// Path is the written file.
	Path string
	// Size is the number of bytes stored on disk.
	Size int
	// Fingerprint is the xxHash64 of the uncompressed container.
	Fingerprint string
	// Compression describes the archival compression step.
	Compression compress.Stats
}

// WriteFile encodes doc and atomically writes it to path.
//
// Nothing is written unless encoding succeeds, and the file only appears under
// its final name once fully written.
func WriteFile(path string, doc *Document, opts ...WriteOption) (WriteResult, error) {
	cfg := &WriteConfig{compression: format.CompressionNone, perm: 0o644}
	if err := options.Apply(cfg, opts...); err != nil {
		return WriteResult{}, err
	}

	data, err := Marshal(doc)
	if err != nil {
		return WriteResult{}, err
	}

	payload, stats, err := compress.Compress(cfg.compression, data)
	if err != nil {
		return WriteResult{}, err
	}

	if err := atomicwriter.WriteFile(path, payload, cfg.perm); err != nil {
		return WriteResult{}, fmt.Errorf("write %s: %w", path, err)
	}

	return WriteResult{
		Path:        path,
		Size:        len(payload),
		Fingerprint: hash.FingerprintHex(data),
		Compression: stats,
	}, nil
}

// ReadFile reads and decodes a whole UFS file.
//
// Archives written with WithCompression are recognized by their suffix and
// decompressed before parsing. The second result is the xxHash64 fingerprint
// of the uncompressed container, matching WriteResult.Fingerprint.
func ReadFile(path string) (*Document, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	data, err := compress.Decompress(format.CompressionFromPath(path), raw)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Unmarshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	return doc, hash.FingerprintHex(data), nil
}
