// Package convert runs the per-file conversion pipelines behind the ufsconv
// commands.
//
// Every pipeline reads its whole input before writing anything, and outputs are
// written atomically, so a failed conversion never leaves a partial file.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/moby/sys/atomicwriter"
	"github.com/rs/zerolog"

	"github.com/arloliu/ufsconv/compress"
	"github.com/arloliu/ufsconv/format"
	"github.com/arloliu/ufsconv/internal/collision"
	"github.com/arloliu/ufsconv/internal/config"
	"github.com/arloliu/ufsconv/table"
	"github.com/arloliu/ufsconv/ufs"
)

// TableExtension is appended to decoded file names.
const TableExtension = ".csv"

// Result describes one processed file.
type Result struct {
	// Input is the path as given by the caller.
	Input string
	// Output is the written file, empty for read-only operations.
	Output string
	// Size is the number of bytes written to Output.
	Size int
	// Fingerprint is the xxHash64 of the uncompressed UFS container.
	Fingerprint string
	// Compression is set when a UFS archive was written.
	Compression compress.Stats
	// Summary describes the converted document.
	Summary ufs.Summary
	// DuplicateOf names an earlier input of the same run with identical
	// UFS content.
	DuplicateOf string
}

// FileFunc processes one file.
type FileFunc func(ctx context.Context, path string) (Result, error)

// Converter converts files using one configuration.
type Converter struct {
	cfg config.Config
	log zerolog.Logger
}

// New creates a Converter. log receives one line per processed file.
func New(cfg config.Config, log zerolog.Logger) *Converter {
	return &Converter{cfg: cfg, log: log}
}

// EncodeOutputPath returns the UFS file written for a table at path.
func (c *Converter) EncodeOutputPath(path string) string {
	return path + ufs.Extension + c.cfg.Compression.Suffix()
}

// DecodeOutputPath returns the table file written for a UFS file at path.
func DecodeOutputPath(path string) string {
	return path + TableExtension
}

// EncodeFile converts the table at path into a UFS file next to it.
func (c *Converter) EncodeFile(ctx context.Context, path string) (Result, error) {
	c.log.Debug().Str("input", path).Msg("reading table")

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := table.Read(bytes.NewReader(raw), path, c.cfg.TableOptions()...)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	out := c.EncodeOutputPath(path)
	written, err := ufs.WriteFile(out, doc, c.cfg.WriteOptions()...)
	if err != nil {
		return Result{}, err
	}

	summary := doc.Summary()
	summary.Fingerprint = written.Fingerprint

	return Result{
		Input:       path,
		Output:      out,
		Size:        written.Size,
		Fingerprint: written.Fingerprint,
		Compression: written.Compression,
		Summary:     summary,
	}, nil
}

// DecodeFile converts the UFS file at path into a table next to it.
//
// Compressed archives are recognized by their suffix.
func (c *Converter) DecodeFile(ctx context.Context, path string) (Result, error) {
	c.log.Debug().Str("input", path).Msg("reading ufs")

	doc, fingerprint, err := ufs.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := table.Write(&buf, doc, c.cfg.TableOptions()...); err != nil {
		return Result{}, fmt.Errorf("render %s: %w", path, err)
	}

	out := DecodeOutputPath(path)
	if err := atomicwriter.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", out, err)
	}

	summary := doc.Summary()
	summary.Fingerprint = fingerprint

	return Result{
		Input:       path,
		Output:      out,
		Size:        buf.Len(),
		Fingerprint: fingerprint,
		Summary:     summary,
	}, nil
}

// InspectFile decodes the UFS file at path without writing anything.
func (c *Converter) InspectFile(ctx context.Context, path string) (Result, error) {
	doc, fingerprint, err := ufs.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	summary := doc.Summary()
	summary.Fingerprint = fingerprint

	return Result{Input: path, Fingerprint: fingerprint, Summary: summary}, nil
}

// Run applies fn to every path in order.
//
// A failing file is logged and skipped; the remaining files are still
// processed. Inputs whose content repeats an earlier input are flagged
// with DuplicateOf. The context is checked between files. The returned error joins
// every per-file failure and is nil only if all files succeeded.
func (c *Converter) Run(ctx context.Context, paths []string, fn FileFunc) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	var failures []error
	seen := collision.NewTracker()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", path, err))
			break
		}

		res, err := fn(ctx, path)
		if err != nil {
			c.log.Error().Err(err).Str("input", path).Msg("conversion failed")
			failures = append(failures, err)

			continue
		}

		if first, dup := seen.Track(res.Input, res.Fingerprint); dup {
			res.DuplicateOf = first
			c.log.Warn().Str("input", res.Input).Str("same_as", first).
				Str("fingerprint", res.Fingerprint).Msg("identical content")
		}

		c.logResult(res)
		results = append(results, res)
	}

	return results, errors.Join(failures...)
}

func (c *Converter) logResult(res Result) {
	s := res.Summary

	ev := c.log.Info().
		Str("input", res.Input).
		Str("version", s.Version).
		Stringer("axis1", s.Axis1).
		Stringer("axis2", s.Axis2).
		Str("data", fmt.Sprintf("%s %d x %d", s.DataLabel, s.Rows, s.Cols)).
		Str("metadata", s.Metadata).
		Str("fingerprint", res.Fingerprint)

	if res.Output == "" {
		ev.Msg("inspected")
		return
	}

	ev = ev.Str("output", res.Output).Int("bytes", res.Size)
	if alg := res.Compression.Algorithm; alg != 0 && alg != format.CompressionNone {
		ev = ev.Stringer("compression", alg).Float64("ratio", res.Compression.Ratio())
	}

	ev.Msg("converted")
}
