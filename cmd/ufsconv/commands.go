package main

import (
	"fmt"
	"io"
	"os"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/arloliu/ufsconv/format"
	"github.com/arloliu/ufsconv/ufs"
)

var ufsExtensions = []string{
	ufs.Extension,
	ufs.Extension + format.CompressionZstd.Suffix(),
	ufs.Extension + format.CompressionS2.Suffix(),
	ufs.Extension + format.CompressionLZ4.Suffix(),
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [FILE...]",
		Short: "Convert CSV tables to UFS files",
		Long: `Convert each CSV table to a UFS file written next to it as <FILE>.ufs,
plus the compression suffix when compression is enabled.`,
		Example: "ufsconv encode scan1.csv scan2.csv\nufsconv encode --compression zstd scan.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.inputs(cmd, args, "Select csv input files", ".csv")
			if err != nil {
				return err
			}

			_, err = a.run(cmd, files, a.conv.EncodeFile)

			return err
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode [FILE...]",
		Short:   "Convert UFS files to CSV tables",
		Long:    `Convert each UFS file (optionally compressed) to a CSV table written next to it as <FILE>.csv.`,
		Example: "ufsconv decode scan.ufs",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.inputs(cmd, args, "Select ufs input files", ufsExtensions...)
			if err != nil {
				return err
			}

			_, err = a.run(cmd, files, a.conv.DecodeFile)

			return err
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect [FILE...]",
		Short:   "Print a JSON summary of UFS files",
		Example: "ufsconv inspect scan.ufs",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.inputs(cmd, args, "Select ufs input files", ufsExtensions...)
			if err != nil {
				return err
			}

			results, runErr := a.run(cmd, files, a.conv.InspectFile)

			out, color := outputWriter(cmd)
			f := prettyjson.NewFormatter()
			f.DisabledColor = !color
			for _, res := range results {
				b, err := f.Marshal(res.Summary)
				if err != nil {
					return fmt.Errorf("format summary of %s: %w", res.Input, err)
				}
				fmt.Fprintln(out, string(b))
			}

			return runErr
		},
	}
}

// outputWriter returns the command output, made color-capable when it is
// the terminal.
func outputWriter(cmd *cobra.Command) (io.Writer, bool) {
	out := cmd.OutOrStdout()
	if out != os.Stdout {
		return out, false
	}

	return colorable.NewColorableStdout(), true
}
