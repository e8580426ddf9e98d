// rsgen reads the ASCII text representation produced by rsdump and converts
// it back into a binary RangeSeries file, recomputing the container sizes.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	rangeseries "github.com/rowg/rangeseries-editing-utility"
	"github.com/rowg/rangeseries-editing-utility/compress"
)

var (
	quiet bool
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "rsgen [flags] infile outfile",
	Short: "Rebuild a CODAR RangeSeries binary file from its text form",
	Long: `rsgen reads an ASCII text infile produced by rsdump and writes a binary
RangeSeries (RS) version to outfile. Container sizes are recomputed from the
edited blocks. Files with a .zst, .lz4 or .s2 suffix are decompressed or
compressed transparently.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the line count report")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Str("app", "rsgen").Logger().Level(level)
}

func run(inPath, outPath string) error {
	logger := newLogger()

	codec, _ := compress.ForPath(inPath)
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	text, err := codec.Decompress(raw)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", inPath, err)
	}

	seq, lines, err := rangeseries.FromText(bytes.NewReader(text))
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("Read %d lines\n", lines)
	}
	logger.Debug().Int("blocks", len(seq)).Msg("text parsed")

	data, err := rangeseries.ToBinary(seq)
	if err != nil {
		return err
	}

	outCodec, _ := compress.ForPath(outPath)
	compressed, err := outCodec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", outPath, err)
	}

	return os.WriteFile(outPath, compressed, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
