// Package main provides the CLI entry point for exseries.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exseries-go/internal/config"
	"github.com/ukaji3/exseries-go/pkg/exseries"
	"github.com/ukaji3/exseries-go/pkg/exseries/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootCmd struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	rc := &rootCmd{}
	cmd := &cobra.Command{
		Use:   "exseries [flags] <input-file>",
		Short: "Convert spreadsheet time series to JSON",
		Long: `exseries reads a spreadsheet whose date column is paired with one or more
value columns and writes one JSON entry per value column.

The input file name is resolved against --input-dir; the output is written to
--output-dir with the extension replaced by .json.`,
		Args: requireInputFile,
		RunE: rc.run,
	}

	cmd.Flags().StringVarP(&rc.configFile, "config", "c", "", "Config file path (yaml, toml or json)")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func requireInputFile(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0 || args[0] == "":
		return exseries.ErrMissingArgument
	case len(args) > 1:
		return fmt.Errorf("accepts 1 input file name, received %d", len(args))
	}
	return nil
}

func (rc *rootCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), rc.configFile)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cmd.OutOrStdout(), cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	inputName := args[0]
	inputPath := filepath.Join(cfg.InputDir, inputName)
	logger.Info().Str("path", inputPath).Msg("Serialising Excel file to JSON")

	doc, err := exseries.Convert(ctx, inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	jsonData, err := output.ToJSON(doc)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	outputName := output.FileName(inputName)
	logger.Info().Str("path", filepath.Join(cfg.OutputDir, outputName)).Msg("Writing JSON to file")
	if _, err := output.WriteFile(cfg.OutputDir, outputName, jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info().Int("series", doc.SeriesCount()).Msg("Done")
	return nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}
