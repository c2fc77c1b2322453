package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"jsonpolish/internal/config"
	perrors "jsonpolish/internal/errors"
	"jsonpolish/internal/input"
	"jsonpolish/internal/jsonvalue"
	"jsonpolish/internal/output"
	"jsonpolish/internal/slogutil"
	"jsonpolish/internal/version"
)

// newRootCmd builds a fresh command for every run so tests never share
// flag state. Flags are scanned by config.Parse, not by cobra.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json-polish [flags] [JSON|FILE]",
		Short: "json-polish - pretty-print JSON",
		Long: `json-polish reads one JSON document from an argument, a file or stdin
and prints it indented, compacted or with sorted keys.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runPolish,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func runPolish(cmd *cobra.Command, args []string) error {
	cfg, positionals, err := config.Parse(args)
	if err != nil {
		return err
	}

	logger := slogutil.ForVerbosity(cmd.ErrOrStderr(), cfg.Verbosity)
	logger.Debug("configuration",
		"version", version.Info(),
		"built", version.BuildDate,
		"indent", cfg.EffectiveIndent(),
		"sortKeys", cfg.SortKeys,
		"format", string(cfg.Format),
		"out", cfg.OutFile,
	)

	src, err := input.Resolve(positionals, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logSource(logger, src)
	if src.Blank() {
		return perrors.ErrEmpty
	}

	start := time.Now()
	v, err := jsonvalue.Decode([]byte(src.Text))
	if err != nil {
		return perrors.NewPolishError(perrors.InvalidJSON, err.Error(), err)
	}
	logger.Debug("decoded", "type", v.Type().String(), "took", time.Since(start))

	out, err := output.Render(v, cfg.RenderOptions())
	if err != nil {
		return err
	}

	if cfg.OutFile == "" {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return writeError(err)
		}
		return nil
	}
	if err := output.WriteFile(cfg.OutFile, out); err != nil {
		return writeError(err)
	}
	logger.Info("output written", "path", cfg.OutFile, "bytes", len(out))
	return nil
}

func logSource(logger *slog.Logger, src *input.Source) {
	attrs := []any{"source", src.Kind.String(), "bytes", len(src.Text)}
	if src.Path != "" {
		attrs = append(attrs, "path", src.Path)
	}
	if src.Compressed {
		attrs = append(attrs, "gzip", true)
	}
	if src.Terminal {
		attrs = append(attrs, "terminal", true)
	}
	logger.Info("input resolved", attrs...)
}

func writeError(err error) error {
	return perrors.NewPolishError(perrors.IOFailure, fmt.Sprintf("cannot write output: %v", err), err)
}
