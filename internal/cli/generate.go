package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sitemapgen/internal/config"
	"github.com/hupe1980/sitemapgen/internal/encode"
	"github.com/hupe1980/sitemapgen/internal/loader"
	"github.com/hupe1980/sitemapgen/internal/logging"
	"github.com/hupe1980/sitemapgen/internal/output"
	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

type generateOptions struct {
	format string
	output string
	sink   string
	dryRun bool
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <pages-file>",
		Short: "Generate a sitemap from a pages file",
		Long: `Generate validates the records in a pages file and serializes them
into a sitemap.

Supported formats:
  xml   sitemaps.org 0.9 urlset document
  json  pretty-printed array of record objects
  csv   semicolon-separated values (no quoting; documented limitation)

Validation is fail-fast: the first invalid record aborts the run with
exit code 7 before anything is encoded or written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "", "output format: xml, json, csv (default from config)")
	f.StringVarP(&opts.output, "output", "o", "", "output file or directory (default: stdout)")
	f.StringVar(&opts.sink, "sink", output.SinkFile, "output sink: file, stdout")
	f.BoolVar(&opts.dryRun, "dry-run", false, "preview output without writing files")

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, pagesPath string, opts *generateOptions) error {
	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.Format
	}

	format, err := encode.ParseFormat(formatName)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	pages, err := loader.Load(pagesPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("pages loaded",
		slog.String("file", pagesPath),
		slog.Int("records", len(pages)),
	)

	payload, err := encodePages(pages, format)
	if err != nil {
		return err
	}

	if opts.dryRun {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "# Dry-run mode, output preview:")

		if _, err := cmd.OutOrStdout().Write(payload); err != nil {
			return &ExitError{Code: 6, Err: fmt.Errorf("writing output: %w", err)}
		}

		return nil
	}

	registry := output.DefaultRegistry(cmd.OutOrStdout(), output.WithLogger(logger))

	factory, err := registry.Writer(opts.sink)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	w := factory(resolveTarget(opts.output, format))
	if err := w.Write(payload); err != nil {
		return &ExitError{Code: 6, Err: fmt.Errorf("writing output: %w", err)}
	}

	if fw, ok := w.(*output.FileWriter); ok {
		logger.Info("sitemap written",
			slog.String("path", fw.Path()),
			slog.String("format", format.String()),
			slog.Int("records", len(pages)),
		)
	}

	return nil
}

// resolveTarget turns the --output value into a concrete file path. When it
// names an existing directory, the filename is derived from the format.
func resolveTarget(target string, format encode.Format) string {
	if target == "" {
		return ""
	}

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, "sitemap"+format.Ext())
	}

	return target
}

// encodePages validates pages and encodes them, mapping validation failures
// to exit code 7 and anything else to 1. Encoding happens fully in memory,
// so no sink is touched when the input is invalid.
func encodePages(pages sitemap.PageCollection, format encode.Format) ([]byte, error) {
	if err := sitemap.Validate(pages); err != nil {
		return nil, &ExitError{Code: 7, Err: err}
	}

	payload, err := encode.Encode(pages, format)
	if err != nil {
		var formatErr *encode.UnsupportedFormatError
		if errors.As(err, &formatErr) {
			return nil, &ExitError{Code: 2, Err: err}
		}

		return nil, &ExitError{Code: 1, Err: fmt.Errorf("encoding sitemap: %w", err)}
	}

	return payload, nil
}
