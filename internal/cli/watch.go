package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sitemapgen/internal/config"
	"github.com/hupe1980/sitemapgen/internal/encode"
	"github.com/hupe1980/sitemapgen/internal/loader"
	"github.com/hupe1980/sitemapgen/internal/logging"
	"github.com/hupe1980/sitemapgen/internal/output"
	"github.com/hupe1980/sitemapgen/internal/watch"
)

type watchOptions struct {
	generateOptions

	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <pages-file>",
		Short: "Watch a pages file and regenerate the sitemap on change",
		Long: `Watch monitors a pages file and re-runs sitemap generation whenever
the file is modified. File events are debounced to avoid rapid re-runs;
each run prints a status line with the record count and output size.

A run that fails validation leaves the previous output untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "", "output format: xml, json, csv (default from config)")
	f.StringVarP(&opts.output, "output", "o", "", "output file path (required)")
	f.DurationVar(&opts.debounce, "debounce", watch.DefaultOptions().Debounce, "debounce interval for file changes")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, pagesPath string, opts *watchOptions) error {
	if opts.output == "" {
		return &ExitError{Code: 2, Err: fmt.Errorf("--output (-o) is required for watch mode")}
	}

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

	registry := output.DefaultRegistry(cmd.OutOrStdout(), output.WithLogger(logger))

	factory, err := registry.Writer(output.SinkFile)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	runFn := func(context.Context) (*watch.RunResult, error) {
		pages, loadErr := loader.Load(pagesPath)
		if loadErr != nil {
			return nil, loadErr
		}

		payload, encErr := encodePages(pages, format)
		if encErr != nil {
			return nil, encErr
		}

		if writeErr := factory(opts.output).Write(payload); writeErr != nil {
			return nil, fmt.Errorf("writing output: %w", writeErr)
		}

		return &watch.RunResult{
			Records:    len(pages),
			Bytes:      len(payload),
			OutputPath: opts.output,
		}, nil
	}

	watchOpts := watch.DefaultOptions()
	watchOpts.PagesFile = pagesPath
	watchOpts.Debounce = opts.debounce
	watchOpts.Logger = logger
	watchOpts.Out = cmd.ErrOrStderr()

	return watch.Run(ctx, watchOpts, runFn)
}
