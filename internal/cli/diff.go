package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/hupe1980/sitemapgen/internal/config"
	"github.com/hupe1980/sitemapgen/internal/encode"
	"github.com/hupe1980/sitemapgen/internal/loader"
)

type diffOptions struct {
	format   string
	existing string
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <pages-file>",
		Short: "Compare regenerated output against an existing sitemap file",
		Long: `Diff regenerates the sitemap in memory and compares it against an
existing output file, printing a unified diff of any changes.

Exit codes:
  0  No differences
  1  Error
  2  Invalid arguments
  7  Validation failure
  8  Differences found`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.existing, "existing", "", "path to the existing sitemap file to diff against")
	f.StringVarP(&opts.format, "format", "f", "", "output format: xml, json, csv (default from config)")

	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, pagesPath string, opts *diffOptions) error {
	if opts.existing == "" {
		return &ExitError{Code: 2, Err: fmt.Errorf("--existing flag is required: specify the path to the existing sitemap file")}
	}

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

	generated, err := encodePages(pages, format)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(opts.existing) //nolint:gosec // user-supplied input path
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading existing sitemap %q: %w", opts.existing, err)}
	}

	if bytes.Equal(existing, generated) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No differences.")

		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: opts.existing,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("computing diff: %w", err)}
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), diff)

	return &ExitError{Code: 8, Err: fmt.Errorf("generated output differs from %s", opts.existing)}
}
