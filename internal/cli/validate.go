package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sitemapgen/internal/loader"
	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <pages-file>",
		Short: "Validate the records in a pages file",
		Long: `Validate checks every record of a pages file against the sitemap
field rules: loc must be present and an absolute URI; lastmod, priority,
and changefreq are checked when present. Extension fields are never
validated.

Checking is fail-fast: the first violation is reported and the command
exits with code 7.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, pagesPath string) error {
	pages, err := loader.Load(pagesPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if err := sitemap.Validate(pages); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "validation failed: %v\n", err)

		return &ExitError{Code: 7, Err: err}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed (%d records).\n", len(pages))

	return nil
}
