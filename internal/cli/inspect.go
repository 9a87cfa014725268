package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sitemapgen/internal/loader"
	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

type inspectOptions struct {
	jsonOutput bool
}

func newInspectCommand() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <pages-file>",
		Short: "Summarize the records in a pages file",
		Long: `Inspect loads a pages file without validating it and prints a summary:
record count, per-field coverage of the recognized sitemap fields, and
the extension keys in first-seen order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output summary as JSON")

	return cmd
}

// fieldCoverage counts how many records carry a recognized field.
type fieldCoverage struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// pagesSummary is the inspect command's report.
type pagesSummary struct {
	Records       int             `json:"records"`
	Coverage      []fieldCoverage `json:"coverage"`
	ExtensionKeys []string        `json:"extensionKeys"`
}

func runInspect(cmd *cobra.Command, pagesPath string, opts *inspectOptions) error {
	pages, err := loader.Load(pagesPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	summary := summarize(pages)

	if opts.jsonOutput {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("marshaling summary: %w", err)}
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	}

	printSummary(cmd, summary)

	return nil
}

// summarize builds the report for a collection.
func summarize(pages sitemap.PageCollection) pagesSummary {
	summary := pagesSummary{Records: len(pages)}

	for _, name := range sitemap.CoreFields {
		count := 0

		for _, rec := range pages {
			if _, ok := rec.Get(name); ok {
				count++
			}
		}

		summary.Coverage = append(summary.Coverage, fieldCoverage{Field: name, Count: count})
	}

	core := make(map[string]struct{}, len(sitemap.CoreFields))
	for _, name := range sitemap.CoreFields {
		core[name] = struct{}{}
	}

	for _, key := range pages.Keys() {
		if _, ok := core[key]; !ok {
			summary.ExtensionKeys = append(summary.ExtensionKeys, key)
		}
	}

	return summary
}

func printSummary(cmd *cobra.Command, summary pagesSummary) {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Records:    %d\n", summary.Records)

	for _, cov := range summary.Coverage {
		_, _ = fmt.Fprintf(out, "%-11s %d/%d\n", cov.Field+":", cov.Count, summary.Records)
	}

	if len(summary.ExtensionKeys) > 0 {
		_, _ = fmt.Fprintf(out, "Extensions: %s\n", strings.Join(summary.ExtensionKeys, ", "))
	} else {
		_, _ = fmt.Fprintln(out, "Extensions: none")
	}
}
