// Package sitemapgen provides a public Go API for validating page records
// and generating sitemap files in XML, JSON, or CSV format.
//
// Basic usage:
//
//	pages := sitemapgen.PageCollection{
//	    {Loc: "https://example.com/", LastMod: "2024-06-27", Priority: "1.0", ChangeFreq: "hourly"},
//	}
//	if err := sitemapgen.Generate(pages, sitemapgen.FormatXML, "out/sitemap.xml"); err != nil {
//	    log.Fatal(err)
//	}
//
// For in-memory use, or to swap the file sink out in tests:
//
//	payload, err := sitemapgen.Encode(pages, sitemapgen.FormatJSON)
//
//	err := sitemapgen.Generate(pages, sitemapgen.FormatCSV, "",
//	    sitemapgen.WithSink(mySink),
//	)
package sitemapgen

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/sitemapgen/internal/encode"
	"github.com/hupe1980/sitemapgen/internal/output"
	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// Core model types, re-exported for library users.
type (
	// PageRecord is one URL entry of a sitemap.
	PageRecord = sitemap.PageRecord
	// PageCollection is an ordered sequence of page records.
	PageCollection = sitemap.PageCollection
	// Extension is a pass-through field beyond the four recognized ones.
	Extension = sitemap.Extension
	// ValidationError reports the first rule violation in a collection.
	ValidationError = sitemap.ValidationError
	// Format selects a sitemap output format.
	Format = encode.Format
	// UnsupportedFormatError is returned for an unrecognized format literal.
	UnsupportedFormatError = encode.UnsupportedFormatError
	// Sink receives the generated payload.
	Sink = output.Writer
	// SinkError is a file sink failure with its failure mode attached.
	SinkError = output.SinkError
)

// Supported output formats.
const (
	FormatXML  = encode.FormatXML
	FormatJSON = encode.FormatJSON
	FormatCSV  = encode.FormatCSV
)

// ParseFormat converts a format literal into a Format.
func ParseFormat(s string) (Format, error) { return encode.ParseFormat(s) }

// Validate checks the collection and returns the first violation found as a
// *ValidationError, or nil.
func Validate(pages PageCollection) error { return sitemap.Validate(pages) }

// Option configures a Generate call. Use the With* functions to create one.
type Option func(*options)

type options struct {
	sink   Sink
	logger *slog.Logger
	perm   os.FileMode
}

// WithSink replaces the default file sink. The destination path passed to
// Generate is ignored when a sink is set. This keeps validation and
// encoding testable without touching a real filesystem.
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithLogger sets the logger used by the default file sink.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPermissions overrides the default output file permissions (0644).
func WithPermissions(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Encode validates pages and renders them in the given format, fully in
// memory. A validation failure surfaces as *ValidationError before any
// encoder runs.
func Encode(pages PageCollection, format Format) ([]byte, error) {
	if err := sitemap.Validate(pages); err != nil {
		return nil, err
	}

	return encode.Encode(pages, format)
}

// Generate validates pages, renders them in the given format, and hands the
// payload to the sink, by default a file sink writing to path. Encoding is
// fully in-memory; the sink is never invoked when validation or encoding
// fails. Each call is independent and safe to run concurrently with other
// calls on separate collections and paths.
func Generate(pages PageCollection, format Format, path string, opts ...Option) error {
	o := &options{
		logger: discardLogger(),
		perm:   0o644,
	}

	for _, opt := range opts {
		opt(o)
	}

	payload, err := Encode(pages, format)
	if err != nil {
		return err
	}

	sink := o.sink
	if sink == nil {
		sink = output.NewFileWriter(path,
			output.WithLogger(o.logger),
			output.WithPermissions(o.perm),
		)
	}

	return sink.Write(payload)
}
