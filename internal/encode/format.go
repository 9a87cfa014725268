// Package encode renders a validated page collection into one of the three
// sitemap output formats: XML (sitemaps.org 0.9 protocol), JSON, and CSV.
//
// Encoders assume their input has already passed [sitemap.Validate]; they
// perform no validation of their own. All encoders are deterministic: the
// same collection always produces byte-identical output.
package encode

import (
	"fmt"

	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// Format selects a sitemap output format. The three declared constants are
// the only valid values; use [ParseFormat] to obtain one from user input.
type Format string

// Supported output formats.
const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Formats lists all supported formats in declaration order.
var Formats = []Format{FormatXML, FormatJSON, FormatCSV}

// UnsupportedFormatError is returned for a format literal outside the
// supported set.
type UnsupportedFormatError struct {
	Name string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (supported: xml, json, csv)", e.Name)
}

// ParseFormat converts a format literal into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXML, FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", &UnsupportedFormatError{Name: s}
	}
}

// String returns the format literal.
func (f Format) String() string { return string(f) }

// Ext returns the conventional file extension for the format, including
// the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// Encode renders an already-validated collection in the given format.
// Encoding is fully in-memory; no I/O happens here.
func Encode(pages sitemap.PageCollection, format Format) ([]byte, error) {
	switch format {
	case FormatXML:
		return encodeXML(pages)
	case FormatJSON:
		return encodeJSON(pages), nil
	case FormatCSV:
		return encodeCSV(pages), nil
	default:
		return nil, &UnsupportedFormatError{Name: string(format)}
	}
}
