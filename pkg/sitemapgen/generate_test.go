package sitemapgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures writes so tests can assert on sink interaction.
type recordingSink struct {
	writes [][]byte
	err    error
}

func (s *recordingSink) Write(data []byte) error {
	s.writes = append(s.writes, data)

	return s.err
}

func validCollection() PageCollection {
	rec := PageRecord{
		Loc:        "https://example.com/",
		LastMod:    "2024-06-27",
		Priority:   "1.0",
		ChangeFreq: "hourly",
	}
	rec.SetExtension("image", "https://example.com/hero.png")

	return PageCollection{rec, {Loc: "https://example.com/about"}}
}

func TestEncode_XML(t *testing.T) {
	payload, err := Encode(validCollection(), FormatXML)
	require.NoError(t, err)

	assert.Contains(t, string(payload), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, string(payload), "<loc>https://example.com/</loc>")
}

func TestEncode_ValidationError(t *testing.T) {
	pages := PageCollection{{Loc: "not-a-uri"}}

	_, err := Encode(pages, FormatXML)
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestGenerate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sitemap.json")

	require.NoError(t, Generate(validCollection(), FormatJSON, path))

	data, err := os.ReadFile(path) //nolint:gosec // test
	require.NoError(t, err)
	assert.Contains(t, string(data), `"loc": "https://example.com/"`)
}

func TestGenerate_CustomPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.csv")

	require.NoError(t, Generate(validCollection(), FormatCSV, path, WithPermissions(0o600)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestGenerate_WithSink(t *testing.T) {
	sink := &recordingSink{}

	require.NoError(t, Generate(validCollection(), FormatCSV, "ignored", WithSink(sink)))

	require.Len(t, sink.writes, 1)
	assert.Contains(t, string(sink.writes[0]), "loc;lastmod;priority;changefreq;image")
}

func TestGenerate_SinkNotInvokedOnInvalidInput(t *testing.T) {
	sink := &recordingSink{}
	pages := PageCollection{{Loc: "https://example.com/", ChangeFreq: "sometimes"}}

	err := Generate(pages, FormatXML, "", WithSink(sink))
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Empty(t, sink.writes)
}

func TestGenerate_SinkNotInvokedOnUnsupportedFormat(t *testing.T) {
	sink := &recordingSink{}

	err := Generate(validCollection(), Format("yaml"), "", WithSink(sink))
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	assert.ErrorAs(t, err, &formatErr)
	assert.Empty(t, sink.writes)
}

func TestGenerate_SinkErrorSurfaces(t *testing.T) {
	sink := &recordingSink{err: errors.New("disk full")}

	err := Generate(validCollection(), FormatXML, "", WithSink(sink))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGenerate_SinkErrorKind(t *testing.T) {
	err := Generate(validCollection(), FormatXML, "/dev/null/impossible/sitemap.xml")
	require.Error(t, err)

	var sinkErr *SinkError
	assert.ErrorAs(t, err, &sinkErr)
}

func TestGenerate_Deterministic(t *testing.T) {
	sinkA := &recordingSink{}
	sinkB := &recordingSink{}

	require.NoError(t, Generate(validCollection(), FormatJSON, "", WithSink(sinkA)))
	require.NoError(t, Generate(validCollection(), FormatJSON, "", WithSink(sinkB)))

	assert.Equal(t, sinkA.writes, sinkB.writes)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("toml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validCollection()))
	assert.Error(t, Validate(PageCollection{{}}))
}
