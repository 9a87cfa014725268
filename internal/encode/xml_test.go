package encode

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// urlsetDoc is a minimal unmarshaling target to prove well-formedness.
type urlsetDoc struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		Priority   string `xml:"priority"`
		ChangeFreq string `xml:"changefreq"`
	} `xml:"url"`
}

func TestEncodeXML_ExampleScenario(t *testing.T) {
	pages := sitemap.PageCollection{
		{Loc: "https://site.com/", LastMod: "2024-06-27", Priority: "1.0", ChangeFreq: "hourly"},
	}

	got, err := Encode(pages, FormatXML)
	require.NoError(t, err)

	s := string(got)

	// Protocol literals must appear verbatim on the root element.
	assert.Contains(t, s, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	assert.Contains(t, s, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, s, `xsi:schemaLocation="http://www.sitemaps.org/schemas/sitemap/0.9 http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd"`)

	// Child elements in canonical order.
	for _, el := range []string{
		"<loc>https://site.com/</loc>",
		"<lastmod>2024-06-27</lastmod>",
		"<priority>1.0</priority>",
		"<changefreq>hourly</changefreq>",
	} {
		assert.Contains(t, s, el)
	}

	assert.Less(t, strings.Index(s, "<loc>"), strings.Index(s, "<lastmod>"))
	assert.Less(t, strings.Index(s, "<lastmod>"), strings.Index(s, "<priority>"))
	assert.Less(t, strings.Index(s, "<priority>"), strings.Index(s, "<changefreq>"))
}

func TestEncodeXML_WellFormed(t *testing.T) {
	pages := sitemap.PageCollection{
		{Loc: "https://site.com/", LastMod: "2024-06-27"},
		{Loc: "https://site.com/about", Priority: "0.5"},
	}

	got, err := Encode(pages, FormatXML)
	require.NoError(t, err)

	var doc urlsetDoc
	require.NoError(t, xml.Unmarshal(got, &doc))
	require.Len(t, doc.URLs, 2)
	assert.Equal(t, "https://site.com/", doc.URLs[0].Loc)
	assert.Equal(t, "https://site.com/about", doc.URLs[1].Loc)
	assert.Equal(t, "0.5", doc.URLs[1].Priority)
}

func TestEncodeXML_AbsentFieldsYieldEmptyElements(t *testing.T) {
	pages := sitemap.PageCollection{{Loc: "https://site.com/"}}

	got, err := Encode(pages, FormatXML)
	require.NoError(t, err)

	s := string(got)
	assert.Contains(t, s, "<lastmod></lastmod>")
	assert.Contains(t, s, "<priority></priority>")
	assert.Contains(t, s, "<changefreq></changefreq>")
}

func TestEncodeXML_ExtensionsInInsertionOrder(t *testing.T) {
	rec := sitemap.PageRecord{Loc: "https://site.com/"}
	rec.SetExtension("image", "https://site.com/a.png")
	rec.SetExtension("video", "https://site.com/a.mp4")

	got, err := Encode(sitemap.PageCollection{rec}, FormatXML)
	require.NoError(t, err)

	s := string(got)
	assert.Contains(t, s, "<image>https://site.com/a.png</image>")
	assert.Contains(t, s, "<video>https://site.com/a.mp4</video>")
	assert.Less(t, strings.Index(s, "<changefreq>"), strings.Index(s, "<image>"))
	assert.Less(t, strings.Index(s, "<image>"), strings.Index(s, "<video>"))
}

func TestEncodeXML_EscapesSpecialCharacters(t *testing.T) {
	pages := sitemap.PageCollection{
		{Loc: "https://site.com/?a=1&b=<2>"},
	}

	got, err := Encode(pages, FormatXML)
	require.NoError(t, err)

	s := string(got)
	assert.Contains(t, s, "a=1&amp;b=&lt;2&gt;")
	assert.NotContains(t, s, "&b=<2>")

	// Escaped output must still parse.
	var doc urlsetDoc
	require.NoError(t, xml.Unmarshal(got, &doc))
	assert.Equal(t, "https://site.com/?a=1&b=<2>", doc.URLs[0].Loc)
}

func TestEncodeXML_Deterministic(t *testing.T) {
	rec := sitemap.PageRecord{Loc: "https://site.com/", ChangeFreq: "weekly"}
	rec.SetExtension("image", "x.png")
	pages := sitemap.PageCollection{rec}

	a, err := Encode(pages, FormatXML)
	require.NoError(t, err)

	b, err := Encode(pages, FormatXML)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncodeXML_EmptyCollection(t *testing.T) {
	got, err := Encode(sitemap.PageCollection{}, FormatXML)
	require.NoError(t, err)

	var doc urlsetDoc
	require.NoError(t, xml.Unmarshal(got, &doc))
	assert.Empty(t, doc.URLs)
}
