package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// sitemaps.org 0.9 protocol literals. These must appear verbatim on the
// urlset root element.
const (
	xmlnsXSI          = "http://www.w3.org/2001/XMLSchema-instance"
	xmlnsSitemap      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xsiSchemaLocation = "http://www.sitemaps.org/schemas/sitemap/0.9 http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd"
)

// encodeXML renders the collection as a sitemaps.org 0.9 urlset document.
// Each record becomes a url element with the four recognized fields as
// children in canonical order (an absent field yields an empty element),
// followed by one element per extension field in insertion order. The token
// encoder escapes all character data and attribute values.
func encodeXML(pages sitemap.PageCollection) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	urlset := xml.StartElement{
		Name: xml.Name{Local: "urlset"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:xsi"}, Value: xmlnsXSI},
			{Name: xml.Name{Local: "xmlns"}, Value: xmlnsSitemap},
			{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: xsiSchemaLocation},
		},
	}
	if err := enc.EncodeToken(urlset); err != nil {
		return nil, fmt.Errorf("encoding urlset: %w", err)
	}

	for i, rec := range pages {
		if err := encodeURL(enc, rec); err != nil {
			return nil, fmt.Errorf("encoding record %d: %w", i, err)
		}
	}

	if err := enc.EncodeToken(urlset.End()); err != nil {
		return nil, fmt.Errorf("closing urlset: %w", err)
	}

	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flushing XML: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// encodeURL emits a single url element for rec.
func encodeURL(enc *xml.Encoder, rec sitemap.PageRecord) error {
	url := xml.StartElement{Name: xml.Name{Local: "url"}}
	if err := enc.EncodeToken(url); err != nil {
		return err
	}

	for _, name := range sitemap.CoreFields {
		value, _ := rec.Get(name)
		if err := encodeElement(enc, name, value); err != nil {
			return err
		}
	}

	for _, ext := range rec.Extensions {
		if err := encodeElement(enc, ext.Key, ext.Value); err != nil {
			return err
		}
	}

	return enc.EncodeToken(url.End())
}

// encodeElement emits <name>value</name>, or an empty element when value
// is empty.
func encodeElement(enc *xml.Encoder, name, value string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if value != "" {
		if err := enc.EncodeToken(xml.CharData(value)); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
