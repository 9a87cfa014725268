// Package loader reads page collections from pages files. A pages file is
// a YAML (or JSON, which is a YAML subset) sequence of flat mappings, one per URL:
//
//	- loc: https://example.com/
//	  lastmod: "2024-06-27"
//	  priority: "1.0"
//	  changefreq: hourly
//	  image: https://example.com/hero.png
//
// Decoding goes through yaml.Node instead of a map so that the insertion
// order of extension keys survives; that order drives CSV column layout.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// Load reads and parses the pages file at path.
func Load(path string) (sitemap.PageCollection, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("reading pages file %q: %w", path, err)
	}

	pages, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing pages file %q: %w", path, err)
	}

	return pages, nil
}

// Parse decodes a YAML or JSON document into a page collection. The
// document must be a sequence of mappings with scalar values. An empty
// document yields an empty collection.
func Parse(data []byte) (sitemap.PageCollection, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a sequence of records, got %s", kindName(root.Kind))
	}

	pages := make(sitemap.PageCollection, 0, len(root.Content))

	for i, item := range root.Content {
		rec, err := parseRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		pages = append(pages, rec)
	}

	return pages, nil
}

// parseRecord converts one mapping node into a PageRecord. Recognized keys
// land in the fixed fields; everything else becomes an extension in
// document order.
func parseRecord(node *yaml.Node) (sitemap.PageRecord, error) {
	var rec sitemap.PageRecord

	if node.Kind != yaml.MappingNode {
		return rec, fmt.Errorf("expected a mapping, got %s (line %d)", kindName(node.Kind), node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		if valNode.Kind != yaml.ScalarNode {
			return rec, fmt.Errorf("field %q: expected a scalar value (line %d)", keyNode.Value, valNode.Line)
		}

		switch keyNode.Value {
		case sitemap.FieldLoc:
			rec.Loc = valNode.Value
		case sitemap.FieldLastMod:
			rec.LastMod = valNode.Value
		case sitemap.FieldPriority:
			rec.Priority = valNode.Value
		case sitemap.FieldChangeFreq:
			rec.ChangeFreq = valNode.Value
		default:
			rec.SetExtension(keyNode.Value, valNode.Value)
		}
	}

	return rec, nil
}

// kindName returns a human-readable name for a YAML node kind.
func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
