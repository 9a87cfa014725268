package encode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// jsonIndent is the indentation unit for pretty-printed JSON output.
const jsonIndent = "  "

// encodeJSON renders the collection as a pretty-printed JSON array with one
// object per record. Key order inside each object is the four recognized
// fields first (null when absent), then extensions in insertion order.
//
// The printer is hand-rolled rather than built on encoding/json: the output
// contract requires insertion-ordered object keys, which a map round-trip
// would resort alphabetically.
func encodeJSON(pages sitemap.PageCollection) []byte {
	var buf bytes.Buffer

	if len(pages) == 0 {
		buf.WriteString("[]\n")

		return buf.Bytes()
	}

	buf.WriteString("[\n")

	for i, rec := range pages {
		writeJSONRecord(&buf, rec)

		if i < len(pages)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString("]\n")

	return buf.Bytes()
}

// writeJSONRecord writes one record object at indentation level 1.
func writeJSONRecord(buf *bytes.Buffer, rec sitemap.PageRecord) {
	total := len(sitemap.CoreFields) + len(rec.Extensions)

	buf.WriteString(jsonIndent)
	buf.WriteString("{\n")

	n := 0

	for _, name := range sitemap.CoreFields {
		value, ok := rec.Get(name)
		if ok {
			writeJSONMember(buf, name, jsonQuote(value), n == total-1)
		} else {
			writeJSONMember(buf, name, "null", n == total-1)
		}

		n++
	}

	for _, ext := range rec.Extensions {
		writeJSONMember(buf, ext.Key, jsonQuote(ext.Value), n == total-1)
		n++
	}

	buf.WriteString(jsonIndent)
	buf.WriteByte('}')
}

// writeJSONMember writes one `"key": value` line at indentation level 2.
func writeJSONMember(buf *bytes.Buffer, key, value string, last bool) {
	buf.WriteString(jsonIndent)
	buf.WriteString(jsonIndent)
	buf.WriteString(jsonQuote(key))
	buf.WriteString(": ")
	buf.WriteString(value)

	if !last {
		buf.WriteByte(',')
	}

	buf.WriteByte('\n')
}

// jsonQuote performs JSON string quoting with proper escaping.
func jsonQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\b", `\b`)
	s = strings.ReplaceAll(s, "\f", `\f`)

	// Remaining control characters have no short escape and must be
	// emitted as \u sequences to keep the output valid JSON.
	if strings.IndexFunc(s, isControl) >= 0 {
		var b strings.Builder

		for _, r := range s {
			if isControl(r) {
				_, _ = fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}

		s = b.String()
	}

	return `"` + s + `"`
}

func isControl(r rune) bool { return r < 0x20 }
