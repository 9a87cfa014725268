package encode

import (
	"strings"

	"github.com/hupe1980/sitemapgen/internal/sitemap"
)

// csvSeparator joins CSV header and row fields.
const csvSeparator = ";"

// encodeCSV renders the collection as semicolon-separated values. The
// header row is the deduplicated union of field names across all records in
// first-seen order; each record row has one field per header column, empty
// when the record lacks that field. Every row is newline-terminated.
//
// Known limitation, kept on purpose: field values are emitted verbatim with
// no quoting, so a value containing the separator shifts columns. Changing
// this would change the external format contract.
func encodeCSV(pages sitemap.PageCollection) []byte {
	header := pages.Keys()

	var b strings.Builder

	b.WriteString(strings.Join(header, csvSeparator))
	b.WriteByte('\n')

	for _, rec := range pages {
		fields := make([]string, len(header))
		for i, key := range header {
			fields[i], _ = rec.Get(key)
		}

		b.WriteString(strings.Join(fields, csvSeparator))
		b.WriteByte('\n')
	}

	return []byte(b.String())
}
