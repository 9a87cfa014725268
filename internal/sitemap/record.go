// Package sitemap defines the page record data model shared by every
// encoder, and the validation rules that run before any encoder does.
//
// A [PageRecord] keeps the four recognized sitemap fields as fixed struct
// members and everything else as ordered extension fields. Insertion order
// of extensions is significant: the CSV encoder derives its column set from
// it, and the XML/JSON encoders emit extensions in that order.
package sitemap

// Recognized sitemap field names.
const (
	FieldLoc        = "loc"
	FieldLastMod    = "lastmod"
	FieldPriority   = "priority"
	FieldChangeFreq = "changefreq"
)

// CoreFields lists the recognized field names in their canonical output order.
var CoreFields = []string{FieldLoc, FieldLastMod, FieldPriority, FieldChangeFreq}

// Extension is a single pass-through field beyond the four recognized ones.
// Extensions are never validated.
type Extension struct {
	Key   string
	Value string
}

// PageRecord is one URL entry of a sitemap. An empty string in a recognized
// field means the field is absent.
type PageRecord struct {
	Loc        string
	LastMod    string
	Priority   string
	ChangeFreq string

	// Extensions holds all non-recognized fields in insertion order.
	Extensions []Extension
}

// SetExtension appends an extension field, replacing the value in place if
// the key is already present.
func (r *PageRecord) SetExtension(key, value string) {
	for i := range r.Extensions {
		if r.Extensions[i].Key == key {
			r.Extensions[i].Value = value
			return
		}
	}

	r.Extensions = append(r.Extensions, Extension{Key: key, Value: value})
}

// Extension returns the value of the named extension field and whether the
// field is present.
func (r PageRecord) Extension(key string) (string, bool) {
	for _, ext := range r.Extensions {
		if ext.Key == key {
			return ext.Value, true
		}
	}

	return "", false
}

// Get returns the value for any field name, recognized or extension, and
// whether the field is present on the record.
func (r PageRecord) Get(key string) (string, bool) {
	switch key {
	case FieldLoc:
		return r.Loc, r.Loc != ""
	case FieldLastMod:
		return r.LastMod, r.LastMod != ""
	case FieldPriority:
		return r.Priority, r.Priority != ""
	case FieldChangeFreq:
		return r.ChangeFreq, r.ChangeFreq != ""
	default:
		return r.Extension(key)
	}
}

// Keys returns the names of all present fields: recognized fields first in
// canonical order, then extensions in insertion order.
func (r PageRecord) Keys() []string {
	keys := make([]string, 0, len(CoreFields)+len(r.Extensions))

	for _, name := range CoreFields {
		if _, ok := r.Get(name); ok {
			keys = append(keys, name)
		}
	}

	for _, ext := range r.Extensions {
		keys = append(keys, ext.Key)
	}

	return keys
}

// PageCollection is an ordered sequence of page records. Insertion order is
// preserved in every output format.
type PageCollection []PageRecord

// Keys returns the deduplicated union of field names across all records,
// preserving first-seen order: record 1's keys, then record 2's new keys,
// and so on. This is the CSV column derivation order.
func (c PageCollection) Keys() []string {
	var keys []string

	seen := make(map[string]struct{})

	for _, rec := range c {
		for _, key := range rec.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}
