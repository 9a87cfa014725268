package sitemap

import "fmt"

// Rule identifies which validation rule a record violated.
type Rule string

// Validation rules, in the order they are checked per record.
const (
	RuleMissingLoc        Rule = "missing-loc"
	RuleInvalidLoc        Rule = "invalid-loc"
	RuleInvalidLastMod    Rule = "invalid-lastmod"
	RuleInvalidPriority   Rule = "invalid-priority"
	RuleInvalidChangeFreq Rule = "invalid-changefreq"
)

// ValidationError reports the first rule violation found in a collection.
type ValidationError struct {
	// Record is the zero-based index of the offending record.
	Record int
	// Field is the offending field name.
	Field string
	// Value is the raw field value (empty for a missing loc).
	Value string
	// Rule is the violated rule.
	Rule Rule
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Rule == RuleMissingLoc {
		return fmt.Sprintf("record %d: missing required field %q", e.Record, e.Field)
	}

	return fmt.Sprintf("record %d: invalid %s %q", e.Record, e.Field, e.Value)
}

// Validate checks every record of the collection in order and returns the
// first violation found as a *ValidationError, or nil if the collection is
// valid. Per record the checks run in a fixed order: loc presence, loc
// syntax, lastmod, priority, changefreq. Optional fields are only checked
// when present. Validate never mutates the collection.
func Validate(pages PageCollection) error {
	for i, rec := range pages {
		if rec.Loc == "" {
			return &ValidationError{Record: i, Field: FieldLoc, Rule: RuleMissingLoc}
		}

		if !IsValidURI(rec.Loc) {
			return &ValidationError{Record: i, Field: FieldLoc, Value: rec.Loc, Rule: RuleInvalidLoc}
		}

		if rec.LastMod != "" && !IsValidDate(rec.LastMod) {
			return &ValidationError{Record: i, Field: FieldLastMod, Value: rec.LastMod, Rule: RuleInvalidLastMod}
		}

		if rec.Priority != "" && !IsValidPriority(rec.Priority) {
			return &ValidationError{Record: i, Field: FieldPriority, Value: rec.Priority, Rule: RuleInvalidPriority}
		}

		if rec.ChangeFreq != "" && !IsValidChangeFreq(rec.ChangeFreq) {
			return &ValidationError{Record: i, Field: FieldChangeFreq, Value: rec.ChangeFreq, Rule: RuleInvalidChangeFreq}
		}
	}

	return nil
}
