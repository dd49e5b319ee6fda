package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// labelValuePattern follows a label: up to 30 characters of non-numeric separator text, then
// a numeral that may carry "$", a minus sign, parentheses, comma grouping and cents.
const labelValuePattern = `[^\d\-\($]{0,30}(\(?-?\$?\s*\d[\d,]*(?:\.\d{2})?\)?)`

const maxTextFieldLength = 120

var yearRegex = regexp.MustCompile(`\b\d{4}\b`)

// LabelMatcher finds the first amount that follows a label pattern, case-insensitively.
type LabelMatcher struct {
	re *regexp.Regexp
}

// NewLabelMatcher compiles labelPattern together with the shared amount pattern.
// It panics on an invalid pattern, like regexp.MustCompile.
func NewLabelMatcher(labelPattern string) *LabelMatcher {
	return &LabelMatcher{
		re: regexp.MustCompile(`(?i)(?:` + labelPattern + `)` + labelValuePattern),
	}
}

// Find returns the amount after the first occurrence of the label, or nil when the label is
// absent or the candidate does not parse.
func (m *LabelMatcher) Find(text string) *float64 {
	matches := m.re.FindStringSubmatch(text)
	if len(matches) < 2 {
		return nil
	}
	return parseAmountPtr(matches[1])
}

// ExtractAfterLabel is the one-off form of LabelMatcher.Find.
func ExtractAfterLabel(labelPattern, text string) *float64 {
	return NewLabelMatcher(labelPattern).Find(text)
}

// FieldSpec binds one monetary field of record type T to the label that anchors it.
type FieldSpec[T any] struct {
	Name  string
	Label *LabelMatcher
	Set   func(record *T, value *float64)
}

// NewFieldSpec builds a FieldSpec from a label pattern.
func NewFieldSpec[T any](name, labelPattern string, set func(*T, *float64)) FieldSpec[T] {
	return FieldSpec[T]{
		Name:  name,
		Label: NewLabelMatcher(labelPattern),
		Set:   set,
	}
}

// ApplyFieldSpecs looks up every field independently and stores the result on record.
// A missing field never stops the others. It returns the number of fields found.
func ApplyFieldSpecs[T any](record *T, specs []FieldSpec[T], text string) int {
	found := 0
	for _, spec := range specs {
		value := spec.Label.Find(text)
		spec.Set(record, value)
		if value != nil {
			found++
		}
	}
	return found
}

// ExtractTextField returns the first capture group of re in text, trimmed and capped at 120
// characters, or nil when there is no non-empty match.
func ExtractTextField(re *regexp.Regexp, text string) *string {
	matches := re.FindStringSubmatch(text)
	if len(matches) < 2 {
		return nil
	}
	value := truncateRunes(strings.TrimSpace(matches[1]), maxTextFieldLength)
	if value == "" {
		return nil
	}
	return &value
}

// DetectYear returns the first four-digit token in [2000, 2100], or nil.
func DetectYear(text string) *int {
	for _, token := range yearRegex.FindAllString(text, -1) {
		year, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if year >= 2000 && year <= 2100 {
			return &year
		}
	}
	return nil
}

// FieldConfidence scores a record as populated/total plus a flat bonus, capped at 1 and
// rounded to two places.
func FieldConfidence(populated, total int, bonus float64) float64 {
	if total <= 0 {
		total = 1
	}
	score := math.Min(1.0, float64(populated)/float64(total)+bonus)
	return RoundCents(score)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
