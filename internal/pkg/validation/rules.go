package validation

import (
	"regexp"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// DepartmentPattern allows letters, digits, spaces and the punctuation
	// found in department names ("Art History", "Women's, Gender & Sexuality Studies")
	DepartmentPattern = `^[\p{L}\p{N} .,'&()/-]+$`

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100

	// Free-text search max length
	SearchMaxLength = 200
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Department *regexp.Regexp
}{
	Department: regexp.MustCompile(DepartmentPattern),
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation. Lengths are counted in characters, not bytes.
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// DepartmentName validates an optional department filter
func DepartmentName(value string, required bool) bool {
	return NewStringValidation(value).
		WithRequired(required).
		WithMinLength(NameMinLength).
		WithMaxLength(NameMaxLength).
		WithPattern(CompiledPatterns.Department).
		Validate()
}

// SearchText validates an optional free-text filter
func SearchText(value string) bool {
	return NewStringValidation(value).
		WithRequired(false).
		WithMaxLength(SearchMaxLength).
		Validate()
}
