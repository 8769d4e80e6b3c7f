package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/facultyroster/internal/pkg/apperrors"
)

// Degree describes one degree: the year it was granted, its kind (e.g. "Ph.D.")
// and the granting institution. A Degree is immutable once parsed.
type Degree struct {
	year        int
	kind        string
	institution string
}

// ParseDegree builds a Degree from a description such as
// "2020, Ph.D., Cornell University". Only the first two commas separate
// fields, so the institution may itself contain commas.
func ParseDegree(description string) (Degree, error) {
	fields := strings.SplitN(description, ",", 3)
	if len(fields) != 3 {
		reason := fmt.Sprintf("expected 3 comma-separated fields, got %d", len(fields))
		return Degree{}, apperrors.NewMalformedDegreeError(description, reason, nil)
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Degree{}, apperrors.NewMalformedDegreeError(description, "year is not an integer", err)
	}

	return Degree{
		year:        year,
		kind:        strings.TrimSpace(fields[1]),
		institution: strings.TrimSpace(fields[2]),
	}, nil
}

// MustParseDegree is like ParseDegree but panics on a malformed description.
func MustParseDegree(description string) Degree {
	d, err := ParseDegree(description)
	if err != nil {
		panic(err)
	}
	return d
}

// Year the degree was granted
func (d Degree) Year() int {
	return d.year
}

// Kind of the degree, e.g. "M.S."
func (d Degree) Kind() string {
	return d.kind
}

// Institution that granted the degree
func (d Degree) Institution() string {
	return d.institution
}

// Level classifies the degree from its kind. Bachelor patterns are checked
// before doctorate patterns, so a kind matching both is a bachelor's degree.
// Anything else is a master's degree.
func (d Degree) Level() DegreeLevel {
	switch {
	case strings.HasPrefix(d.kind, "B.") || strings.HasSuffix(d.kind, "B."):
		return DegreeLevelBachelor
	case strings.HasPrefix(d.kind, "D") || strings.HasSuffix(d.kind, "D."):
		return DegreeLevelDoctorate
	default:
		return DegreeLevelMaster
	}
}

// IsBachelor reports whether this is a bachelor's degree.
func (d Degree) IsBachelor() bool {
	return d.Level() == DegreeLevelBachelor
}

// IsMaster reports whether this is a master's degree.
func (d Degree) IsMaster() bool {
	return d.Level() == DegreeLevelMaster
}

// IsDoctorate reports whether this is a doctorate.
func (d Degree) IsDoctorate() bool {
	return d.Level() == DegreeLevelDoctorate
}

// Equal reports whether year, kind and institution all match.
func (d Degree) Equal(other Degree) bool {
	return d.year == other.year && d.kind == other.kind && d.institution == other.institution
}

// String returns the canonical "<year>, <kind>, <institution>" form.
func (d Degree) String() string {
	return fmt.Sprintf("%d, %s, %s", d.year, d.kind, d.institution)
}

// GoString renders the degree as the call that rebuilds it.
func (d Degree) GoString() string {
	return fmt.Sprintf("models.MustParseDegree(%q)", d.String())
}
