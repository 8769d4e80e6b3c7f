package models

import "strings"

// DegreeLevel classifies a degree as bachelor, master or doctorate
type DegreeLevel string

// DegreeLevel constants
const (
	DegreeLevelBachelor  DegreeLevel = "BACHELOR"
	DegreeLevelMaster    DegreeLevel = "MASTER"
	DegreeLevelDoctorate DegreeLevel = "DOCTORATE"
)

// DegreeLevels lists every level from lowest to highest.
var DegreeLevels = []DegreeLevel{DegreeLevelBachelor, DegreeLevelMaster, DegreeLevelDoctorate}

// Rank orders levels; an unknown level ranks 0.
func (l DegreeLevel) Rank() int {
	switch l {
	case DegreeLevelBachelor:
		return 1
	case DegreeLevelMaster:
		return 2
	case DegreeLevelDoctorate:
		return 3
	default:
		return 0
	}
}

// ParseDegreeLevel accepts a level name in any letter case.
func ParseDegreeLevel(s string) (DegreeLevel, bool) {
	level := DegreeLevel(strings.ToUpper(strings.TrimSpace(s)))
	if level.Rank() == 0 {
		return "", false
	}
	return level, true
}
