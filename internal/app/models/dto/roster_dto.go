package dto

import (
	"time"

	"github.com/yigit/facultyroster/internal/pkg/runlength"
)

// CountsResponse lists run-length counts, each rendered as [value, count]
type CountsResponse[T any] struct {
	Counts []runlength.Run[T] `json:"counts"`
	Total  int                `json:"total"`
}

// NewCountsResponse wraps runs together with their total
func NewCountsResponse[T any](runs []runlength.Run[T]) CountsResponse[T] {
	return CountsResponse[T]{
		Counts: runs,
		Total:  runlength.Total(runs),
	}
}

// RosterStatusResponse describes the currently loaded roster
type RosterStatusResponse struct {
	Instructors int       `json:"instructors" example:"312"`
	Departments int       `json:"departments" example:"36"`
	LoadedAt    time.Time `json:"loadedAt"`
}
