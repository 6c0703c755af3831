package domain

import (
	"github.com/google/uuid"
)

// TaskQuery holds the caller-supplied search terms for listing tasks.
// Title and Description match as case-insensitive substrings; Status matches
// exactly. Absent terms impose no constraint.
type TaskQuery struct {
	Title       string
	Description string
	Status      Status
}

// TaskFilter is the filter every task-store query runs with. OwnerID is
// always present; repositories AND it with whatever query terms are set.
type TaskFilter struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      Status
}

// ScopedFilter merges the requesting principal's id with caller-supplied
// query terms. The ownership term is taken from the authenticated principal
// only; callers cannot supply or override it, so every task operation is
// implicitly restricted to the caller's own records.
func ScopedFilter(principalID uuid.UUID, query TaskQuery) TaskFilter {
	return TaskFilter{
		OwnerID:     principalID,
		Title:       query.Title,
		Description: query.Description,
		Status:      query.Status,
	}
}
