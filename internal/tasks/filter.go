package tasks

import (
	"time"

	"taskflow-backend/internal/users"
)

// ScopeByRole returns what u may see: everything for a Scrum Master, only
// their own assignments for anyone else.
func ScopeByRole(list []Task, u users.User) []Task {
	if u.IsScrumMaster() {
		return list
	}
	out := make([]Task, 0, len(list))
	for _, t := range list {
		if t.AssignedTo(u.ID) {
			out = append(out, t)
		}
	}
	return out
}

// CanSee reports whether t is inside u's role scope.
func CanSee(u users.User, t Task) bool {
	return u.IsScrumMaster() || t.AssignedTo(u.ID)
}

// Criteria narrows a board. Zero fields do not filter.
type Criteria struct {
	Start      *time.Time
	End        *time.Time
	AssigneeID string
}

func (c Criteria) IsZero() bool {
	return c.Start == nil && c.End == nil && c.AssigneeID == ""
}

// ScopeByCriteria keeps tasks matching every set criterion. Date bounds are
// inclusive whole days compared by civil date, so a due date's time of day
// and offset never move it across a bound.
func ScopeByCriteria(list []Task, c Criteria) []Task {
	if c.IsZero() {
		return list
	}

	var start, end time.Time
	if c.Start != nil {
		start = DayKey(*c.Start)
	}
	if c.End != nil {
		end = DayKey(*c.End)
	}

	out := make([]Task, 0, len(list))
	for _, t := range list {
		due := DayKey(t.DueDate)
		if c.Start != nil && due.Before(start) {
			continue
		}
		if c.End != nil && due.After(end) {
			continue
		}
		if c.AssigneeID != "" && !t.AssignedTo(c.AssigneeID) {
			continue
		}
		out = append(out, t)
	}
	return out
}
