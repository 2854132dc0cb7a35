package tasks

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

// AllStatuses is the fixed enumeration in board column order.
var AllStatuses = []Status{StatusToDo, StatusInProgress, StatusReview, StatusDone}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SystemActorID marks events recorded without a known acting user.
const SystemActorID = "system"

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrDueDateRequired = errors.New("due date is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date")
)

func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// TaskEvent is one immutable entry of a task's audit trail.
type TaskEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
	UserID    string    `json:"user_id"`
}

type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      Status      `json:"status"`
	Priority    Priority    `json:"priority"`
	AssigneeID  *string     `json:"assignee_id"`
	DueDate     time.Time   `json:"due_date"`
	History     []TaskEvent `json:"history"`
}

// clone returns a copy that shares no mutable state with t.
func (t Task) clone() Task {
	c := t
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		c.AssigneeID = &id
	}
	c.History = append([]TaskEvent(nil), t.History...)
	return c
}

// AssignedTo reports whether the task's assignee is userID.
func (t Task) AssignedTo(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// NewTask is the payload for Store.Create. Callers validate it first.
type NewTask struct {
	Title       string
	Description string
	Priority    Priority
	AssigneeID  *string
	DueDate     time.Time
}

// Validate performs the checks the store itself never repeats.
func (n NewTask) Validate() error {
	if n.Title == "" {
		return ErrTitleRequired
	}
	if n.DueDate.IsZero() {
		return ErrDueDateRequired
	}
	return nil
}
