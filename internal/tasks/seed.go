package tasks

import (
	"fmt"
	"time"

	"taskflow-backend/internal/seed"
)

// FromSeed turns seed records into tasks, resolving relative dates against
// now. Due dates land on midnight UTC of the resulting calendar day.
func FromSeed(d seed.Data, now time.Time) ([]Task, error) {
	today := DayKey(now)

	out := make([]Task, 0, len(d.Tasks))
	for _, rec := range d.Tasks {
		status, err := ParseStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("seed task %s: %w", rec.ID, err)
		}
		priority, err := ParsePriority(rec.Priority)
		if err != nil {
			return nil, fmt.Errorf("seed task %s: %w", rec.ID, err)
		}

		t := Task{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Status:      status,
			Priority:    priority,
			DueDate:     today.AddDate(0, 0, rec.DueInDays),
		}
		if rec.Assignee != "" {
			assignee := rec.Assignee
			t.AssigneeID = &assignee
		}
		for _, ev := range rec.History {
			t.History = append(t.History, TaskEvent{
				Timestamp: now.AddDate(0, 0, -ev.DaysAgo),
				Event:     ev.Event,
				UserID:    ev.User,
			})
		}
		out = append(out, t)
	}
	return out, nil
}
