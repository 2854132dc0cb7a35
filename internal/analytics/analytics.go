package analytics

import (
	"sort"
	"time"

	"taskflow-backend/internal/tasks"
	"taskflow-backend/internal/users"
)

type StatusCount struct {
	Status tasks.Status `json:"status"`
	Count  int          `json:"count"`
}

type UserCompletion struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
}

type TrendPoint struct {
	Day   string `json:"day"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Dashboard struct {
	TotalTasks      int              `json:"total_tasks"`
	ByStatus        []StatusCount    `json:"by_status"`
	CompletedByUser []UserCompletion `json:"completed_by_user"`
	Trend           []TrendPoint     `json:"trend"`
}

// Build computes every projection from the current collection. Nothing is
// cached; callers recompute per request.
func Build(list []tasks.Task, roster []users.User) Dashboard {
	return Dashboard{
		TotalTasks:      len(list),
		ByStatus:        StatusDistribution(list),
		CompletedByUser: CompletionByUser(list, roster),
		Trend:           CompletionTrend(list),
	}
}

// StatusDistribution counts tasks per status. Every status is present, in
// board order, even when its count is zero.
func StatusDistribution(list []tasks.Task) []StatusCount {
	counts := make(map[tasks.Status]int, len(tasks.AllStatuses))
	for _, t := range list {
		counts[t.Status]++
	}

	out := make([]StatusCount, 0, len(tasks.AllStatuses))
	for _, st := range tasks.AllStatuses {
		out = append(out, StatusCount{Status: st, Count: counts[st]})
	}
	return out
}

// CompletionByUser counts Done tasks assigned to each roster user.
func CompletionByUser(list []tasks.Task, roster []users.User) []UserCompletion {
	out := make([]UserCompletion, 0, len(roster))
	for _, u := range roster {
		n := 0
		for _, t := range list {
			if t.Status == tasks.StatusDone && t.AssignedTo(u.ID) {
				n++
			}
		}
		out = append(out, UserCompletion{UserID: u.ID, Name: u.FirstName(), Completed: n})
	}
	return out
}

// CompletionTrend groups Done tasks by the calendar day of their due date,
// ascending. There is no completion timestamp on a task, so the due date
// stands in for it.
func CompletionTrend(list []tasks.Task) []TrendPoint {
	counts := map[time.Time]int{}
	for _, t := range list {
		if t.Status == tasks.StatusDone {
			counts[tasks.DayKey(t.DueDate)]++
		}
	}

	days := make([]time.Time, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		out = append(out, TrendPoint{
			Day:   d.Format(tasks.DateLayout),
			Label: d.Format("Jan 2"),
			Count: counts[d],
		})
	}
	return out
}
