package ai

import (
	"encoding/json"
	"fmt"

	"taskflow-backend/internal/tasks"
	"taskflow-backend/internal/users"
)

const unassignedName = "Unassigned"

// TaskSummary is the per-task shape sent to the model.
type TaskSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	Assignee      string `json:"assignee"`
	HistoryLength int    `json:"historyLength"`
	DueDate       string `json:"dueDate"`
}

// Summarize resolves assignee names against the roster; missing or stale
// assignees read as "Unassigned".
func Summarize(list []tasks.Task, roster *users.Roster) []TaskSummary {
	out := make([]TaskSummary, 0, len(list))
	for _, t := range list {
		out = append(out, TaskSummary{
			ID:            t.ID,
			Title:         t.Title,
			Status:        string(t.Status),
			Priority:      string(t.Priority),
			Assignee:      roster.NameOf(t.AssigneeID, unassignedName),
			HistoryLength: len(t.History),
			DueDate:       t.DueDate.Format("1/2/2006"),
		})
	}
	return out
}

// BuildInsightsPrompt embeds the summaries as indented JSON in the report
// request.
func BuildInsightsPrompt(summaries []TaskSummary) (string, error) {
	b, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ai: encode task summary: %w", err)
	}
	return fmt.Sprintf(insightsPromptTemplate, b), nil
}
