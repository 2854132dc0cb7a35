package tasks

import "fmt"

// fieldChanges describes what an edit changed, in a fixed order: title,
// description, priority, due date. Due dates compare by calendar day.
func fieldChanges(orig, updated Task) []string {
	var out []string
	if orig.Title != updated.Title {
		out = append(out, `changed the title to "`+updated.Title+`"`)
	}
	if orig.Description != updated.Description {
		out = append(out, "updated the description")
	}
	if orig.Priority != updated.Priority {
		out = append(out, fmt.Sprintf("set the priority to %s", updated.Priority))
	}
	if !SameDay(orig.DueDate, updated.DueDate) {
		out = append(out, "changed the due date to "+formatEventDate(updated.DueDate))
	}
	return out
}
