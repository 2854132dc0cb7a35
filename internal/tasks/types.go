package tasks

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	AssigneeID  *string `json:"assignee_id"`
	DueDate     string  `json:"due_date"`
}

// updateTaskRequest is a partial edit: absent fields keep the stored value.
// An empty assignee_id unassigns the task.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	AssigneeID  *string `json:"assignee_id"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type mutationResponse struct {
	OK   bool  `json:"ok"`
	Task *Task `json:"task"`
}

type boardResponse struct {
	Columns       []Column `json:"columns"`
	FiltersActive bool     `json:"filters_active"`
}
