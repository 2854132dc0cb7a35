package tasks

import (
	"encoding/json"
	"net/http"
	"net/url"

	"taskflow-backend/internal/auth"
	"taskflow-backend/internal/users"
)

const validationMessage = "Title and Due Date are required."

func parseCriteria(q url.Values) (Criteria, error) {
	var c Criteria
	if raw := q.Get("start"); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			return Criteria{}, err
		}
		c.Start = &d
	}
	if raw := q.Get("end"); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			return Criteria{}, err
		}
		c.End = &d
	}
	c.AssigneeID = q.Get("assignee")
	return c, nil
}

// visibleTasks applies role scope first, then the query's criteria.
func visibleTasks(store *Store, u users.User, q url.Values) ([]Task, Criteria, error) {
	c, err := parseCriteria(q)
	if err != nil {
		return nil, Criteria{}, err
	}
	return ScopeByCriteria(ScopeByRole(store.List(), u), c), c, nil
}

// scopedTask loads a task the user is allowed to touch. Tasks outside the
// user's scope look exactly like missing ones.
func scopedTask(store *Store, u users.User, id string) (Task, bool) {
	t, ok := store.Get(id)
	if !ok || !CanSee(u, t) {
		return Task{}, false
	}
	return t, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMutation(w http.ResponseWriter, t Task, found bool) {
	resp := mutationResponse{OK: true}
	if found {
		resp.Task = &t
	}
	writeJSON(w, http.StatusOK, resp)
}

// -------------------------------
// HANDLERS
// -------------------------------

func GetTasksHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		list, _, err := visibleTasks(store, u, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func GetBoardHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		list, c, err := visibleTasks(store, u, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, boardResponse{
			Columns:       GroupByStatus(list),
			FiltersActive: !c.IsZero(),
		})
	}
}

func CreateTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		due, err := ParseDate(body.DueDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		priority := PriorityMedium
		if body.Priority != "" {
			if priority, err = ParsePriority(body.Priority); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		data := NewTask{
			Title:       body.Title,
			Description: body.Description,
			Priority:    priority,
			AssigneeID:  emptyToNil(body.AssigneeID),
			DueDate:     due,
		}
		if err := data.Validate(); err != nil {
			http.Error(w, validationMessage, http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, store.Create(data, u.ID))
	}
}

func UpdateTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body updateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		current, found := scopedTask(store, u, r.PathValue("id"))
		if !found {
			writeMutation(w, Task{}, false)
			return
		}

		edited, err := applyEdit(current, body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, found := store.UpdateFields(edited, u.ID)
		writeMutation(w, t, found)
	}
}

func SetTaskStatusHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body statusRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		status, err := ParseStatus(body.Status)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		id := r.PathValue("id")
		if _, found := scopedTask(store, u, id); !found {
			writeMutation(w, Task{}, false)
			return
		}

		t, found := store.UpdateStatus(id, status, u.ID)
		writeMutation(w, t, found)
	}
}

// DeleteTaskHandler is mounted behind the Scrum Master gate.
func DeleteTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Delete(r.PathValue("id"))
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// ResetHandler puts the board back to the seed state.
func ResetHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Reset(); err != nil {
			http.Error(w, "reset failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// applyEdit overlays the fields present in body onto current. Title and due
// date may not be cleared, matching the create rule.
func applyEdit(current Task, body updateTaskRequest) (Task, error) {
	edited := current
	if body.Title != nil {
		if *body.Title == "" {
			return Task{}, ErrTitleRequired
		}
		edited.Title = *body.Title
	}
	if body.Description != nil {
		edited.Description = *body.Description
	}
	if body.AssigneeID != nil {
		edited.AssigneeID = emptyToNil(body.AssigneeID)
	}
	if body.Priority != nil {
		p, err := ParsePriority(*body.Priority)
		if err != nil {
			return Task{}, err
		}
		edited.Priority = p
	}
	if body.DueDate != nil {
		d, err := ParseDate(*body.DueDate)
		if err != nil {
			return Task{}, err
		}
		if d.IsZero() {
			return Task{}, ErrDueDateRequired
		}
		edited.DueDate = d
	}
	if body.Status != nil {
		st, err := ParseStatus(*body.Status)
		if err != nil {
			return Task{}, err
		}
		edited.Status = st
	}
	return edited, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
