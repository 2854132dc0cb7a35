package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"taskflow-backend/internal/tasks"
	"taskflow-backend/internal/users"
)

var roster = users.NewRoster([]users.User{
	{ID: "u1", Name: "Alex Johnson", Role: users.RoleScrumMaster},
	{ID: "u2", Name: "Samantha Lee", Role: users.RoleEmployee},
})

func ptr(s string) *string { return &s }

func sample() []tasks.Task {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return []tasks.Task{
		{ID: "TIS-1", Title: "Design", Status: tasks.StatusToDo, Priority: tasks.PriorityHigh, AssigneeID: ptr("u2"), DueDate: due,
			History: []tasks.TaskEvent{{Event: "created this task"}, {Event: "set the priority to High"}}},
		{ID: "TIS-2", Title: "Orphan", Status: tasks.StatusReview, Priority: tasks.PriorityLow, AssigneeID: ptr("gone"), DueDate: due},
		{ID: "TIS-3", Title: "Loose", Status: tasks.StatusDone, Priority: tasks.PriorityMedium, DueDate: due},
	}
}

type fakeCompleter struct {
	configured bool
	text       string
	err        error
	calls      int
	prompt     string
}

func (f *fakeCompleter) Configured() bool { return f.configured }

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.text, f.err
}

func TestSummarize(t *testing.T) {
	is := is.New(t)

	got := Summarize(sample(), roster)
	is.Equal(got[0], TaskSummary{
		ID: "TIS-1", Title: "Design", Status: "To Do", Priority: "High",
		Assignee: "Samantha Lee", HistoryLength: 2, DueDate: "1/10/2025",
	})
	is.Equal(got[1].Assignee, "Unassigned") // stale reference
	is.Equal(got[2].Assignee, "Unassigned")
}

func TestBuildInsightsPrompt(t *testing.T) {
	is := is.New(t)

	prompt, err := BuildInsightsPrompt(Summarize(sample(), roster))
	is.NoErr(err)
	is.True(strings.Contains(prompt, "Data:\n[\n  {\n    \"id\": \"TIS-1\""))
	is.True(strings.Contains(prompt, `"historyLength": 2`))
	is.True(strings.Contains(prompt, "3-5 bullet points"))
}

func TestInsights_Generate(t *testing.T) {
	t.Run("not configured never calls upstream", func(t *testing.T) {
		is := is.New(t)
		f := &fakeCompleter{}
		r := NewInsights(f).Generate(context.Background(), sample(), roster)
		is.Equal(r.Outcome, OutcomeNotConfigured)
		is.Equal(r.Text, NotConfiguredMessage)
		is.Equal(f.calls, 0)
	})

	t.Run("nil client counts as not configured", func(t *testing.T) {
		is := is.New(t)
		r := NewInsights(nil).Generate(context.Background(), nil, roster)
		is.Equal(r.Outcome, OutcomeNotConfigured)
	})

	t.Run("failure is a fixed message", func(t *testing.T) {
		is := is.New(t)
		f := &fakeCompleter{configured: true, err: errors.New("boom")}
		r := NewInsights(f).Generate(context.Background(), sample(), roster)
		is.Equal(r.Outcome, OutcomeFailed)
		is.Equal(r.Text, FailureMessage)
		is.Equal(f.calls, 1) // no retries
	})

	t.Run("success returns text and html", func(t *testing.T) {
		is := is.New(t)
		f := &fakeCompleter{configured: true, text: "- **Review Bottleneck:** too many reviews"}
		r := NewInsights(f).Generate(context.Background(), sample(), roster)
		is.Equal(r.Outcome, OutcomeGenerated)
		is.Equal(r.Text, f.text)
		is.True(strings.Contains(r.HTML, "<strong>Review Bottleneck:</strong>"))
		is.True(strings.Contains(f.prompt, "Samantha Lee"))
	})
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Run("sends chat request and reads reply", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			is.Equal(r.URL.Path, "/v1/chat/completions")
			is.Equal(r.Header.Get("Authorization"), "Bearer k")

			var req chatRequest
			is.NoErr(json.NewDecoder(r.Body).Decode(&req))
			is.Equal(req.Model, "m")
			is.Equal(len(req.Messages), 2)
			is.Equal(req.Messages[1].Content, "hello")

			_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"  - tip  "}}]}`)
		}))
		defer srv.Close()

		c := New("k", "m", srv.URL+"/v1/")
		text, err := c.Complete(context.Background(), "sys", "hello")
		is.NoErr(err)
		is.Equal(text, "- tip")
	})

	t.Run("upstream error", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"bad key"}}`)
		}))
		defer srv.Close()

		_, err := New("k", "m", srv.URL).Complete(context.Background(), "", "x")
		is.True(err != nil)
		is.True(strings.Contains(err.Error(), "bad key"))
	})

	t.Run("non json failure", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gateway down", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := New("k", "m", srv.URL).Complete(context.Background(), "", "x")
		is.True(err != nil)
	})

	t.Run("empty choices", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"choices":[]}`)
		}))
		defer srv.Close()

		_, err := New("k", "m", srv.URL).Complete(context.Background(), "", "x")
		is.True(errors.Is(err, errEmptyCompletion))
	})

	t.Run("no key", func(t *testing.T) {
		is := is.New(t)
		c := New("", "m", "")
		is.True(!c.Configured())
		is.Equal(c.BaseURL, DefaultBaseURL)
		_, err := c.Complete(context.Background(), "", "x")
		is.True(err != nil)
	})
}

func TestInsightsHandler(t *testing.T) {
	is := is.New(t)

	store, err := tasks.NewStore()
	is.NoErr(err)
	gen := NewInsights(New("", "m", ""))

	rec := httptest.NewRecorder()
	InsightsHandler(gen, store, roster)(rec, httptest.NewRequest(http.MethodPost, "/analytics/insights", nil))
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("Content-Type"), "application/json")

	var r Report
	is.NoErr(json.NewDecoder(rec.Body).Decode(&r))
	is.Equal(r.Outcome, OutcomeNotConfigured)
	is.True(strings.Contains(r.HTML, "<code>OPENAI_API_KEY</code>"))
}
