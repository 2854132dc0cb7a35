package ai

import (
	"context"
	"encoding/json"
	"net/http"

	"taskflow-backend/internal/tasks"
	"taskflow-backend/internal/users"
)

// InsightsHandler runs one generation over the whole board. The upstream
// call is detached from the client's cancellation: a caller that walks away
// just never reads the answer.
func InsightsHandler(gen *Insights, store *tasks.Store, roster *users.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithoutCancel(r.Context())
		report := gen.Generate(ctx, store.List(), roster)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
	}
}
