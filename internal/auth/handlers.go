package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"taskflow-backend/internal/users"
)

var ErrUnknownUser = errors.New("unknown user")

// Login signs in as one of the roster users. There are no passwords: the
// login page is a user picker.
func Login(roster *users.Roster, secret []byte, userID string, now time.Time) (string, users.User, error) {
	u, ok := roster.Find(userID)
	if !ok {
		return "", users.User{}, ErrUnknownUser
	}
	token, err := GenerateToken(secret, u.ID, now)
	if err != nil {
		return "", users.User{}, err
	}
	return token, u, nil
}

func LoginHandler(roster *users.Roster, secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		token, u, err := Login(roster, secret, body.UserID, time.Now())
		if errors.Is(err, ErrUnknownUser) {
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user":  u,
		})
	}
}

// UsersHandler lists the roster for the login page.
func UsersHandler(roster *users.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(roster.All())
	}
}

// MeHandler returns the signed-in user with the views they may open. The
// optional ?view= is resolved to the view that should actually render.
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		requested := users.View(r.URL.Query().Get("view"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":           u,
			"allowed_views":  users.AllowedViews(u),
			"effective_view": users.EffectiveView(u, requested),
		})
	}
}
