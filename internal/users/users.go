package users

import (
	"fmt"
	"strings"

	"taskflow-backend/internal/seed"
)

type Role string

const (
	RoleScrumMaster Role = "Scrum Master"
	RoleEmployee    Role = "Employee"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleScrumMaster, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
}

func (u User) IsScrumMaster() bool {
	return u.Role == RoleScrumMaster
}

// FirstName is what the analytics charts label users with.
func (u User) FirstName() string {
	name, _, _ := strings.Cut(u.Name, " ")
	return name
}

// Roster is the fixed set of users known to the process. It is built once
// at startup and never mutated.
type Roster struct {
	users []User
	byID  map[string]User
}

func NewRoster(list []User) *Roster {
	r := &Roster{
		users: append([]User(nil), list...),
		byID:  make(map[string]User, len(list)),
	}
	for _, u := range list {
		r.byID[u.ID] = u
	}
	return r
}

// FromSeed builds the roster from the seed set.
func FromSeed(d seed.Data) (*Roster, error) {
	list := make([]User, 0, len(d.Users))
	for _, rec := range d.Users {
		role, err := ParseRole(rec.Role)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", rec.ID, err)
		}
		list = append(list, User{ID: rec.ID, Name: rec.Name, Avatar: rec.Avatar, Role: role})
	}
	return NewRoster(list), nil
}

// All returns the users in roster order.
func (r *Roster) All() []User {
	return append([]User(nil), r.users...)
}

// Find resolves a user id. Assignee references are not checked on write,
// so callers must handle a miss.
func (r *Roster) Find(id string) (User, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// NameOf returns the display name for an optional user id, or fallback when
// the id is nil or does not resolve.
func (r *Roster) NameOf(id *string, fallback string) string {
	if id == nil {
		return fallback
	}
	if u, ok := r.Find(*id); ok {
		return u.Name
	}
	return fallback
}
