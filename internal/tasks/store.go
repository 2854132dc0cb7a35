package tasks

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"taskflow-backend/internal/seed"
)

const idPrefix = "TIS-"

// Store is the only owner of the task collection. Every mutation runs under
// one lock, so readers see either the whole change or none of it. Values
// handed out are copies.
type Store struct {
	mu    sync.RWMutex
	tasks []Task // newest first
	next  int

	now  func() time.Time
	seed seed.Data
}

type Option func(*Store)

// WithClock replaces time.Now for event timestamps and seed dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed replaces the embedded seed set.
func WithSeed(d seed.Data) Option {
	return func(s *Store) { s.seed = d }
}

func NewStore(opts ...Option) (*Store, error) {
	s := &Store{now: time.Now, seed: seed.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores the seed state, discarding every change since startup.
func (s *Store) Reset() error {
	list, err := FromSeed(s.seed, s.now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = list
	s.next = 1
	for _, t := range list {
		if n, ok := idNumber(t.ID); ok && n >= s.next {
			s.next = n + 1
		}
	}
	return nil
}

// List returns every task, newest first.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.clone()
	}
	return out
}

func (s *Store) Get(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i].clone(), true
}

// Create adds a task in To Do with a single creation event. The payload is
// expected to have passed NewTask.Validate already.
func (s *Store) Create(data NewTask, creatorID string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Task{
		ID:          s.nextIDLocked(),
		Title:       data.Title,
		Description: data.Description,
		Status:      StatusToDo,
		Priority:    data.Priority,
		AssigneeID:  data.AssigneeID,
		DueDate:     data.DueDate,
		History:     []TaskEvent{s.event("created this task", creatorID)},
	}
	t = t.clone()

	s.tasks = append([]Task{t}, s.tasks...)
	return t.clone()
}

// UpdateStatus moves a task to newStatus and records the move. Moving a task
// to the status it already has is still recorded. Unknown ids are ignored.
func (s *Store) UpdateStatus(id string, newStatus Status, actorID string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Task{}, false
	}

	t := s.tasks[i].clone()
	msg := fmt.Sprintf("moved this task from %s to %s", t.Status, newStatus)
	t.Status = newStatus
	t.History = append(t.History, s.event(msg, actorID))

	s.tasks[i] = t
	return t.clone(), true
}

// UpdateFields stores an edited task and records one event per changed
// field (title, description, priority, due date). Status and assignee are
// taken from updated as-is without an event. The stored history is kept;
// updated.History is ignored. Unknown ids are ignored.
func (s *Store) UpdateFields(updated Task, actorID string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(updated.ID)
	if i < 0 {
		return Task{}, false
	}

	orig := s.tasks[i]
	next := updated.clone()
	next.History = append([]TaskEvent(nil), orig.History...)
	for _, msg := range fieldChanges(orig, updated) {
		next.History = append(next.History, s.event(msg, actorID))
	}

	s.tasks[i] = next
	return next.clone(), true
}

// Delete removes a task and its history. Unknown ids are ignored.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true
}

func (s *Store) event(msg, actorID string) TaskEvent {
	if actorID == "" {
		actorID = SystemActorID
	}
	return TaskEvent{Timestamp: s.now(), Event: msg, UserID: actorID}
}

func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextIDLocked() string {
	for {
		id := idPrefix + strconv.Itoa(s.next)
		s.next++
		if s.indexLocked(id) < 0 {
			return id
		}
	}
}

func idNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
