package mockapi

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cudeca/eventos-seed/internal/model"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")
)

// Event states
const (
	StatusDraft     = "BORRADOR"
	StatusPublished = "PUBLICADO"
)

// User is a registered account
type User struct {
	ID        int64
	Name      string
	Surname   string
	Email     string
	Hash      string
	Roles     []string
	CreatedOn time.Time
}

// RoleList returns the roles comma separated, as the backend reports them
func (u *User) RoleList() string {
	return strings.Join(u.Roles, ",")
}

// EventRecord is a stored event
type EventRecord struct {
	ID          int64
	Event       model.Event
	Status      string
	OwnerID     int64
	CreatedOn   time.Time
	PublishedOn *time.Time
}

// Store keeps users and events in memory
type Store struct {
	mu          sync.RWMutex
	users       map[string]*User
	events      map[int64]*EventRecord
	order       []int64
	nextUserID  int64
	nextEventID int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:  make(map[string]*User),
		events: make(map[int64]*EventRecord),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new account and assigns its id
func (s *Store) CreateUser(u User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(u.Email)
	if _, exists := s.users[key]; exists {
		return nil, ErrEmailTaken
	}

	s.nextUserID++
	u.ID = s.nextUserID
	u.CreatedOn = time.Now().UTC()
	s.users[key] = &u

	stored := u
	return &stored, nil
}

// UserByEmail looks an account up by email, case-insensitively
func (s *Store) UserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[emailKey(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	stored := *u
	return &stored, nil
}

// CreateEvent stores a draft event and assigns its id
func (s *Store) CreateEvent(ownerID int64, e model.Event) *EventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEventID++
	rec := &EventRecord{
		ID:        s.nextEventID,
		Event:     e,
		Status:    StatusDraft,
		OwnerID:   ownerID,
		CreatedOn: time.Now().UTC(),
	}
	s.events[rec.ID] = rec
	s.order = append(s.order, rec.ID)

	stored := *rec
	return &stored
}

// PublishEvent moves an event to the published state. Publishing an
// already published event is a no-op.
func (s *Store) PublishEvent(id int64) (*EventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	if rec.Status != StatusPublished {
		now := time.Now().UTC()
		rec.Status = StatusPublished
		rec.PublishedOn = &now
	}

	stored := *rec
	return &stored, nil
}

// Events returns all events in creation order
func (s *Store) Events() []EventRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]EventRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.events[id])
	}
	return out
}
