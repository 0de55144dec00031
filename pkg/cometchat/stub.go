package cometchat

import (
	"context"
	"fmt"
	"sync"
)

// Stub is an in-memory chat backend for development and local testing; no
// network calls are made.
type Stub struct {
	mu       sync.Mutex
	inited   bool
	users    map[string]Identity
	loggedIn string
	Sent     []Message
}

func NewStub() *Stub {
	return &Stub{users: make(map[string]Identity)}
}

func (s *Stub) Init(ctx context.Context, cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inited = true
	return nil
}

func (s *Stub) CreateUser(ctx context.Context, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id.UID]; ok {
		return ErrUserExists
	}
	s.users[id.UID] = id
	return nil
}

func (s *Stub) Login(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inited {
		return fmt.Errorf("cometchat: stub not initialized")
	}
	if _, ok := s.users[uid]; !ok {
		return fmt.Errorf("cometchat: stub: unknown uid %s", uid)
	}
	s.loggedIn = uid
	return nil
}

func (s *Stub) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = ""
	return nil
}

func (s *Stub) SendMessage(ctx context.Context, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loggedIn == "" {
		return fmt.Errorf("cometchat: stub: no user logged in")
	}
	s.Sent = append(s.Sent, m)
	return nil
}
