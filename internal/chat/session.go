package chat

import (
	"context"
	"fmt"
	"sync"

	"equiedge/pkg/cometchat"
)

// Session owns the chat provider's connection lifecycle for this process:
// init-once, login/switch-user, logout. It is an explicit object handed to
// callers, not a package-level singleton, so tests can run several sessions
// side by side. Only one uid is logged in at a time; logging in a different
// uid forces the previous one out.
type Session struct {
	sdk SDK
	cfg cometchat.Config

	mu          sync.Mutex
	initialized bool
	loggedIn    bool
	currentUID  string
}

func NewSession(sdk SDK, cfg cometchat.Config) *Session {
	return &Session{sdk: sdk, cfg: cfg}
}

// Initialize configures the provider with the fixed app credentials.
// No-ops when already initialized; a failure leaves the session
// uninitialized so the caller can simply call again.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := s.sdk.Init(ctx, s.cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrSDKInitFailed, err)
	}
	s.initialized = true
	return nil
}

// Login makes uid the current user, initializing first if needed. A
// different logged-in uid is logged out before the new login so messages
// never cross between users sharing the process.
func (s *Session) Login(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loggedIn && s.currentUID == uid {
		return nil
	}
	if !s.initialized {
		if err := s.sdk.Init(ctx, s.cfg); err != nil {
			return fmt.Errorf("%w: %v", ErrSDKInitFailed, err)
		}
		s.initialized = true
	}
	if s.loggedIn {
		if err := s.sdk.Logout(ctx); err != nil {
			return fmt.Errorf("%w: logout of %s: %v", ErrLoginFailed, s.currentUID, err)
		}
		s.loggedIn = false
		s.currentUID = ""
	}
	if err := s.sdk.Login(ctx, uid); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoginFailed, uid, err)
	}
	s.loggedIn = true
	s.currentUID = uid
	return nil
}

// Logout no-ops when nobody is logged in. State is cleared only on a
// successful provider logout so a retry stays possible.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return nil
	}
	if err := s.sdk.Logout(ctx); err != nil {
		return err
	}
	s.loggedIn = false
	s.currentUID = ""
	return nil
}

// SendDirectMessage delivers a point-to-point text message as the current
// user. No queuing and no retry: a transport failure surfaces to the caller.
func (s *Session) SendDirectMessage(ctx context.Context, toUID, text string) error {
	s.mu.Lock()
	if !s.loggedIn {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	s.mu.Unlock()
	if err := s.sdk.SendMessage(ctx, cometchat.Message{ToUID: toUID, Text: text}); err != nil {
		return fmt.Errorf("%w: to %s: %v", ErrSendFailed, toUID, err)
	}
	return nil
}

func (s *Session) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// CurrentUID returns the logged-in uid, or ok=false when logged out.
func (s *Session) CurrentUID() (uid string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUID, s.loggedIn
}
