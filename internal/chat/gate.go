package chat

import (
	"context"
	"fmt"

	"equiedge/internal/models"
)

// ProfileDirectory resolves a profile id to its row.
type ProfileDirectory interface {
	GetByID(id string) (*models.Profile, error)
}

// BookingHistory answers the access predicate: does any booking exist where
// the profile appears as either party.
type BookingHistory interface {
	HasAnyForProfile(profileID string) (bool, error)
}

// GateResult is the gate's decision. Only meaningful when the error
// returned alongside it is nil.
type GateResult int

const (
	// GateNoHistory: render the welcome placeholder; the chat provider was
	// not touched.
	GateNoHistory GateResult = iota
	// GateReady: the session is initialized and logged in as the profile.
	GateReady
)

func (r GateResult) String() string {
	if r == GateReady {
		return "ready"
	}
	return "no_history"
}

// Gate decides whether a user may enter the live chat surface and drives
// the side-effecting calls that make it usable. Steps run strictly in
// order; each depends on the previous one having succeeded.
//
// Policy note: chat identities are provisioned at registration, but the
// gate still skips every provider call for users without booking history.
// An idle identity costs nothing; an initialized session counts against
// provider quota.
type Gate struct {
	profiles    ProfileDirectory
	bookings    BookingHistory
	session     *Session
	provisioner *Provisioner
}

func NewGate(profiles ProfileDirectory, bookings BookingHistory, session *Session, provisioner *Provisioner) *Gate {
	return &Gate{profiles: profiles, bookings: bookings, session: session, provisioner: provisioner}
}

// ResolveChatAccess returns GateNoHistory or GateReady for the profile.
//
// Errors are terminal for this call; there is no retry inside the gate.
// Partial bootstrap progress (identity created but login failed) is left
// as-is: every step re-checks "already done", so the next call retries
// only what failed. When the session is already logged in as this profile
// the provider is not called at all.
func (g *Gate) ResolveChatAccess(ctx context.Context, profileID string) (GateResult, error) {
	profile, err := g.profiles.GetByID(profileID)
	if err != nil {
		return GateNoHistory, fmt.Errorf("%w: %s: %v", ErrProfileUnresolved, profileID, err)
	}

	hasHistory, err := g.bookings.HasAnyForProfile(profile.ID)
	if err != nil {
		return GateNoHistory, fmt.Errorf("%w: %v", ErrHistoryCheckFailed, err)
	}
	if !hasHistory {
		return GateNoHistory, nil
	}

	if uid, ok := g.session.CurrentUID(); ok && uid == profile.ID {
		return GateReady, nil
	}

	if err := g.provisioner.EnsureAccount(ctx, profile.ID, profile.DisplayName(""), profile.ProfileImageURL); err != nil {
		return GateNoHistory, fmt.Errorf("%w: ensure identity: %v", ErrChatBootstrapFailed, err)
	}
	if err := g.session.Initialize(ctx); err != nil {
		return GateNoHistory, fmt.Errorf("%w: %v", ErrChatBootstrapFailed, err)
	}
	if err := g.session.Login(ctx, profile.ID); err != nil {
		return GateNoHistory, fmt.Errorf("%w: %v", ErrChatBootstrapFailed, err)
	}
	return GateReady, nil
}
