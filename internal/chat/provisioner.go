package chat

import (
	"context"
	"errors"
	"log"

	"equiedge/pkg/cometchat"
)

// Provisioner guarantees a chat identity exists for a profile id. It runs
// after registration and again, defensively, whenever chat is accessed in
// case the registration-time call failed.
type Provisioner struct {
	sdk SDK
}

func NewProvisioner(sdk SDK) *Provisioner {
	return &Provisioner{sdk: sdk}
}

// EnsureAccount creates the chat identity if it does not exist. An
// "already exists" response from the provider is success. Any other error
// is logged and returned; call sites where chat is secondary (registration,
// profile updates) discard it deliberately.
func (p *Provisioner) EnsureAccount(ctx context.Context, profileID, displayName, avatarURL string) error {
	err := p.sdk.CreateUser(ctx, cometchat.Identity{UID: profileID, Name: displayName, AvatarURL: avatarURL})
	if err == nil || errors.Is(err, cometchat.ErrUserExists) {
		return nil
	}
	log.Printf("[chat] ensure account %s: %v", profileID, err)
	return err
}
