package chat

import (
	"context"

	"equiedge/pkg/cometchat"
)

// SDK is the full surface this package needs from the chat provider.
// *cometchat.Client and *cometchat.Stub both satisfy it; tests swap in a
// mock.
type SDK interface {
	Init(ctx context.Context, cfg cometchat.Config) error
	Login(ctx context.Context, uid string) error
	Logout(ctx context.Context) error
	CreateUser(ctx context.Context, id cometchat.Identity) error
	SendMessage(ctx context.Context, m cometchat.Message) error
}
