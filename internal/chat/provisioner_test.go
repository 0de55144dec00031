package chat_test

import (
	"context"
	"errors"
	"testing"

	"equiedge/internal/chat"
	"equiedge/pkg/cometchat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProvisioner_EnsureAccountIdempotent(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
	sdk.On("CreateUser", mock.Anything, mock.Anything).Return(cometchat.ErrUserExists).Once()
	p := chat.NewProvisioner(sdk)

	assert.NoError(t, p.EnsureAccount(context.Background(), "p1", "Jess Rider", ""))
	// Second call hits "already exists" and still reports success.
	assert.NoError(t, p.EnsureAccount(context.Background(), "p1", "Jess Rider", ""))
	sdk.AssertNumberOfCalls(t, "CreateUser", 2)
}

func TestProvisioner_EnsureAccountSurfacesOtherErrors(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("CreateUser", mock.Anything, mock.Anything).Return(errors.New("503"))
	p := chat.NewProvisioner(sdk)

	err := p.EnsureAccount(context.Background(), "p1", "Jess Rider", "")
	assert.Error(t, err)
}

func TestProvisioner_PassesIdentityThrough(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("CreateUser", mock.Anything, cometchat.Identity{
		UID: "p9", Name: "Sam Trainer", AvatarURL: "https://cdn.example/avatar.png",
	}).Return(nil)
	p := chat.NewProvisioner(sdk)

	assert.NoError(t, p.EnsureAccount(context.Background(), "p9", "Sam Trainer", "https://cdn.example/avatar.png"))
	sdk.AssertExpectations(t)
}
