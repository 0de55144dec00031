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

var testCfg = cometchat.Config{AppID: "app", Region: "us", AuthKey: "key"}

func TestSession_InitializeIdempotent(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Initialize(context.Background()))
	assert.NoError(t, s.Initialize(context.Background()))
	assert.True(t, s.Initialized())
	sdk.AssertNumberOfCalls(t, "Init", 1)
}

func TestSession_InitializeRetryAfterFailure(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(errors.New("network down")).Once()
	sdk.On("Init", mock.Anything, testCfg).Return(nil).Once()
	s := chat.NewSession(sdk, testCfg)

	err := s.Initialize(context.Background())
	assert.ErrorIs(t, err, chat.ErrSDKInitFailed)
	assert.False(t, s.Initialized())

	assert.NoError(t, s.Initialize(context.Background()))
	assert.True(t, s.Initialized())
}

func TestSession_LoginSameUIDNoOp(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	sdk.On("Login", mock.Anything, "p1").Return(nil)
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Login(context.Background(), "p1"))
	assert.NoError(t, s.Login(context.Background(), "p1"))

	sdk.AssertNumberOfCalls(t, "Login", 1)
	sdk.AssertNotCalled(t, "Logout", mock.Anything)
	uid, ok := s.CurrentUID()
	assert.True(t, ok)
	assert.Equal(t, "p1", uid)
}

func TestSession_LoginSwitchUserForcesLogout(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	sdk.On("Login", mock.Anything, mock.Anything).Return(nil)
	sdk.On("Logout", mock.Anything).Return(nil)
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Login(context.Background(), "a"))
	assert.NoError(t, s.Login(context.Background(), "b"))

	sdk.AssertNumberOfCalls(t, "Logout", 1)
	sdk.AssertNumberOfCalls(t, "Login", 2)
	uid, ok := s.CurrentUID()
	assert.True(t, ok)
	assert.Equal(t, "b", uid)
}

func TestSession_LoginFailure(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	sdk.On("Login", mock.Anything, "p1").Return(errors.New("denied"))
	s := chat.NewSession(sdk, testCfg)

	err := s.Login(context.Background(), "p1")
	assert.ErrorIs(t, err, chat.ErrLoginFailed)
	_, ok := s.CurrentUID()
	assert.False(t, ok)
}

func TestSession_LogoutNoOpWhenLoggedOut(t *testing.T) {
	sdk := new(MockSDK)
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Logout(context.Background()))
	sdk.AssertNotCalled(t, "Logout", mock.Anything)
}

func TestSession_LogoutKeepsStateOnError(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	sdk.On("Login", mock.Anything, "p1").Return(nil)
	sdk.On("Logout", mock.Anything).Return(errors.New("timeout")).Once()
	sdk.On("Logout", mock.Anything).Return(nil).Once()
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Login(context.Background(), "p1"))
	assert.Error(t, s.Logout(context.Background()))
	_, ok := s.CurrentUID()
	assert.True(t, ok)

	assert.NoError(t, s.Logout(context.Background()))
	_, ok = s.CurrentUID()
	assert.False(t, ok)
}

func TestSession_SendWithoutLogin(t *testing.T) {
	sdk := new(MockSDK)
	s := chat.NewSession(sdk, testCfg)

	err := s.SendDirectMessage(context.Background(), "a", "hi")
	assert.ErrorIs(t, err, chat.ErrNotLoggedIn)
	sdk.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestSession_SendAfterUserSwitch(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	sdk.On("Login", mock.Anything, mock.Anything).Return(nil)
	sdk.On("Logout", mock.Anything).Return(nil)
	sdk.On("SendMessage", mock.Anything, cometchat.Message{ToUID: "a", Text: "hi"}).Return(nil)
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Login(context.Background(), "a"))
	assert.NoError(t, s.Login(context.Background(), "b"))
	// "b" is the current user, so sending to "a" succeeds.
	assert.NoError(t, s.SendDirectMessage(context.Background(), "a", "hi"))
}

func TestSession_SendTransportFailure(t *testing.T) {
	sdk := new(MockSDK)
	sdk.On("Init", mock.Anything, testCfg).Return(nil)
	sdk.On("Login", mock.Anything, "p1").Return(nil)
	sdk.On("SendMessage", mock.Anything, mock.Anything).Return(errors.New("socket closed"))
	s := chat.NewSession(sdk, testCfg)

	assert.NoError(t, s.Login(context.Background(), "p1"))
	err := s.SendDirectMessage(context.Background(), "p2", "hello")
	assert.ErrorIs(t, err, chat.ErrSendFailed)
}
