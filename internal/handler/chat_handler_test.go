package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"equiedge/internal/chat"
	"equiedge/internal/handler"
	"equiedge/pkg/cometchat"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const (
	uidA = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	uidB = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// chatHandlerLoggedInAs builds a handler over a stub provider with uid
// already through init and login, the state a passed gate leaves behind.
func chatHandlerLoggedInAs(t *testing.T, uid string) (*handler.ChatHandler, *cometchat.Stub, *chat.Session) {
	t.Helper()
	sdk := cometchat.NewStub()
	session := chat.NewSession(sdk, cometchat.Config{AppID: "app", Region: "us"})
	ctx := context.Background()
	assert.NoError(t, sdk.CreateUser(ctx, cometchat.Identity{UID: uid, Name: "Jess Rider"}))
	assert.NoError(t, session.Initialize(ctx))
	assert.NoError(t, session.Login(ctx, uid))
	return handler.NewChatHandler(nil, session), sdk, session
}

func postAs(profileID, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("profile_id", profileID)
	return c, w
}

func TestChatHandler_SendRejectsCallerWhoIsNotSessionUser(t *testing.T) {
	h, sdk, _ := chatHandlerLoggedInAs(t, uidB)

	body := fmt.Sprintf(`{"to_profile_id":%q,"text":"hi"}`, uidB)
	c, w := postAs(uidA, "/api/v1/chat/messages", body)
	h.SendMessage(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, sdk.Sent, "nothing may be sent under another user's session")
}

func TestChatHandler_SendAsSessionUser(t *testing.T) {
	h, sdk, _ := chatHandlerLoggedInAs(t, uidB)

	body := fmt.Sprintf(`{"to_profile_id":%q,"text":"hi"}`, uidA)
	c, w := postAs(uidB, "/api/v1/chat/messages", body)
	h.SendMessage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sdk.Sent, 1)
	assert.Equal(t, uidA, sdk.Sent[0].ToUID)
}

func TestChatHandler_LogoutRejectsCallerWhoIsNotSessionUser(t *testing.T) {
	h, _, session := chatHandlerLoggedInAs(t, uidB)

	c, w := postAs(uidA, "/api/v1/chat/logout", "{}")
	h.Logout(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	uid, ok := session.CurrentUID()
	assert.True(t, ok, "the other user's session must survive")
	assert.Equal(t, uidB, uid)
}

func TestChatHandler_LogoutAsSessionUser(t *testing.T) {
	h, _, session := chatHandlerLoggedInAs(t, uidB)

	c, w := postAs(uidB, "/api/v1/chat/logout", "{}")
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := session.CurrentUID()
	assert.False(t, ok)
}

func TestChatHandler_LogoutWhenNobodyLoggedIn(t *testing.T) {
	sdk := cometchat.NewStub()
	session := chat.NewSession(sdk, cometchat.Config{AppID: "app", Region: "us"})
	h := handler.NewChatHandler(nil, session)

	c, w := postAs(uidA, "/api/v1/chat/logout", "{}")
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
