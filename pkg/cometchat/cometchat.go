package cometchat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds the fixed application credentials for a CometChat app.
type Config struct {
	AppID   string
	Region  string
	AuthKey string
}

// Identity describes a chat user. UID is the marketplace profile id.
type Identity struct {
	UID       string
	Name      string
	AvatarURL string
}

// Message is a point-to-point text message.
type Message struct {
	ToUID string
	Text  string
}

// ErrUserExists is returned by CreateUser when the UID is already
// registered with the provider. Callers treat it as success.
var ErrUserExists = errors.New("cometchat: user already exists")

// Client talks to the CometChat REST API (v3). One logged-in user at a
// time; Login stores the per-user auth token used for message sends.
type Client struct {
	client *http.Client

	mu        sync.Mutex
	cfg       Config
	baseURL   string
	uid       string
	authToken string
}

// NewClient builds a client for the app in cfg. The REST endpoint is
// usable right away; Init only validates the credentials against the API.
func NewClient(cfg Config) *Client {
	c := &Client{client: &http.Client{Timeout: 30 * time.Second}}
	c.configure(cfg)
	return c
}

func (c *Client) configure(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.baseURL = ""
	if cfg.AppID != "" && cfg.Region != "" {
		c.baseURL = fmt.Sprintf("https://%s.api-%s.cometchat.io/v3", cfg.AppID, strings.ToLower(cfg.Region))
	}
}

// Init validates the app credentials against the API. Safe to call again
// after a failure.
func (c *Client) Init(ctx context.Context, cfg Config) error {
	if cfg.AppID == "" || cfg.Region == "" {
		return fmt.Errorf("cometchat: app id and region are required")
	}
	c.configure(cfg)
	base, authKey, err := c.endpoint()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/users?perPage=1", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apiKey", authKey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cometchat: init: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cometchat: init: unexpected status %d", resp.StatusCode)
	}
	return nil
}

type createUserReq struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateUser registers the identity with the provider. Returns ErrUserExists
// when the UID is already taken.
func (c *Client) CreateUser(ctx context.Context, id Identity) error {
	base, authKey, err := c.endpoint()
	if err != nil {
		return err
	}
	body, _ := json.Marshal(createUserReq{UID: id.UID, Name: id.Name, Avatar: id.AvatarURL})
	resp, err := c.do(ctx, http.MethodPost, base+"/users", authKey, "", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cometchat: create user: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return ErrUserExists
	}
	if resp.StatusCode >= 300 {
		var apiErr apiError
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Code == "ERR_UID_ALREADY_EXISTS" {
			return ErrUserExists
		}
		return fmt.Errorf("cometchat: create user: status %d", resp.StatusCode)
	}
	return nil
}

type authTokenResp struct {
	Data struct {
		AuthToken string `json:"authToken"`
	} `json:"data"`
}

// Login obtains an auth token for the UID and makes it the current user.
func (c *Client) Login(ctx context.Context, uid string) error {
	base, authKey, err := c.endpoint()
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, base+"/users/"+uid+"/auth_tokens", authKey, "", nil)
	if err != nil {
		return fmt.Errorf("cometchat: login %s: %w", uid, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cometchat: login %s: status %d", uid, resp.StatusCode)
	}
	var out authTokenResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("cometchat: login %s: %w", uid, err)
	}
	c.mu.Lock()
	c.uid = uid
	c.authToken = out.Data.AuthToken
	c.mu.Unlock()
	return nil
}

// Logout flushes the current user's auth tokens and clears local state.
// Token revocation is best-effort; local state is always cleared.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	uid := c.uid
	c.uid = ""
	c.authToken = ""
	c.mu.Unlock()
	if uid == "" {
		return nil
	}
	base, authKey, err := c.endpoint()
	if err != nil {
		return nil
	}
	resp, err := c.do(ctx, http.MethodDelete, base+"/users/"+uid+"/auth_tokens", authKey, "", nil)
	if err != nil {
		return nil
	}
	resp.Body.Close()
	return nil
}

type sendMessageReq struct {
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	Receiver     string          `json:"receiver"`
	ReceiverType string          `json:"receiverType"`
	Data         sendMessageData `json:"data"`
}

type sendMessageData struct {
	Text string `json:"text"`
}

// SendMessage delivers a text message from the current user.
func (c *Client) SendMessage(ctx context.Context, m Message) error {
	base, authKey, err := c.endpoint()
	if err != nil {
		return err
	}
	c.mu.Lock()
	uid := c.uid
	c.mu.Unlock()
	if uid == "" {
		return fmt.Errorf("cometchat: send: no user logged in")
	}
	body, _ := json.Marshal(sendMessageReq{
		Category:     "message",
		Type:         "text",
		Receiver:     m.ToUID,
		ReceiverType: "user",
		Data:         sendMessageData{Text: m.Text},
	})
	resp, err := c.do(ctx, http.MethodPost, base+"/messages", authKey, uid, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cometchat: send to %s: %w", m.ToUID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cometchat: send to %s: status %d", m.ToUID, resp.StatusCode)
	}
	return nil
}

func (c *Client) endpoint() (baseURL, authKey string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.baseURL == "" {
		return "", "", fmt.Errorf("cometchat: app id and region not configured")
	}
	return c.baseURL, c.cfg.AuthKey, nil
}

func (c *Client) do(ctx context.Context, method, url, authKey, onBehalfOf string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apiKey", authKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if onBehalfOf != "" {
		req.Header.Set("onBehalfOf", onBehalfOf)
	}
	return c.client.Do(req)
}
