package chat

import "errors"

var (
	// ErrProfileUnresolved: the profile id passed to the gate does not
	// resolve to a profile row.
	ErrProfileUnresolved = errors.New("chat: profile unresolved")

	// ErrHistoryCheckFailed: the booking-existence query failed. Terminal
	// for the call; the UI offers a manual retry.
	ErrHistoryCheckFailed = errors.New("chat: booking history check failed")

	// ErrChatBootstrapFailed wraps an identity-creation, init or login
	// failure inside the gate.
	ErrChatBootstrapFailed = errors.New("chat: bootstrap failed")

	ErrSDKInitFailed = errors.New("chat: sdk init failed")
	ErrLoginFailed   = errors.New("chat: login failed")
	ErrNotLoggedIn   = errors.New("chat: not logged in")
	ErrSendFailed    = errors.New("chat: send failed")
)
