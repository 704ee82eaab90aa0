package solace

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNotConnected indicates the backend connection is not live yet.
	// Actions that would hit the network are disabled until it is.
	ErrNotConnected = errors.New("backend not connected")

	// ErrRemoteCall indicates a network or service failure on a backend call.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrValidation indicates a local precondition failed; nothing was sent.
	ErrValidation = errors.New("validation error")

	// ErrNoSession indicates a chat operation without an active session.
	ErrNoSession = errors.New("no active session")

	// ErrSendPending indicates a send for the active session is still in
	// flight. At most one send per session may be outstanding.
	ErrSendPending = errors.New("send already pending")
)
