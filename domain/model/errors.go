package model

import "errors"

// Sentinel errors for the channel curation flow. Callers match them with
// errors.Is; lower layers wrap them with context via fmt.Errorf("...: %w", err).
var (
	// ErrChannelNotFound is returned for reads/deletes against an unregistered
	// handle or id, and when the platform cannot resolve a handle.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrChannelAlreadyRegistered is returned when registering a handle that
	// already has a record. Registration is create-only, never upsert.
	ErrChannelAlreadyRegistered = errors.New("channel already registered")

	// ErrPlatformUnavailable covers transport failures and timeouts talking to
	// the video platform. It is surfaced to callers rather than silently
	// serving stale data; retry policy is theirs.
	ErrPlatformUnavailable = errors.New("video platform unavailable")
)
