package repository

import "context"

// Channel lifecycle event types published to the events topic.
const (
	ChannelEventRegistered = "channel.registered"
	ChannelEventRefreshed  = "channel.refreshed"
	ChannelEventDeleted    = "channel.deleted"
)

// IChannelEvents fans out channel lifecycle events for downstream consumers
// (the notification subsystem). Publishing is best-effort: failures are logged
// by callers and never block the request path.
type IChannelEvents interface {
	Publish(ctx context.Context, eventType, handle string, payload []byte) error
}
