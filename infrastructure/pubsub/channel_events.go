package pubsub

import (
	"context"

	"anime-hub/domain/repository"
	"anime-hub/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// NewPubSub connects a Google Pub/Sub client for the given project.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID)
}

// ChannelEvents publishes channel lifecycle events to a Pub/Sub topic for the
// notification subsystem. Implements repository.IChannelEvents.
type ChannelEvents struct {
	client *pubsub.Client
	topic  string
}

func NewChannelEvents(client *pubsub.Client, topic string) repository.IChannelEvents {
	return &ChannelEvents{client: client, topic: topic}
}

func (e *ChannelEvents) Publish(ctx context.Context, eventType, handle string, payload []byte) error {
	topic := e.client.Topic(e.topic)

	// Create the topic if it doesn't exist.
	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		logger.GetLogger().WithField("topic", e.topic).Info("Topic doesn't exist - creating it")
		if _, err := e.client.CreateTopic(ctx, e.topic); err != nil {
			return err
		}
	}

	msg := &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event":  eventType,
			"handle": handle,
		},
	}
	serverID, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"serverId": serverID,
		"event":    eventType,
	}).Debug("Channel event published")
	return nil
}
