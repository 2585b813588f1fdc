package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"anime-hub/domain/model"
	"anime-hub/infrastructure/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	channelKeyPrefix = "youtube:channel:"
	channelIndexKey  = "youtube:channels"
)

// ChannelCache is a Redis-backed channel store used when MongoDB is not
// available. Records carry no key TTL; staleness is the coordinator's policy,
// not the store's.
type ChannelCache struct {
	client *redis.Client
}

func NewChannelCache(client *redis.Client) *ChannelCache {
	return &ChannelCache{client: client}
}

func (c *ChannelCache) GetByHandle(ctx context.Context, handle string) (*model.ChannelRecord, error) {
	raw, err := c.client.Get(ctx, channelKeyPrefix+handle).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var record model.ChannelRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode channel record: %w", err)
	}
	return &record, nil
}

func (c *ChannelCache) Upsert(ctx context.Context, record *model.ChannelRecord) error {
	if record.ID.IsZero() {
		record.ID = bson.NewObjectID()
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, channelKeyPrefix+record.Handle, raw, 0)
	pipe.SAdd(ctx, channelIndexKey, record.Handle)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *ChannelCache) List(ctx context.Context) ([]model.ChannelRecord, error) {
	handles, err := c.client.SMembers(ctx, channelIndexKey).Result()
	if err != nil {
		return nil, err
	}
	records := make([]model.ChannelRecord, 0, len(handles))
	for _, handle := range handles {
		record, err := c.GetByHandle(ctx, handle)
		if err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"handle": handle,
				"error":  err,
			}).Warn("Skipping unreadable channel record")
			continue
		}
		if record != nil {
			records = append(records, *record)
		}
	}
	return records, nil
}

// Delete scans the index for the record carrying the given storage id. The
// index stays small (one entry per registered creator), so the scan is fine.
func (c *ChannelCache) Delete(ctx context.Context, id string) error {
	handles, err := c.client.SMembers(ctx, channelIndexKey).Result()
	if err != nil {
		return err
	}
	for _, handle := range handles {
		record, err := c.GetByHandle(ctx, handle)
		if err != nil || record == nil {
			continue
		}
		if record.ID.Hex() == id {
			pipe := c.client.TxPipeline()
			pipe.Del(ctx, channelKeyPrefix+handle)
			pipe.SRem(ctx, channelIndexKey, handle)
			_, err = pipe.Exec(ctx)
			return err
		}
	}
	return model.ErrChannelNotFound
}
