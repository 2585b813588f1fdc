package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"anime-hub/domain/dto"
	"anime-hub/domain/model"
	"anime-hub/domain/repository"
	"anime-hub/infrastructure/logger"
)

// DefaultCacheTTL is how old a cached video list may grow before the next read
// triggers a refresh.
const DefaultCacheTTL = time.Hour

// IChannelUseCase coordinates the channel video cache: staleness policy,
// refresh, registration and administrative operations.
type IChannelUseCase interface {
	GetChannelVideos(ctx context.Context, handle string) (*dto.ChannelVideosResponse, error)
	RegisterChannel(ctx context.Context, req *dto.RegisterChannelRequest) (*model.ChannelRecord, error)
	DeleteChannel(ctx context.Context, id string) error
	ListChannels(ctx context.Context) ([]model.ChannelRecord, error)
}

// ChannelUseCase implements IChannelUseCase. The cache store is the only
// shared mutable resource; concurrent refreshes of the same handle are
// permitted because refresh is idempotent and the last writer wins.
type ChannelUseCase struct {
	cache    repository.IChannelCache
	platform repository.IVideoPlatform
	curation ICurationUseCase
	events   repository.IChannelEvents // optional
	ttl      time.Duration
	now      func() time.Time
}

// NewChannelUseCase creates a new channel use case instance.
func NewChannelUseCase(cache repository.IChannelCache, platform repository.IVideoPlatform, curation ICurationUseCase) *ChannelUseCase {
	return &ChannelUseCase{
		cache:    cache,
		platform: platform,
		curation: curation,
		ttl:      DefaultCacheTTL,
		now:      time.Now,
	}
}

// WithEvents enables best-effort lifecycle event publishing (fluent).
func (u *ChannelUseCase) WithEvents(events repository.IChannelEvents) *ChannelUseCase {
	u.events = events
	return u
}

// WithTTL overrides the staleness threshold (fluent).
func (u *ChannelUseCase) WithTTL(ttl time.Duration) *ChannelUseCase {
	if ttl > 0 {
		u.ttl = ttl
	}
	return u
}

// WithClock overrides the time source, for tests (fluent).
func (u *ChannelUseCase) WithClock(now func() time.Time) *ChannelUseCase {
	if now != nil {
		u.now = now
	}
	return u
}

// GetChannelVideos serves a channel's curated videos, refreshing from the
// platform when the cached list has outlived the TTL. Reads never register
// channels: an unknown handle is ErrChannelNotFound by policy.
func (u *ChannelUseCase) GetChannelVideos(ctx context.Context, handle string) (*dto.ChannelVideosResponse, error) {
	if handle == "" {
		return nil, fmt.Errorf("channel handle is required")
	}

	record, err := u.cache.GetByHandle(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to read channel cache: %w", err)
	}
	if record == nil {
		return nil, model.ErrChannelNotFound
	}

	if u.now().Sub(record.LastUpdated) < u.ttl {
		return &dto.ChannelVideosResponse{ChannelID: record.ChannelID, Videos: record.Videos}, nil
	}

	logger.GetLogger().WithField("handle", handle).Info("Cache stale, fetching fresh data")

	// Platform failures surface to the caller instead of silently serving
	// stale data; callers preferring availability retry with a relaxed TTL.
	videos, err := u.curation.Curate(ctx, record.ChannelID, false)
	if err != nil {
		return nil, err
	}

	record.Videos = videos
	record.LastUpdated = u.now()
	if err := u.cache.Upsert(ctx, record); err != nil {
		// Best-effort: a transient write failure must not degrade the read
		// path. The freshly curated list is still returned.
		logger.GetLogger().WithFields(map[string]interface{}{
			"handle": handle,
			"error":  err,
		}).Warn("Failed to persist refreshed channel cache")
	} else {
		u.publishEvent(ctx, repository.ChannelEventRefreshed, record)
	}

	return &dto.ChannelVideosResponse{ChannelID: record.ChannelID, Videos: videos}, nil
}

// RegisterChannel resolves a handle, curates its initial video list and
// persists a new record. Create-only: an existing handle is a conflict.
func (u *ChannelUseCase) RegisterChannel(ctx context.Context, req *dto.RegisterChannelRequest) (*model.ChannelRecord, error) {
	if req == nil || req.Name == "" || req.ChannelHandle == "" {
		return nil, fmt.Errorf("name and channel handle are required")
	}

	existing, err := u.cache.GetByHandle(ctx, req.ChannelHandle)
	if err != nil {
		return nil, fmt.Errorf("failed to read channel cache: %w", err)
	}
	if existing != nil {
		return nil, model.ErrChannelAlreadyRegistered
	}

	channelID, err := u.platform.ResolveChannelID(ctx, req.ChannelHandle)
	if err != nil {
		return nil, err
	}

	videos, err := u.curation.Curate(ctx, channelID, true)
	if err != nil {
		return nil, err
	}

	// A channel with no qualifying videos yet is still validly registered.
	record := &model.ChannelRecord{
		Name:        req.Name,
		Handle:      req.ChannelHandle,
		ChannelID:   channelID,
		Videos:      videos,
		LastUpdated: u.now(),
	}
	// Unlike refresh, a registration that cannot be persisted must not appear
	// to have succeeded.
	if err := u.cache.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist channel: %w", err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"handle":     record.Handle,
		"channelId":  record.ChannelID,
		"videoCount": len(record.Videos),
	}).Info("Channel registered")
	u.publishEvent(ctx, repository.ChannelEventRegistered, record)

	return record, nil
}

// DeleteChannel removes a record by storage id, unconditionally and
// immediately.
func (u *ChannelUseCase) DeleteChannel(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("channel id is required")
	}
	if err := u.cache.Delete(ctx, id); err != nil {
		return err
	}
	if u.events != nil {
		payload, _ := json.Marshal(map[string]string{"id": id})
		if err := u.events.Publish(ctx, repository.ChannelEventDeleted, "", payload); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to publish channel event")
		}
	}
	return nil
}

// ListChannels returns every registered channel for administrative display.
func (u *ChannelUseCase) ListChannels(ctx context.Context) ([]model.ChannelRecord, error) {
	records, err := u.cache.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return records, nil
}

func (u *ChannelUseCase) publishEvent(ctx context.Context, eventType string, record *model.ChannelRecord) {
	if u.events == nil {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := u.events.Publish(ctx, eventType, record.Handle, payload); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"event": eventType,
			"error": err,
		}).Warn("Failed to publish channel event")
	}
}
