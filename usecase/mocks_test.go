package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"anime-hub/domain/model"
	"anime-hub/domain/repository"
)

// Mock implementations shared by the curation and channel use case tests.

type MockVideoPlatform struct {
	mock.Mock
}

func (m *MockVideoPlatform) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	args := m.Called(ctx, handle)
	return args.String(0), args.Error(1)
}

func (m *MockVideoPlatform) SearchRecentVideos(ctx context.Context, channelID string, opts repository.SearchOptions) ([]repository.VideoRef, error) {
	args := m.Called(ctx, channelID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VideoRef), args.Error(1)
}

func (m *MockVideoPlatform) FetchVideoDetails(ctx context.Context, videoIDs []string) (map[string]repository.VideoDetails, error) {
	args := m.Called(ctx, videoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]repository.VideoDetails), args.Error(1)
}

type MockChannelCache struct {
	mock.Mock
}

func (m *MockChannelCache) GetByHandle(ctx context.Context, handle string) (*model.ChannelRecord, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelRecord), args.Error(1)
}

func (m *MockChannelCache) Upsert(ctx context.Context, record *model.ChannelRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockChannelCache) List(ctx context.Context) ([]model.ChannelRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChannelRecord), args.Error(1)
}

func (m *MockChannelCache) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChannelEvents struct {
	mock.Mock
}

func (m *MockChannelEvents) Publish(ctx context.Context, eventType, handle string, payload []byte) error {
	args := m.Called(ctx, eventType, handle, payload)
	return args.Error(0)
}
