package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anime-hub/domain/model"
	"anime-hub/domain/repository"
	"anime-hub/usecase"
)

func videoRefs(ids ...string) []repository.VideoRef {
	refs := make([]repository.VideoRef, 0, len(ids))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range ids {
		refs = append(refs, repository.VideoRef{
			VideoID:     id,
			PublishedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return refs
}

func details(durations map[string]string) map[string]repository.VideoDetails {
	out := make(map[string]repository.VideoDetails, len(durations))
	for id, d := range durations {
		out[id] = repository.VideoDetails{
			Duration:    d,
			Title:       "Title " + id,
			Description: "Description " + id,
			PublishedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func searchOpts(tier string, max int64) repository.SearchOptions {
	return repository.SearchOptions{MaxResults: max, DurationTier: tier}
}

func TestCurate_TierFallback(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", searchOpts(repository.DurationTierLong, 50)).
		Return([]repository.VideoRef{}, nil).Once()
	platform.On("SearchRecentVideos", mock.Anything, "UC123", searchOpts(repository.DurationTierMedium, 50)).
		Return(videoRefs("a", "b", "c"), nil).Once()
	platform.On("FetchVideoDetails", mock.Anything, []string{"a", "b", "c"}).
		Return(details(map[string]string{"a": "PT10M", "b": "PT8M", "c": "PT6M"}), nil).Once()

	uc := usecase.NewCurationUseCase(platform)
	videos, err := uc.Curate(context.Background(), "UC123", true)

	assert.NoError(t, err)
	assert.Len(t, videos, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{videos[0].VideoID, videos[1].VideoID, videos[2].VideoID})
	platform.AssertNumberOfCalls(t, "SearchRecentVideos", 2)
	platform.AssertExpectations(t)
}

func TestCurate_BothTiersEmpty(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", mock.Anything).
		Return([]repository.VideoRef{}, nil).Twice()

	uc := usecase.NewCurationUseCase(platform)
	videos, err := uc.Curate(context.Background(), "UC123", true)

	assert.NoError(t, err)
	assert.Empty(t, videos)
	platform.AssertNotCalled(t, "FetchVideoDetails", mock.Anything, mock.Anything)
}

func TestCurate_RefreshUsesSingleUntieredSearch(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", searchOpts(repository.DurationTierAny, 25)).
		Return(videoRefs("a"), nil).Once()
	platform.On("FetchVideoDetails", mock.Anything, []string{"a"}).
		Return(details(map[string]string{"a": "PT30M"}), nil).Once()

	uc := usecase.NewCurationUseCase(platform)
	videos, err := uc.Curate(context.Background(), "UC123", false)

	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	platform.AssertNumberOfCalls(t, "SearchRecentVideos", 1)
	platform.AssertExpectations(t)
}

func TestCurate_FiltersShortsAndTruncates(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", mock.Anything).
		Return(videoRefs("s1", "v1", "s2", "v2", "v3", "v4"), nil).Once()
	platform.On("FetchVideoDetails", mock.Anything, []string{"s1", "v1", "s2", "v2", "v3", "v4"}).
		Return(details(map[string]string{
			"s1": "PT4M59S", // 299s, short
			"v1": "PT5M",    // 300s, boundary long-form
			"s2": "PT1M",
			"v2": "PT1H2M3S",
			"v3": "PT45M",
			"v4": "PT25M", // would qualify but the list is full
		}), nil).Once()

	uc := usecase.NewCurationUseCase(platform)
	videos, err := uc.Curate(context.Background(), "UC123", false)

	assert.NoError(t, err)
	assert.Len(t, videos, model.MaxCuratedVideos)
	// Upstream order preserved, shorts gone.
	assert.Equal(t, "v1", videos[0].VideoID)
	assert.Equal(t, "v2", videos[1].VideoID)
	assert.Equal(t, "v3", videos[2].VideoID)
}

func TestCurate_DropsUnavailableAndUndurationedVideos(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", mock.Anything).
		Return(videoRefs("gone", "nodur", "ok"), nil).Once()
	// "gone" is absent from the details response entirely; "nodur" has no
	// duration token.
	platform.On("FetchVideoDetails", mock.Anything, []string{"gone", "nodur", "ok"}).
		Return(details(map[string]string{"nodur": "", "ok": "PT10M"}), nil).Once()

	uc := usecase.NewCurationUseCase(platform)
	videos, err := uc.Curate(context.Background(), "UC123", false)

	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, "ok", videos[0].VideoID)
}

func TestCurate_PlatformErrorPropagates(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", mock.Anything).
		Return(nil, fmt.Errorf("search: %w", model.ErrPlatformUnavailable)).Once()

	uc := usecase.NewCurationUseCase(platform)
	_, err := uc.Curate(context.Background(), "UC123", false)

	assert.ErrorIs(t, err, model.ErrPlatformUnavailable)
}

// Curation derives everything from the platform response, so an unchanged
// upstream yields an identical list on every run.
func TestCurate_Idempotent(t *testing.T) {
	platform := new(MockVideoPlatform)
	platform.On("SearchRecentVideos", mock.Anything, "UC123", mock.Anything).
		Return(videoRefs("a", "b"), nil).Twice()
	platform.On("FetchVideoDetails", mock.Anything, []string{"a", "b"}).
		Return(details(map[string]string{"a": "PT10M", "b": "PT12M"}), nil).Twice()

	uc := usecase.NewCurationUseCase(platform)
	first, err := uc.Curate(context.Background(), "UC123", false)
	assert.NoError(t, err)
	second, err := uc.Curate(context.Background(), "UC123", false)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
