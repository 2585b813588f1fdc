package usecase

import (
	"context"
	"fmt"

	"anime-hub/domain/model"
	"anime-hub/domain/repository"
	"anime-hub/infrastructure/logger"
)

// ICurationUseCase produces the curated long-form video list for a channel.
type ICurationUseCase interface {
	// Curate returns at most model.MaxCuratedVideos long-form videos for the
	// channel, most recent first. tieredDiscovery selects the registration
	// search strategy (duration-tier fallback) over the plain refresh search.
	Curate(ctx context.Context, channelID string, tieredDiscovery bool) ([]model.VideoSummary, error)
}

// searchAttempt is one entry in an ordered discovery strategy. Attempts run in
// order until one returns results.
type searchAttempt struct {
	tier       string
	maxResults int64
}

// Registration casts a wide net with server-side duration tiers: the platform
// filters Shorts for us, and when a channel has no >20min uploads we fall back
// to the 4-20min tier. Refresh searches untiered since the channel is already
// known to have qualifying content historically.
var (
	tieredAttempts = []searchAttempt{
		{tier: repository.DurationTierLong, maxResults: 50},
		{tier: repository.DurationTierMedium, maxResults: 50},
	}
	refreshAttempts = []searchAttempt{
		{tier: repository.DurationTierAny, maxResults: 25},
	}
)

// CurationUseCase implements ICurationUseCase against a video platform client.
// It holds no state of its own; results are derived entirely from the platform
// response at call time.
type CurationUseCase struct {
	platform repository.IVideoPlatform
}

// NewCurationUseCase creates a new curation use case instance.
func NewCurationUseCase(platform repository.IVideoPlatform) ICurationUseCase {
	return &CurationUseCase{platform: platform}
}

func (u *CurationUseCase) Curate(ctx context.Context, channelID string, tieredDiscovery bool) ([]model.VideoSummary, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	attempts := refreshAttempts
	if tieredDiscovery {
		attempts = tieredAttempts
	}

	refs, err := u.discover(ctx, channelID, attempts)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		// A channel may genuinely have no qualifying content yet.
		return []model.VideoSummary{}, nil
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.VideoID)
	}
	details, err := u.platform.FetchVideoDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}

	// Filter in upstream order: the platform already returns newest first and
	// we trust its ordering rather than re-sorting on publishedAt.
	videos := make([]model.VideoSummary, 0, model.MaxCuratedVideos)
	for _, ref := range refs {
		d, ok := details[ref.VideoID]
		if !ok {
			// Unavailable upstream; drop silently.
			continue
		}
		seconds := ParseDuration(d.Duration)
		if !IsLongForm(seconds) {
			logger.GetLogger().WithFields(map[string]interface{}{
				"videoId": ref.VideoID,
				"seconds": seconds,
			}).Debug("Skipping short-form video")
			continue
		}
		videos = append(videos, toVideoSummary(ref.VideoID, d))
		if len(videos) == model.MaxCuratedVideos {
			break
		}
	}
	return videos, nil
}

// discover runs the attempt list until a search returns results. An empty page
// from every attempt is a valid outcome, not an error.
func (u *CurationUseCase) discover(ctx context.Context, channelID string, attempts []searchAttempt) ([]repository.VideoRef, error) {
	for _, a := range attempts {
		refs, err := u.platform.SearchRecentVideos(ctx, channelID, repository.SearchOptions{
			MaxResults:   a.maxResults,
			DurationTier: a.tier,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search videos: %w", err)
		}
		if len(refs) > 0 {
			return refs, nil
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"channelId": channelID,
			"tier":      a.tier,
		}).Info("Search returned no videos, trying next tier")
	}
	return nil, nil
}

func toVideoSummary(videoID string, d repository.VideoDetails) model.VideoSummary {
	return model.VideoSummary{
		VideoID:     videoID,
		Title:       d.Title,
		Description: d.Description,
		PublishedAt: d.PublishedAt,
		Thumbnails: model.ThumbnailSet{
			Default: model.Thumbnail{URL: d.Thumbnails.DefaultURL, Width: d.Thumbnails.DefaultWidth, Height: d.Thumbnails.DefaultHeight},
			Medium:  model.Thumbnail{URL: d.Thumbnails.MediumURL, Width: d.Thumbnails.MediumWidth, Height: d.Thumbnails.MediumHeight},
			High:    model.Thumbnail{URL: d.Thumbnails.HighURL, Width: d.Thumbnails.HighWidth, Height: d.Thumbnails.HighHeight},
		},
	}
}
