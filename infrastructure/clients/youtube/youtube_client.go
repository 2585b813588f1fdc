package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anime-hub/domain/model"
	"anime-hub/domain/repository"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Config represents YouTube Data API configuration. The service runs in
// API-key mode only; it never writes to the platform.
type Config struct {
	APIKey         string
	RequestTimeout time.Duration
}

// Client implements repository.IVideoPlatform against the YouTube Data API v3.
type Client struct {
	service *youtube.Service
	timeout time.Duration
}

// NewYouTubeClient creates a read-only YouTube API client.
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IVideoPlatform, error) {
	if config == nil || config.APIKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{service: service, timeout: timeout}, nil
}

// ResolveChannelID resolves a public handle to the channel's internal id via
// an exact forHandle lookup. Fuzzy matches are not acceptable here; an empty
// result is a hard not-found.
func (c *Client) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Channels.List([]string{"id", "snippet"}).
		ForHandle(strings.TrimPrefix(handle, "@")).
		Context(tctx).
		Do()
	if err != nil {
		return "", platformErr("failed to resolve channel handle", err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("%w: no channel for handle %s", model.ErrChannelNotFound, handle)
	}
	return response.Items[0].Id, nil
}

// SearchRecentVideos lists recent video refs for a channel, newest first. The
// platform applies the duration tier server-side and may legitimately return
// nothing even when matching videos exist.
func (c *Client) SearchRecentVideos(ctx context.Context, channelID string, opts repository.SearchOptions) ([]repository.VideoRef, error) {
	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	call := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		Context(tctx)
	if opts.MaxResults > 0 {
		call = call.MaxResults(opts.MaxResults)
	} else {
		call = call.MaxResults(25)
	}
	if opts.DurationTier != repository.DurationTierAny {
		call = call.VideoDuration(opts.DurationTier)
	}

	response, err := call.Do()
	if err != nil {
		return nil, platformErr("failed to search videos", err)
	}

	refs := make([]repository.VideoRef, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		refs = append(refs, repository.VideoRef{
			VideoID:     item.Id.VideoId,
			PublishedAt: publishedAt,
		})
	}
	return refs, nil
}

// FetchVideoDetails resolves metadata for a batch of video ids in one call.
// IDs the platform no longer serves are simply absent from the result.
func (c *Client) FetchVideoDetails(ctx context.Context, videoIDs []string) (map[string]repository.VideoDetails, error) {
	details := make(map[string]repository.VideoDetails, len(videoIDs))
	if len(videoIDs) == 0 {
		return details, nil
	}

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Videos.List([]string{"contentDetails", "snippet"}).
		Id(strings.Join(videoIDs, ",")).
		Context(tctx).
		Do()
	if err != nil {
		return nil, platformErr("failed to get video details", err)
	}

	for _, video := range response.Items {
		publishedAt, _ := time.Parse(time.RFC3339, video.Snippet.PublishedAt)
		d := repository.VideoDetails{
			Title:       video.Snippet.Title,
			Description: video.Snippet.Description,
			PublishedAt: publishedAt,
		}
		if video.ContentDetails != nil {
			d.Duration = video.ContentDetails.Duration
		}
		if video.Snippet.Thumbnails != nil {
			if t := video.Snippet.Thumbnails.Default; t != nil {
				d.Thumbnails.DefaultURL = t.Url
				d.Thumbnails.DefaultWidth = int(t.Width)
				d.Thumbnails.DefaultHeight = int(t.Height)
			}
			if t := video.Snippet.Thumbnails.Medium; t != nil {
				d.Thumbnails.MediumURL = t.Url
				d.Thumbnails.MediumWidth = int(t.Width)
				d.Thumbnails.MediumHeight = int(t.Height)
			}
			if t := video.Snippet.Thumbnails.High; t != nil {
				d.Thumbnails.HighURL = t.Url
				d.Thumbnails.HighWidth = int(t.Width)
				d.Thumbnails.HighHeight = int(t.Height)
			}
		}
		details[video.Id] = d
	}
	return details, nil
}

// platformErr wraps transport failures (including timeouts) so callers can
// match them with errors.Is(err, model.ErrPlatformUnavailable).
func platformErr(msg string, err error) error {
	return fmt.Errorf("%s: %w: %v", msg, model.ErrPlatformUnavailable, err)
}
