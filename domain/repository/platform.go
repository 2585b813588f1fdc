package repository

import (
	"context"
	"time"
)

// Duration tier hints understood by the platform's server-side search filter.
// The platform may still return an empty page even when matching videos exist
// (quota/indexing); that is expected and not an error.
const (
	DurationTierAny    = ""
	DurationTierMedium = "medium" // roughly 4-20 minutes
	DurationTierLong   = "long"   // over 20 minutes
)

// SearchOptions narrows a recent-video search.
type SearchOptions struct {
	MaxResults   int64
	DurationTier string
}

// VideoRef is one search hit, in the platform's most-recent-first order.
type VideoRef struct {
	VideoID     string
	PublishedAt time.Time
}

// VideoDetails is the batched per-video metadata used by curation. Duration is
// the platform's compact token (e.g. "PT12M34S"); it may be empty when the
// platform omits content details.
type VideoDetails struct {
	Duration    string
	Title       string
	Description string
	Thumbnails  ThumbnailInfo
	PublishedAt time.Time
}

// ThumbnailInfo mirrors the platform thumbnail variants before mapping into
// the persisted model.
type ThumbnailInfo struct {
	DefaultURL    string
	DefaultWidth  int
	DefaultHeight int
	MediumURL     string
	MediumWidth   int
	MediumHeight  int
	HighURL       string
	HighWidth     int
	HighHeight    int
}

// IVideoPlatform is the video platform the curation pipeline reads from.
// Implementations must bound every call with a timeout and wrap transport
// failures in model.ErrPlatformUnavailable.
type IVideoPlatform interface {
	// ResolveChannelID maps a public handle to the platform's channel id.
	// Exact match only; no hits returns model.ErrChannelNotFound.
	ResolveChannelID(ctx context.Context, handle string) (string, error)
	// SearchRecentVideos lists recent video refs for a channel, newest first.
	// An empty result is valid.
	SearchRecentVideos(ctx context.Context, channelID string, opts SearchOptions) ([]VideoRef, error)
	// FetchVideoDetails resolves metadata for a batch of video ids in one
	// call. IDs missing from the result are unavailable and simply absent.
	FetchVideoDetails(ctx context.Context, videoIDs []string) (map[string]VideoDetails, error)
}
