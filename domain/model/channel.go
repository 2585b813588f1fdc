package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MaxCuratedVideos is the number of long-form videos kept per channel.
const MaxCuratedVideos = 3

// ShortFormThresholdSeconds is the minimum duration for a video to count as long-form.
// Anything below it is treated as a Short and excluded from curation.
const ShortFormThresholdSeconds = 300

// Thumbnail is a single thumbnail variant as reported by the platform.
type Thumbnail struct {
	URL    string `bson:"url" json:"url"`
	Width  int    `bson:"width,omitempty" json:"width,omitempty"`
	Height int    `bson:"height,omitempty" json:"height,omitempty"`
}

// ThumbnailSet carries the fixed variants the frontend renders.
type ThumbnailSet struct {
	Default Thumbnail `bson:"default" json:"default"`
	Medium  Thumbnail `bson:"medium" json:"medium"`
	High    Thumbnail `bson:"high" json:"high"`
}

// VideoSummary is the cached metadata for one curated video. It is embedded in
// a ChannelRecord and never addressed on its own.
type VideoSummary struct {
	VideoID     string       `bson:"video_id" json:"videoId"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Thumbnails  ThumbnailSet `bson:"thumbnails" json:"thumbnails"`
	PublishedAt time.Time    `bson:"published_at" json:"publishedAt"`
}

// ChannelRecord is one registered creator channel with its cached video list.
// Handle is the unique key; ChannelID is resolved once at registration and
// never re-resolved during refresh. Videos holds at most MaxCuratedVideos
// entries, most recent first, and is fully replaced on every refresh.
type ChannelRecord struct {
	ID          bson.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string         `bson:"name" json:"name"`
	Handle      string         `bson:"channel_handle" json:"channelHandle"`
	ChannelID   string         `bson:"channel_id" json:"channelId"`
	Videos      []VideoSummary `bson:"videos" json:"videos"`
	LastUpdated time.Time      `bson:"last_updated" json:"lastUpdated"`
}
