package dto

import "anime-hub/domain/model"

// RegisterChannelRequest is the admin payload for adding a creator channel.
// Field names match what the frontend sends.
type RegisterChannelRequest struct {
	Name          string `json:"name" binding:"required"`
	ChannelHandle string `json:"channelHandle" binding:"required"`
}

// ChannelVideosResponse is the read-path payload: the resolved channel id plus
// the current curated video list.
type ChannelVideosResponse struct {
	ChannelID string               `json:"channelId"`
	Videos    []model.VideoSummary `json:"videos"`
}
