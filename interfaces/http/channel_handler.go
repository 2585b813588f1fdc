package http

import (
	"errors"
	"net/http"

	"anime-hub/domain/dto"
	"anime-hub/domain/model"
	"anime-hub/infrastructure/logger"
	"anime-hub/usecase"

	"github.com/gin-gonic/gin"
)

// IChannelHandler defines the creator-channel HTTP handlers.
type IChannelHandler interface {
	GetChannelVideos(ctx *gin.Context)
	ListChannels(ctx *gin.Context)
	RegisterChannel(ctx *gin.Context)
	DeleteChannel(ctx *gin.Context)
}

// ChannelHandler implements the creator-channel HTTP handlers.
type ChannelHandler struct {
	channelUseCase usecase.IChannelUseCase
}

func NewChannelHandler(channelUseCase usecase.IChannelUseCase) IChannelHandler {
	return &ChannelHandler{channelUseCase: channelUseCase}
}

// GetChannelVideos handles GET /api/youtube/channel/:handle
func (h *ChannelHandler) GetChannelVideos(ctx *gin.Context) {
	handle := ctx.Param("handle")

	response, err := h.channelUseCase.GetChannelVideos(ctx.Request.Context(), handle)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrChannelNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Channel not found in database"})
		case errors.Is(err, model.ErrPlatformUnavailable):
			logger.GetLogger().WithField("error", err).Error("Error fetching YouTube data")
			ctx.JSON(http.StatusBadGateway, gin.H{"message": "Error fetching YouTube data"})
		default:
			logger.GetLogger().WithField("error", err).Error("Error fetching channel videos")
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching YouTube data"})
		}
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListChannels handles GET /api/youtube
func (h *ChannelHandler) ListChannels(ctx *gin.Context) {
	channels, err := h.channelUseCase.ListChannels(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error listing channels")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, channels)
}

// RegisterChannel handles POST /api/youtube (admin)
func (h *ChannelHandler) RegisterChannel(ctx *gin.Context) {
	var req dto.RegisterChannelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Please provide name and channel handle"})
		return
	}

	record, err := h.channelUseCase.RegisterChannel(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrChannelAlreadyRegistered):
			ctx.JSON(http.StatusConflict, gin.H{"message": "Channel already registered"})
		case errors.Is(err, model.ErrChannelNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Channel not found on YouTube"})
		case errors.Is(err, model.ErrPlatformUnavailable):
			logger.GetLogger().WithField("error", err).Error("Error adding channel")
			ctx.JSON(http.StatusBadGateway, gin.H{"message": "Error adding channel. Please try again."})
		default:
			logger.GetLogger().WithField("error", err).Error("Error adding channel")
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding channel. Please try again."})
		}
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// DeleteChannel handles DELETE /api/youtube/:id (admin)
func (h *ChannelHandler) DeleteChannel(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.channelUseCase.DeleteChannel(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrChannelNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Channel not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error deleting channel")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Channel removed"})
}
