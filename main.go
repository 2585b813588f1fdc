package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anime-hub/domain/repository"
	"anime-hub/infrastructure/cache"
	youtubeclient "anime-hub/infrastructure/clients/youtube"
	"anime-hub/infrastructure/configuration"
	"anime-hub/infrastructure/logger"
	"anime-hub/infrastructure/persistence"
	"anime-hub/infrastructure/pubsub"
	httpHandler "anime-hub/interfaces/http"
	"anime-hub/server"
	"anime-hub/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// Channel store: MongoDB primary, Redis fallback when Mongo is down.
	var channelCache repository.IChannelCache
	var userRepository repository.IUser

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err == nil {
		if pingErr := mongoDb.Ping(ctx, nil); pingErr != nil {
			logger.GetLogger().WithField("error", pingErr).Warn("MongoDB ping failed - trying Redis channel store")
			mongoDb = nil
		}
	} else {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - trying Redis channel store")
		mongoDb = nil
	}

	if mongoDb != nil {
		channelRepo := persistence.NewChannelRepository(mongoDb, configuration.C.Database.Mongo.Name)
		if err := channelRepo.EnsureIndexes(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed ensuring channel indexes")
		}
		channelCache = channelRepo
		userRepository = persistence.NewUserRepository(mongoDb, configuration.C.Database.Mongo.Name)
		logger.GetLogger().Info("MongoDB connected successfully")
	} else {
		redisClient, err := cache.NewCache(
			ctx,
			fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
			configuration.C.RedisClient.Username,
			configuration.C.RedisClient.Password,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Neither MongoDB nor Redis is available")
			os.Exit(1)
		}
		channelCache = cache.NewChannelCache(redisClient)
		logger.GetLogger().Info("Using Redis channel store")
	}

	// YouTube client is mandatory: without it neither registration nor refresh
	// can work.
	youtubeClient, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		APIKey:         configuration.C.YouTube.APIKey,
		RequestTimeout: time.Duration(configuration.C.YouTube.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize YouTube client")
		os.Exit(1)
	}

	curationUseCase := usecase.NewCurationUseCase(youtubeClient)
	channelUseCase := usecase.NewChannelUseCase(channelCache, youtubeClient, curationUseCase).
		WithTTL(time.Duration(configuration.C.YouTube.CacheTTLSeconds) * time.Second)

	// Lifecycle events for the notification subsystem; optional.
	if configuration.C.Pubsub.ProjectID != "" {
		pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without channel events")
		} else {
			channelUseCase = channelUseCase.WithEvents(pubsub.NewChannelEvents(pubSubClient, configuration.C.Pubsub.Topic))
		}
	}

	channelHandler := httpHandler.NewChannelHandler(channelUseCase)

	var userHandler httpHandler.IUserHandler
	if userRepository != nil {
		userHandler = httpHandler.NewUserHandler(usecase.NewUserUsecase(userRepository))
	} else {
		userHandler = httpHandler.NewUnavailableUserHandler()
		logger.GetLogger().Warn("User store unavailable - auth endpoints disabled")
	}

	router := server.InitiateRouter(userHandler, channelHandler)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
