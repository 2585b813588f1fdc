package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfiguration tests the configuration package basic functionality
func TestConfiguration(t *testing.T) {
	t.Run("configuration_struct_exists", func(t *testing.T) {
		require.NotNil(t, &C, "Configuration should not be nil")

		require.NotNil(t, &C.App, "App configuration should exist")
		require.NotNil(t, &C.Database, "Database configuration should exist")
		require.NotNil(t, &C.YouTube, "YouTube configuration should exist")
	})

	t.Run("defaults_applied", func(t *testing.T) {
		// init() has already run; defaults must be in place even without a
		// config file.
		require.NotZero(t, C.App.Port, "App port should have a default")
		require.NotEmpty(t, C.Database.Mongo.Name, "Mongo database name should have a default")
		require.Equal(t, 3600, C.YouTube.CacheTTLSeconds, "Cache TTL should default to one hour")
		require.NotEmpty(t, C.Pubsub.Topic, "Pub/Sub topic should have a default")
	})
}
