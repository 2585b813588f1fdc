package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"anime-hub/infrastructure/cache"
)

// TestNewChannelCache tests the creation of a new ChannelCache
func TestNewChannelCache(t *testing.T) {
	// We can't do much more without a live Redis client.
	channelCache := cache.NewChannelCache(nil)
	assert.NotNil(t, channelCache)
}
