package cache

import (
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
)

// Initialize initializes the cache system
func Initialize(log *logger.Logger) *InMemoryCache {
	log.Info("Initializing cache system")

	InitializeInMemoryCache()

	return GetInMemoryCache()
}
