package handler

import (
	"github.com/eokafor/athenaeum/config"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/jsonlog"
	"github.com/eokafor/athenaeum/service"
)

// Handler defines the handler layer. GET handlers for list and detail
// endpoints read through the cache; everything else goes straight to the
// service.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *cache.Cache
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *cache.Cache, service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
