package service

import (
	"sync"

	"github.com/eokafor/athenaeum/config"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/jsonlog"
	"github.com/eokafor/athenaeum/internal/mailer"
	"github.com/eokafor/athenaeum/repository"
)

type Service interface {
	books
	readers
	borrowRecords
}

// service defines the business layer. It owns every mutation of book
// availability and drives cache invalidation as a side effect of state
// changes.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
	cache  *cache.Cache
	mailer mailer.Mailer
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository, cache *cache.Cache, mailer mailer.Mailer) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
		cache:  cache,
		mailer: mailer,
	}
}
