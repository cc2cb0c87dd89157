package main

import (
	"expvar"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/eokafor/athenaeum/config"
	_ "github.com/eokafor/athenaeum/docs"
	"github.com/eokafor/athenaeum/handler"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/jsonlog"
	"github.com/eokafor/athenaeum/internal/mailer"
	"github.com/eokafor/athenaeum/repository"
	"github.com/eokafor/athenaeum/repository/postgres"
	"github.com/eokafor/athenaeum/service"
)

// version is reported by the healthcheck endpoint and the metrics handler.
const version = "1.0.0"

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title Athenaeum API
// @version 1.0.0
// @description REST backend for managing a library's books, readers and borrow records.
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Other shared resources: waitgroup and the response cache. A disabled
	// cache stays nil, which every cache method treats as a no-op.
	var wg sync.WaitGroup
	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		ttl, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil {
			logger.PrintFatal(err, nil)
		}
		responseCache = cache.New(ttl)
		defer responseCache.Stop()
	}

	// Publish metrics variables
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() interface{} {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("database", expvar.Func(func() interface{} {
		return db.Stats()
	}))
	expvar.Publish("timestamp", expvar.Func(func() interface{} {
		return strconv.FormatInt(time.Now().Unix(), 10)
	}))

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo, responseCache, mailer.New(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password, cfg.Smtp.Sender))
	handler := handler.New(cfg, logger, responseCache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
