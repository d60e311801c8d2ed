package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/marcelly-ramos/projeto-backend/internal/config"
	"github.com/marcelly-ramos/projeto-backend/internal/db"
	"github.com/marcelly-ramos/projeto-backend/internal/events"
	"github.com/marcelly-ramos/projeto-backend/internal/hash"
	"github.com/marcelly-ramos/projeto-backend/internal/httpserver"
	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/middleware/auth"
	"github.com/marcelly-ramos/projeto-backend/internal/repo"
	"github.com/marcelly-ramos/projeto-backend/internal/service"
	"github.com/marcelly-ramos/projeto-backend/internal/tokens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	publisher, closeSinks := newPublisher(cfg, logger)

	store := &repo.GormRepo{DB: gdb}
	issuer := tokens.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	e := httpserver.New(logger)
	httpserver.Register(e, &httpserver.Deps{
		UserHandler: &httpserver.UserHTTP{Svc: &service.UserService{
			Repo:   store,
			Hasher: hash.New(cfg.BcryptCost),
			Tokens: issuer,
		}},
		CategoryHandler: &httpserver.CategoryHTTP{Svc: &service.CategoryService{Repo: store}},
		ProductHandler:  &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: store, Events: publisher}},
		Auth:            auth.NewBearerAuth(issuer),
		Ready:           store.Ping,
		AuthRate:        rate.Limit(cfg.AuthRateLimit),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("catalog listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	closeSinks()

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("catalog stopped")
}

// newPublisher wires the event sinks that are configured. With none of them
// configured product writes publish nowhere.
func newPublisher(cfg *config.Config, logger *slog.Logger) (events.Publisher, func()) {
	var (
		sinks   events.Multi
		closers []func() error
	)

	if cfg.KafkaEnabled() {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaProductTopic)
		sinks = append(sinks, kp)
		closers = append(closers, kp.Close)
		logger.Info("kafka product events enabled", "topic", cfg.KafkaProductTopic)
	}

	if cfg.SearchIndexEnabled() {
		es, err := events.NewESClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Error("search index disabled", "error", err)
		} else {
			sinks = append(sinks, events.NewESIndexer(es, cfg.ESIndex))
			logger.Info("search index enabled", "index", cfg.ESIndex)
		}
	}

	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("close event sink", "error", err)
			}
		}
	}
	if len(sinks) == 0 {
		return events.Nop{}, closeAll
	}
	return sinks, closeAll
}
