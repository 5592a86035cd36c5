package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"avsar/internal/allocation"
	"avsar/internal/audit"
	"avsar/internal/explain"
	"avsar/internal/match"
	"avsar/internal/platform/config"
	"avsar/internal/platform/httpserver"
	"avsar/internal/platform/logger"
	"avsar/internal/platform/metrics"
	"avsar/internal/platform/postgres"
	platformredis "avsar/internal/platform/redis"
	"avsar/internal/profile"
	"avsar/internal/registration"
	"avsar/internal/stats"
	httptransport "avsar/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	// Profile store: postgres when configured, in-memory otherwise.
	var (
		candidates profile.CandidateStore
		postings   profile.PostingStore
	)
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres unavailable", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
		candidates = profile.NewPostgresCandidateStore(db)
		postings = profile.NewPostgresPostingStore(db)
	} else {
		candidates = profile.NewInMemoryCandidateStore()
		postings = profile.NewInMemoryPostingStore()
	}

	// Capacity store: redis when configured, in-memory otherwise.
	var capacityStore allocation.Store
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		capacityStore = allocation.NewRedisStore(redisClient.Client)
	} else {
		capacityStore = allocation.NewInMemoryStore()
	}

	// Audit sink: kafka when configured, in-memory otherwise.
	var auditStore audit.Store = audit.NewInMemoryStore()
	if cfg.KafkaBrokers != "" {
		kafkaStore, err := audit.NewKafkaStore(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			log.Error("kafka unavailable", "error", err)
			os.Exit(1)
		}
		defer kafkaStore.Close()
		auditStore = kafkaStore
	}
	publisher := audit.NewPublisher(auditStore)

	scorer, err := match.NewScorer(cfg.Weights)
	if err != nil {
		log.Error("invalid match weights", "error", err)
		os.Exit(1)
	}

	allocator := allocation.NewService(capacityStore, candidates, publisher, m, log)
	matcher := match.NewService(candidates, postings, allocator, scorer, nil)
	registrar := registration.NewService(candidates, postings, allocator, publisher, m, log)
	statistics := stats.NewService(candidates, postings, allocator)

	if cfg.SeedDemoData {
		if err := registration.SeedDemoData(context.Background(), registrar); err != nil {
			log.Error("demo data seeding failed", "error", err)
			os.Exit(1)
		}
		log.Info("demo data seeded")
	}

	handlers := []httptransport.Registrar{
		registration.NewHandler(registrar, log),
		match.NewHandler(matcher, m, log),
		allocation.NewHandler(allocator, log),
		stats.NewHandler(statistics, log),
	}

	if cfg.GeminiAPIKey != "" {
		generator, err := explain.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("gemini unavailable", "error", err)
			os.Exit(1)
		}
		handlers = append(handlers, explain.NewHandler(explain.NewService(generator, matcher), log))
	}

	router := httptransport.NewRouter(log, candidates, postings, handlers...)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting avsar", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
