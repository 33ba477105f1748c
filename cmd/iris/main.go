package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/iris/internal/api/rest"
	"github.com/fortuna/iris/internal/boxscore"
	"github.com/fortuna/iris/internal/cache"
	"github.com/fortuna/iris/internal/ingest/espn"
	"github.com/fortuna/iris/internal/ingest/google"
	"github.com/fortuna/iris/internal/locale"
	"github.com/fortuna/iris/internal/publisher"
	"github.com/fortuna/iris/internal/scheduler"
	"github.com/fortuna/iris/internal/service"
)

const (
	serviceName    = "iris"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NBA Localization Service", serviceName, serviceVersion)

	config := loadConfig()

	// Localization tables, builtins plus optional overlay files.
	tables := locale.LoadTables(config.LocaleDataDir)

	unresolved := locale.NewUnresolvedSet()
	resolver := locale.NewResolver(tables, unresolved)

	// Redis with retry; docker-compose brings it up alongside us.
	var (
		redisCache *cache.RedisCache
		err        error
	)
	maxRetries := 30
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(config.RedisURL)
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
	}
	defer redisCache.Close()
	log.Println("✓ Connected to Redis")

	espnClient := espn.New(config.ESPNAPIBase)

	var fallback *google.Client
	if config.EnableGoogleFallback {
		fallback, err = google.NewClient()
		if err != nil {
			log.Printf("⚠️  Google fallback unavailable: %v (continuing without it)", err)
		} else {
			defer fallback.Close()
			log.Println("✓ Google fallback scraper ready")
		}
	}

	// nil interface when the fallback is disabled, not a typed nil.
	var liveFallback interface {
		FetchLiveGames(ctx context.Context) ([]google.LiveGame, error)
	}
	if fallback != nil {
		liveFallback = fallback
	}

	games := service.NewGameService(espnClient, liveFallback, resolver, redisCache)
	boxScores := service.NewBoxScoreService(espnClient, boxscore.NewNormalizer(resolver), redisCache)
	streamPublisher := publisher.NewStreamPublisher(redisCache.Client())

	schedulerConfig := &scheduler.Config{
		PollInterval:      config.PollInterval,
		Workers:           4,
		EnableLivePolling: config.EnableLivePolling,
	}
	sched := scheduler.NewOrchestrator(games, boxScores, streamPublisher, schedulerConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sched.Start(ctx)
	log.Println("✓ Scheduler started")

	restServer := rest.NewServer(config.RESTPort, rest.NewHandler(games, boxScores, tables, unresolved))
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ Iris v%s started successfully", serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down Iris gracefully...")

	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	if n := unresolved.Len(); n > 0 {
		log.Printf("⚠️  %d player names were never localized this run: %v", n, unresolved.Names())
	}

	log.Println("Iris stopped")
}

type Config struct {
	RedisURL             string
	RESTPort             string
	ESPNAPIBase          string
	LocaleDataDir        string
	PollInterval         time.Duration
	EnableLivePolling    bool
	EnableGoogleFallback bool
}

func loadConfig() Config {
	pollInterval := 30 * time.Second
	if raw := getEnv("POLL_INTERVAL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			pollInterval = d
		} else {
			log.Printf("⚠️  Invalid POLL_INTERVAL %q, using %v", raw, pollInterval)
		}
	}

	return Config{
		RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
		RESTPort:             getEnv("REST_PORT", "8080"),
		ESPNAPIBase:          getEnv("ESPN_API_BASE", ""),
		LocaleDataDir:        getEnv("LOCALE_DATA_DIR", ""),
		PollInterval:         pollInterval,
		EnableLivePolling:    getEnv("ENABLE_LIVE_POLLING", "true") == "true",
		EnableGoogleFallback: getEnv("ENABLE_GOOGLE_FALLBACK", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
