package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fortuna/iris/internal/publisher"
	"github.com/fortuna/iris/internal/service"
)

// Config holds scheduler configuration.
type Config struct {
	PollInterval      time.Duration // Default: 30s
	Workers           int           // Default: 4
	EnableLivePolling bool          // Default: true
}

// DefaultConfig returns default scheduler configuration.
func DefaultConfig() *Config {
	return &Config{
		PollInterval:      30 * time.Second,
		Workers:           4,
		EnableLivePolling: true,
	}
}

// Orchestrator drives the polling loop: refresh today's schedule, refresh
// box scores for live games through a bounded worker pool, and publish
// updates to Redis streams.
type Orchestrator struct {
	games     *service.GameService
	boxScores *service.BoxScoreService
	publisher *publisher.StreamPublisher
	config    *Config

	cancel context.CancelFunc

	// publishedFinals guards the once-per-game final announcement.
	mu              sync.Mutex
	publishedFinals map[string]bool
}

// NewOrchestrator creates the scheduler.
func NewOrchestrator(games *service.GameService, boxScores *service.BoxScoreService, pub *publisher.StreamPublisher, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Workers <= 0 {
		config.Workers = 4
	}
	return &Orchestrator{
		games:           games,
		boxScores:       boxScores,
		publisher:       pub,
		config:          config,
		publishedFinals: make(map[string]bool),
	}
}

// Start runs the polling loop until ctx is cancelled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Println("╔════════════════════════════════════════╗")
	log.Println("║      Iris Scheduler Orchestrator       ║")
	log.Println("╚════════════════════════════════════════╝")
	log.Printf("Live polling: %v (interval: %v, workers: %d)",
		o.config.EnableLivePolling, o.config.PollInterval, o.config.Workers)

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	if !o.config.EnableLivePolling {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(o.config.PollInterval)
	defer ticker.Stop()

	// Run immediately on start.
	o.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("→ Scheduler stopped")
			return
		case <-ticker.C:
			o.poll(ctx)
		}
	}
}

// Stop gracefully stops the scheduler.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
}

// poll runs one polling cycle. Errors are logged, never fatal; the next
// tick gets a fresh attempt.
func (o *Orchestrator) poll(ctx context.Context) {
	games, err := o.games.Schedule(ctx, "")
	if err != nil {
		log.Printf("[scheduler] ❌ schedule refresh failed: %v", err)
		return
	}

	type job struct {
		eventID string
		final   bool
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < o.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				o.refreshGame(ctx, j.eventID, j.final)
			}
		}()
	}

	liveCount := 0
	for _, g := range games {
		switch g.Status {
		case "live":
			liveCount++
			if g.EventID != "" {
				jobs <- job{eventID: g.EventID}
			}
			if err := o.publisher.PublishLiveUpdate(ctx, g); err != nil {
				log.Printf("[scheduler] ⚠️ publishing live update for %s: %v", g.EventID, err)
			}
		case "final":
			if g.EventID != "" && !o.markFinal(g.EventID) {
				jobs <- job{eventID: g.EventID, final: true}
				if err := o.publisher.PublishFinal(ctx, g); err != nil {
					log.Printf("[scheduler] ⚠️ publishing final for %s: %v", g.EventID, err)
				}
			}
		}
	}
	close(jobs)
	wg.Wait()

	if liveCount > 0 {
		log.Printf("[scheduler] ✓ refreshed %d live games", liveCount)
	}
}

// refreshGame re-fetches one game's box score so the cache stays warm.
func (o *Orchestrator) refreshGame(ctx context.Context, eventID string, final bool) {
	if _, err := o.boxScores.GetBoxScore(ctx, eventID); err != nil {
		log.Printf("[scheduler] ⚠️ box score refresh for %s: %v", eventID, err)
		if final {
			// Let the next cycle retry the final snapshot.
			o.unmarkFinal(eventID)
		}
	}
}

// markFinal records a game as announced. Returns true if it already was.
func (o *Orchestrator) markFinal(eventID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.publishedFinals[eventID] {
		return true
	}
	o.publishedFinals[eventID] = true
	return false
}

func (o *Orchestrator) unmarkFinal(eventID string) {
	o.mu.Lock()
	delete(o.publishedFinals, eventID)
	o.mu.Unlock()
}

// Status reports the scheduler's configuration for diagnostics.
func (o *Orchestrator) Status() map[string]interface{} {
	o.mu.Lock()
	finals := len(o.publishedFinals)
	o.mu.Unlock()

	return map[string]interface{}{
		"live_polling_enabled": o.config.EnableLivePolling,
		"poll_interval":        o.config.PollInterval.String(),
		"workers":              o.config.Workers,
		"finals_published":     finals,
	}
}
