package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/fortuna/iris/internal/cache"
	"github.com/fortuna/iris/internal/ingest/espn"
	"github.com/fortuna/iris/internal/ingest/google"
	"github.com/fortuna/iris/internal/locale"
)

// beijingDateLayout is how clients name a schedule day.
const beijingDateLayout = "2006-01-02"

var (
	beijingTZ = mustLoadLocation("Asia/Shanghai")
	easternTZ = mustLoadLocation("America/New_York")
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("loading timezone %s: %v", name, err))
	}
	return loc
}

// scoreboardFetcher is the slice of the ESPN client the schedule needs.
type scoreboardFetcher interface {
	FetchScoreboard(ctx context.Context, date time.Time) (map[string]interface{}, error)
}

// liveScoreFetcher is the fallback scraper surface.
type liveScoreFetcher interface {
	FetchLiveGames(ctx context.Context) ([]google.LiveGame, error)
}

// GameView is one schedule entry, localized for Chinese-speaking clients.
type GameView struct {
	EventID       string `json:"eventId"`
	AwayTeam      string `json:"awayTeam"`
	HomeTeam      string `json:"homeTeam"`
	AwayScore     string `json:"awayScore"`
	HomeScore     string `json:"homeScore"`
	Status        string `json:"status"`
	Detail        string `json:"detail"`
	TipoffBeijing string `json:"tipoffBeijing"`
	Period        int    `json:"period"`
	Clock         string `json:"clock"`
	Source        string `json:"source"`
}

// GameService produces localized daily schedules. Dates are named in
// Beijing time, the audience's timezone, and translated to US Eastern
// for upstream queries.
type GameService struct {
	espn     scoreboardFetcher
	fallback liveScoreFetcher
	resolver *locale.Resolver
	cache    *cache.RedisCache
}

// NewGameService creates a schedule service. fallback and c may be nil to
// disable scraping and caching respectively.
func NewGameService(espnClient scoreboardFetcher, fallback liveScoreFetcher, resolver *locale.Resolver, c *cache.RedisCache) *GameService {
	return &GameService{
		espn:     espnClient,
		fallback: fallback,
		resolver: resolver,
		cache:    c,
	}
}

// Schedule returns the localized games for a Beijing calendar date
// ("2006-01-02"). An empty date means today in Beijing.
func (s *GameService) Schedule(ctx context.Context, beijingDate string) ([]GameView, error) {
	if beijingDate == "" {
		beijingDate = time.Now().In(beijingTZ).Format(beijingDateLayout)
	}

	day, err := time.ParseInLocation(beijingDateLayout, beijingDate, beijingTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", beijingDate, err)
	}

	if s.cache != nil {
		var cached []GameView
		if err := s.cache.GetJSON(ctx, cache.ScheduleKey(beijingDate), &cached); err == nil {
			return cached, nil
		}
	}

	payload, err := s.espn.FetchScoreboard(ctx, easternQueryDate(day))
	if err != nil {
		if s.fallback != nil {
			log.Printf("[games] ⚠️ scoreboard fetch failed, trying fallback: %v", err)
			return s.fallbackSchedule(ctx)
		}
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	views := s.localizeGames(espn.ParseScoreboard(payload))

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.ScheduleKey(beijingDate), views, cache.LiveTTL); err != nil {
			log.Printf("[games] ⚠️ caching schedule for %s: %v", beijingDate, err)
		}
	}

	return views, nil
}

// LiveGames returns only the in-progress games for today.
func (s *GameService) LiveGames(ctx context.Context) ([]GameView, error) {
	all, err := s.Schedule(ctx, "")
	if err != nil {
		return nil, err
	}

	live := make([]GameView, 0, len(all))
	for _, g := range all {
		if g.Status == "live" {
			live = append(live, g)
		}
	}
	return live, nil
}

// easternQueryDate maps a Beijing evening to the US Eastern date its games
// belong to. A Beijing date's games tip off the previous Eastern morning
// or evening, so the query anchors at Beijing noon and shifts zones.
func easternQueryDate(beijingDay time.Time) time.Time {
	noon := time.Date(beijingDay.Year(), beijingDay.Month(), beijingDay.Day(), 12, 0, 0, 0, beijingTZ)
	eastern := noon.In(easternTZ)
	return time.Date(eastern.Year(), eastern.Month(), eastern.Day(), 0, 0, 0, 0, easternTZ)
}

func (s *GameService) localizeGames(games []espn.Game) []GameView {
	views := make([]GameView, 0, len(games))
	for _, g := range games {
		view := GameView{
			EventID:   g.EventID,
			AwayTeam:  s.resolver.ResolveTeam(g.AwayTeam),
			HomeTeam:  s.resolver.ResolveTeam(g.HomeTeam),
			AwayScore: g.AwayScore,
			HomeScore: g.HomeScore,
			Status:    g.Status,
			Detail:    g.Detail,
			Period:    g.Period,
			Clock:     g.Clock,
			Source:    "espn",
		}
		if !g.StartTime.IsZero() {
			view.TipoffBeijing = g.StartTime.In(beijingTZ).Format("01月02日 15:04")
		}
		views = append(views, view)
	}
	return views
}

// fallbackSchedule serves scraped live scores when the primary source is
// down. Entries carry no event ID, so box scores are unavailable for them.
func (s *GameService) fallbackSchedule(ctx context.Context) ([]GameView, error) {
	games, err := s.fallback.FetchLiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fallback fetch: %w", err)
	}

	views := make([]GameView, 0, len(games))
	for _, g := range games {
		status := "scheduled"
		if g.Live {
			status = "live"
		}
		views = append(views, GameView{
			AwayTeam:  s.resolver.ResolveTeam(g.AwayTeam),
			HomeTeam:  s.resolver.ResolveTeam(g.HomeTeam),
			AwayScore: strconv.Itoa(g.AwayScore),
			HomeScore: strconv.Itoa(g.HomeScore),
			Status:    status,
			Detail:    g.Status,
			Period:    g.Period,
			Clock:     g.TimeRemaining,
			Source:    "google",
		})
	}
	return views, nil
}
