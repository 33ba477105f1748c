package service

import (
	"context"
	"fmt"
	"log"

	"github.com/fortuna/iris/internal/boxscore"
	"github.com/fortuna/iris/internal/cache"
)

// summaryFetcher is the slice of the ESPN client box scores need. The
// legacy endpoint covers the window right after tip-off when the summary
// omits its boxscore section.
type summaryFetcher interface {
	FetchGameSummary(ctx context.Context, gameID string) (map[string]interface{}, error)
	FetchBoxScore(ctx context.Context, gameID string) (map[string]interface{}, error)
}

// BoxScorePair carries both teams' normalized rows for one game.
type BoxScorePair struct {
	GameID string                `json:"gameId"`
	Away   boxscore.TeamBoxScore `json:"away"`
	Home   boxscore.TeamBoxScore `json:"home"`
	Final  bool                  `json:"final"`
}

// BoxScoreService fetches, normalizes, and caches game box scores.
type BoxScoreService struct {
	espn       summaryFetcher
	normalizer *boxscore.Normalizer
	cache      *cache.RedisCache
}

// NewBoxScoreService creates the service. c may be nil to disable caching.
func NewBoxScoreService(espnClient summaryFetcher, n *boxscore.Normalizer, c *cache.RedisCache) *BoxScoreService {
	return &BoxScoreService{
		espn:       espnClient,
		normalizer: n,
		cache:      c,
	}
}

// GetBoxScore returns the normalized box score for a game. A game that has
// not produced statistics yet yields empty rows, not an error; only a
// failed upstream fetch is an error.
func (s *BoxScoreService) GetBoxScore(ctx context.Context, gameID string) (*BoxScorePair, error) {
	if s.cache != nil {
		var cached BoxScorePair
		if err := s.cache.GetJSON(ctx, cache.BoxScoreKey(gameID), &cached); err == nil {
			return &cached, nil
		}
	}

	payload, err := s.espn.FetchGameSummary(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching summary for game %s: %w", gameID, err)
	}

	// Shortly after tip-off the summary has a header but no boxscore
	// section; the legacy endpoint usually has it first.
	if _, ok := payload["boxscore"]; !ok {
		if legacy, err := s.espn.FetchBoxScore(ctx, gameID); err == nil {
			payload = legacy
		} else {
			log.Printf("[boxscores] ⚠️ legacy boxscore fetch for %s: %v", gameID, err)
		}
	}

	away, home := s.normalizer.Normalize(payload)

	pair := &BoxScorePair{
		GameID: gameID,
		Away:   away,
		Home:   home,
		Final:  summaryIsFinal(payload),
	}

	if s.cache != nil {
		ttl := cache.LiveTTL
		if pair.Final {
			ttl = cache.FinalTTL
		}
		if err := s.cache.SetJSON(ctx, cache.BoxScoreKey(gameID), pair, ttl); err != nil {
			log.Printf("[boxscores] ⚠️ caching box score for %s: %v", gameID, err)
		}
	}

	return pair, nil
}

// summaryIsFinal digs the completed flag out of the summary header.
func summaryIsFinal(payload map[string]interface{}) bool {
	header, _ := payload["header"].(map[string]interface{})
	competitions, _ := header["competitions"].([]interface{})
	if len(competitions) == 0 {
		return false
	}
	comp, _ := competitions[0].(map[string]interface{})
	status, _ := comp["status"].(map[string]interface{})
	statusType, _ := status["type"].(map[string]interface{})
	completed, _ := statusType["completed"].(bool)
	return completed
}
