package espn

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Game is one scoreboard entry, already reduced to the fields downstream
// services care about.
type Game struct {
	EventID   string    `json:"eventId"`
	AwayTeam  string    `json:"awayTeam"`
	HomeTeam  string    `json:"homeTeam"`
	AwayScore string    `json:"awayScore"`
	HomeScore string    `json:"homeScore"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail"`
	StartTime time.Time `json:"startTime"`
	Period    int       `json:"period"`
	Clock     string    `json:"clock"`
}

// Live reports whether the game is in progress.
func (g *Game) Live() bool { return g.Status == "live" }

// Final reports whether the game has ended.
func (g *Game) Final() bool { return g.Status == "final" }

// ParseScoreboard extracts the games from a scoreboard payload. An empty
// events list is a normal off-day, not an error; individual malformed
// events are logged and skipped.
func ParseScoreboard(payload map[string]interface{}) []Game {
	events := extractArray(payload, "events")
	games := make([]Game, 0, len(events))

	for _, eventInterface := range events {
		event, ok := eventInterface.(map[string]interface{})
		if !ok {
			continue
		}
		game, err := parseEvent(event)
		if err != nil {
			log.Printf("[espn-parser] ⚠️ skipping event %s: %v", extractString(event, "id"), err)
			continue
		}
		games = append(games, game)
	}

	return games
}

func parseEvent(event map[string]interface{}) (Game, error) {
	game := Game{
		EventID: extractString(event, "id"),
	}
	if game.EventID == "" {
		return game, fmt.Errorf("event has no id")
	}

	if dateStr := extractString(event, "date"); dateStr != "" {
		game.StartTime = parseEventTime(dateStr)
	}

	status := extractMap(event, "status")
	game.Status = parseStatus(status)
	game.Detail = extractString(extractMap(status, "type"), "shortDetail")
	game.Period = extractInt(status, "period")
	game.Clock = extractString(status, "displayClock")

	competitions := extractArray(event, "competitions")
	if len(competitions) == 0 {
		return game, fmt.Errorf("no competitions")
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return game, fmt.Errorf("malformed competition")
	}

	competitors := extractArray(comp, "competitors")
	if len(competitors) < 2 {
		return game, fmt.Errorf("insufficient competitors")
	}

	for _, competitorInterface := range competitors {
		competitor, ok := competitorInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := extractMap(competitor, "team")
		name := fallbackString(
			extractString(team, "displayName"),
			extractString(team, "shortDisplayName"),
			extractString(team, "abbreviation"),
		)
		score := extractString(competitor, "score")

		switch extractString(competitor, "homeAway") {
		case "home":
			game.HomeTeam = name
			game.HomeScore = score
		case "away":
			game.AwayTeam = name
			game.AwayScore = score
		}
	}

	if game.HomeTeam == "" || game.AwayTeam == "" {
		return game, fmt.Errorf("missing home/away designation")
	}

	return game, nil
}

// parseEventTime accepts RFC3339 plus ESPN's seconds-less variant
// ("2025-11-15T01:00Z"). Unparseable dates yield the zero time.
func parseEventTime(dateStr string) time.Time {
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t
	}
	t, err := time.Parse("2006-01-02T15:04Z", dateStr)
	if err != nil {
		log.Printf("[espn-parser] ⚠️ unparseable event date %q: %v", dateStr, err)
		return time.Time{}
	}
	return t
}

// parseStatus maps ESPN's status object onto scheduled/live/final.
func parseStatus(status map[string]interface{}) string {
	statusType := extractMap(status, "type")

	if completed, ok := statusType["completed"].(bool); ok && completed {
		return "final"
	}

	switch extractString(statusType, "state") {
	case "in":
		return "live"
	case "post":
		return "final"
	default:
		return "scheduled"
	}
}

// Payload helpers shared across this package.

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func extractInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key].([]interface{}); ok {
		return v
	}
	return []interface{}{}
}

func fallbackString(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
