package locale

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Tables holds the English→Chinese translation tables for teams and players.
// Loaded once at startup; read-only afterwards.
type Tables struct {
	Teams   map[string]string
	Players map[string]string

	// playerKeys caches the sorted key set so the fuzzy matching tiers
	// scan in a deterministic order.
	playerKeys []string
}

// NewTables builds a Tables value from explicit maps. Nil maps are allowed
// and degrade to identity translation.
func NewTables(teams, players map[string]string) *Tables {
	if teams == nil {
		teams = map[string]string{}
	}
	if players == nil {
		players = map[string]string{}
	}
	t := &Tables{Teams: teams, Players: players}
	t.reindex()
	return t
}

// LoadTables returns the built-in tables, optionally overlaid with
// teams.json / players.json from dataDir. Overlay files are flat
// string→string objects; a missing or unreadable file is not an error.
func LoadTables(dataDir string) *Tables {
	teams := make(map[string]string, len(builtinTeams))
	for k, v := range builtinTeams {
		teams[k] = v
	}
	players := make(map[string]string, len(builtinPlayers))
	for k, v := range builtinPlayers {
		players[k] = v
	}

	if dataDir != "" {
		mergeOverlay(teams, filepath.Join(dataDir, "teams.json"))
		mergeOverlay(players, filepath.Join(dataDir, "players.json"))
	}

	t := &Tables{Teams: teams, Players: players}
	t.reindex()
	log.Printf("[locale] Loaded translation tables: %d teams, %d players", len(teams), len(players))
	return t
}

func (t *Tables) reindex() {
	t.playerKeys = make([]string, 0, len(t.Players))
	for k := range t.Players {
		t.playerKeys = append(t.playerKeys, k)
	}
	sort.Strings(t.playerKeys)
}

// mergeOverlay merges entries from a JSON file into dst. Overlay entries win
// over built-ins so curated data can correct shipped defaults.
func mergeOverlay(dst map[string]string, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var overlay map[string]string
	if err := json.Unmarshal(content, &overlay); err != nil {
		log.Printf("[locale] Warning: skipping malformed overlay %s: %v", path, err)
		return
	}

	for k, v := range overlay {
		dst[k] = v
	}
	log.Printf("[locale] ✓ Merged %d entries from %s", len(overlay), path)
}
