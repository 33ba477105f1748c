package boxscore

import (
	"testing"

	"github.com/fortuna/iris/internal/locale"
)

func testNormalizer() *Normalizer {
	tables := locale.NewTables(nil, map[string]string{
		"LeBron James":  "勒布朗·詹姆斯",
		"Anthony Davis": "安东尼·戴维斯",
		"Jayson Tatum":  "杰森·塔图姆",
	})
	return NewNormalizer(locale.NewResolver(tables, nil))
}

// athlete builds one athlete entry in ESPN's summary shape.
func athlete(name string, stats ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"athlete": map[string]interface{}{"displayName": name},
		"stats":   stats,
	}
}

// summaryPayload wraps two team blocks in the boxscore.players shape.
// Label order: MIN, PTS, FG, 3PT, FT, REB, AST, TO.
func summaryPayload(awayAthletes, homeAthletes []interface{}) map[string]interface{} {
	labels := []interface{}{"MIN", "PTS", "FG", "3PT", "FT", "REB", "AST", "TO"}

	teamBlock := func(side string, athletes []interface{}) map[string]interface{} {
		return map[string]interface{}{
			"homeAway": side,
			"statistics": []interface{}{
				map[string]interface{}{
					"labels":   labels,
					"athletes": athletes,
				},
			},
		}
	}

	return map[string]interface{}{
		"boxscore": map[string]interface{}{
			"players": []interface{}{
				teamBlock("away", awayAthletes),
				teamBlock("home", homeAthletes),
			},
		},
	}
}

func TestNormalizeEmptyPayloads(t *testing.T) {
	n := testNormalizer()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"nil payload", nil},
		{"empty payload", map[string]interface{}{}},
		{"no boxscore section", map[string]interface{}{"header": map[string]interface{}{}}},
		{"boxscore without teams", map[string]interface{}{
			"boxscore": map[string]interface{}{"players": []interface{}{}},
		}},
		{"single team block", map[string]interface{}{
			"boxscore": map[string]interface{}{
				"players": []interface{}{map[string]interface{}{}},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			away, home := n.Normalize(tt.payload)
			if away == nil || home == nil {
				t.Fatal("Normalize returned nil slices")
			}
			if len(away) != 0 || len(home) != 0 {
				t.Errorf("Normalize = %d away, %d home rows, want empty", len(away), len(home))
			}
		})
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	n := testNormalizer()

	payload := summaryPayload(
		[]interface{}{
			athlete("Jayson Tatum", "36:30", "31", "9-15", "4-9", "9-10", "8", "5", "2"),
		},
		[]interface{}{
			athlete("LeBron James", "38:02", "28", "11-20", "2-6", "4-5", "7", "9", "3"),
			athlete("Anthony Davis", "35", "22", "8/14", "0-1", "6-8", "12", "3", "1"),
		},
	)

	away, home := n.Normalize(payload)

	if len(away) != 1 || len(home) != 2 {
		t.Fatalf("Normalize = %d away, %d home rows, want 1 and 2", len(away), len(home))
	}

	tatum := away[0]
	if tatum.Name != "杰森·塔图姆" {
		t.Errorf("away[0].Name = %q, want 杰森·塔图姆", tatum.Name)
	}
	if tatum.Points != "31" || tatum.FieldGoals != "9/15" || tatum.ThreePointers != "4/9" {
		t.Errorf("away[0] stats = %q %q %q", tatum.Points, tatum.FieldGoals, tatum.ThreePointers)
	}
	if tatum.Minutes != "36:30" {
		t.Errorf("away[0].Minutes = %q, want 36:30", tatum.Minutes)
	}

	// Home side sorted points descending: James 28 over Davis 22.
	if home[0].Name != "勒布朗·詹姆斯" || home[1].Name != "安东尼·戴维斯" {
		t.Errorf("home ordering = %q, %q", home[0].Name, home[1].Name)
	}

	// "8/14" normalizes to the slash display form either way.
	if home[1].FieldGoals != "8/14" {
		t.Errorf("home[1].FieldGoals = %q, want 8/14", home[1].FieldGoals)
	}
	// Bare minute numbers gain ":00".
	if home[1].Minutes != "35:00" {
		t.Errorf("home[1].Minutes = %q, want 35:00", home[1].Minutes)
	}
}

func TestNormalizeHomeAwaySwap(t *testing.T) {
	n := testNormalizer()

	// Blocks arrive home-first; the marker must win over position.
	payload := summaryPayload(nil, nil)
	blocks := payload["boxscore"].(map[string]interface{})["players"].([]interface{})
	blocks[0].(map[string]interface{})["homeAway"] = "home"
	blocks[0].(map[string]interface{})["statistics"].([]interface{})[0].(map[string]interface{})["athletes"] = []interface{}{
		athlete("LeBron James", "30:00", "25", "9-15", "2-5", "5-6", "6", "8", "2"),
	}
	blocks[1].(map[string]interface{})["homeAway"] = "away"
	blocks[1].(map[string]interface{})["statistics"].([]interface{})[0].(map[string]interface{})["athletes"] = []interface{}{
		athlete("Jayson Tatum", "30:00", "27", "10-18", "3-7", "4-4", "7", "4", "1"),
	}

	away, home := n.Normalize(payload)

	if len(away) != 1 || away[0].Name != "杰森·塔图姆" {
		t.Errorf("away side = %+v, want Tatum", away)
	}
	if len(home) != 1 || home[0].Name != "勒布朗·詹姆斯" {
		t.Errorf("home side = %+v, want James", home)
	}
}

func TestNormalizeSkipsCorruptAndSentinelAthletes(t *testing.T) {
	n := testNormalizer()

	payload := summaryPayload(
		[]interface{}{
			"not a map",
			map[string]interface{}{"athlete": "not a map"},
			athlete("DNP", "12:00", "4", "2-3", "0-0", "0-0", "1", "0", "0"),
			athlete("LeBron James"), // no stats array
			athlete("Jayson Tatum", "30:00", "20", "8-12", "2-4", "2-2", "5", "3", "1"),
		},
		[]interface{}{
			athlete("Anthony Davis", "28:00", "18", "7-11", "0-0", "4-6", "10", "2", "2"),
		},
	)

	away, home := n.Normalize(payload)

	if len(away) != 1 || away[0].Name != "杰森·塔图姆" {
		t.Errorf("away = %+v, want only Tatum", away)
	}
	if len(home) != 1 {
		t.Errorf("home rows = %d, want 1", len(home))
	}
}

func TestNormalizeContributionFilter(t *testing.T) {
	n := testNormalizer()

	payload := summaryPayload(
		[]interface{}{
			// All zeros, 0:00 minutes: excluded.
			athlete("Bench Warmer", "0:00", "0", "0-0", "0-0", "0-0", "0", "0", "0"),
			// No counting stats but real minutes: included.
			athlete("Defense Only", "12:30", "0", "0-3", "0-1", "0-0", "0", "0", "0"),
			// Made a shot, no minutes string: included.
			athlete("Quick Score", "0:00", "2", "1-1", "0-0", "0-0", "0", "0", "0"),
		},
		[]interface{}{
			athlete("LeBron James", "30:00", "25", "9-15", "2-5", "5-6", "6", "8", "2"),
		},
	)

	away, _ := n.Normalize(payload)

	if len(away) != 2 {
		t.Fatalf("away rows = %d, want 2 (filter misapplied): %+v", len(away), away)
	}
	for _, row := range away {
		if row.Name == "Bench Warmer" {
			t.Error("zero-contribution row survived the filter")
		}
	}
}

func TestNormalizeLabelValueMismatch(t *testing.T) {
	n := testNormalizer()

	// Value list shorter than the label list: missing stats default.
	payload := summaryPayload(
		[]interface{}{
			athlete("Jayson Tatum", "22:10", "15"),
		},
		[]interface{}{
			athlete("LeBron James", "30:00", "25", "9-15", "2-5", "5-6", "6", "8", "2"),
		},
	)

	away, _ := n.Normalize(payload)

	if len(away) != 1 {
		t.Fatalf("away rows = %d, want 1", len(away))
	}
	row := away[0]
	if row.Points != "15" || row.Minutes != "22:10" {
		t.Errorf("present stats wrong: points %q minutes %q", row.Points, row.Minutes)
	}
	if row.FieldGoals != "0/0" || row.Rebounds != "0" || row.Assists != "0" {
		t.Errorf("missing stats did not default: FG %q REB %q AST %q",
			row.FieldGoals, row.Rebounds, row.Assists)
	}
}

func TestNormalizeAlternateShapes(t *testing.T) {
	n := testNormalizer()

	athletes := []interface{}{
		athlete("LeBron James", "30:00", "25", "9-15", "2-5", "5-6", "6", "8", "2"),
	}

	// "names" instead of "labels", and team blocks at boxscore.teams.
	block := func(side string) map[string]interface{} {
		return map[string]interface{}{
			"homeAway": side,
			"statistics": []interface{}{
				map[string]interface{}{
					"names":    []interface{}{"MIN", "PTS", "FG", "3PT", "FT", "REB", "AST", "TO"},
					"athletes": athletes,
				},
			},
		}
	}

	payload := map[string]interface{}{
		"boxscore": map[string]interface{}{
			"teams": []interface{}{block("away"), block("home")},
		},
	}

	away, home := n.Normalize(payload)
	if len(away) != 1 || len(home) != 1 {
		t.Errorf("boxscore.teams shape: %d away, %d home rows, want 1 and 1", len(away), len(home))
	}

	// Top-level players array.
	payload = map[string]interface{}{
		"players": []interface{}{block("away"), block("home")},
	}
	away, home = n.Normalize(payload)
	if len(away) != 1 || len(home) != 1 {
		t.Errorf("top-level players shape: %d away, %d home rows, want 1 and 1", len(away), len(home))
	}
}

func TestNormalizeSecondaryStatGroupSkipped(t *testing.T) {
	n := testNormalizer()

	playerGroup := map[string]interface{}{
		"labels": []interface{}{"MIN", "PTS", "FG", "3PT", "FT", "REB", "AST", "TO"},
		"athletes": []interface{}{
			athlete("LeBron James", "30:00", "25", "9-15", "2-5", "5-6", "6", "8", "2"),
		},
	}
	splitsGroup := map[string]interface{}{
		"labels": []interface{}{"FG%", "3P%"},
		"athletes": []interface{}{
			athlete("Ignore Me", "50.0", "40.0"),
		},
	}

	block := func(side string) map[string]interface{} {
		return map[string]interface{}{
			"homeAway":   side,
			"statistics": []interface{}{splitsGroup, playerGroup},
		}
	}

	payload := map[string]interface{}{
		"boxscore": map[string]interface{}{
			"players": []interface{}{block("away"), block("home")},
		},
	}

	away, _ := n.Normalize(payload)
	if len(away) != 1 || away[0].Name != "勒布朗·詹姆斯" {
		t.Errorf("main stat group selection failed: %+v", away)
	}
}

func TestNormalizeReorderedLabels(t *testing.T) {
	n := testNormalizer()

	// Stats bind by label, so an upstream label reshuffle must not shift
	// values into the wrong columns.
	block := func(side string) map[string]interface{} {
		return map[string]interface{}{
			"homeAway": side,
			"statistics": []interface{}{
				map[string]interface{}{
					"labels": []interface{}{"PTS", "REB", "AST", "TO", "MIN", "FG", "3PT", "FT"},
					"athletes": []interface{}{
						athlete("LeBron James", "24", "5", "3", "2", "30:15", "9-15", "3-6", "3-3"),
					},
				},
			},
		}
	}

	payload := map[string]interface{}{
		"boxscore": map[string]interface{}{
			"players": []interface{}{block("away"), block("home")},
		},
	}

	away, _ := n.Normalize(payload)
	if len(away) != 1 {
		t.Fatalf("away rows = %d, want 1", len(away))
	}

	row := away[0]
	if row.Points != "24" || row.Rebounds != "5" || row.Assists != "3" || row.Turnovers != "2" {
		t.Errorf("counts misbound: PTS %q REB %q AST %q TO %q",
			row.Points, row.Rebounds, row.Assists, row.Turnovers)
	}
	if row.Minutes != "30:15" {
		t.Errorf("Minutes = %q, want 30:15", row.Minutes)
	}
	if row.FieldGoals != "9/15" || row.ThreePointers != "3/6" || row.FreeThrows != "3/3" {
		t.Errorf("shot lines misbound: FG %q 3PT %q FT %q",
			row.FieldGoals, row.ThreePointers, row.FreeThrows)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := testNormalizer()

	payload := summaryPayload(
		[]interface{}{
			athlete("Jayson Tatum", "36:30", "31", "9-15", "4-9", "9-10", "8", "5", "2"),
		},
		[]interface{}{
			athlete("LeBron James", "38:02", "28", "11-20", "2-6", "4-5", "7", "9", "3"),
		},
	)

	away1, home1 := n.Normalize(payload)
	away2, home2 := n.Normalize(payload)

	if len(away1) != len(away2) || len(home1) != len(home2) {
		t.Fatal("repeated Normalize changed row counts")
	}
	for i := range away1 {
		if away1[i] != away2[i] {
			t.Errorf("away[%d] differs between runs: %+v vs %+v", i, away1[i], away2[i])
		}
	}
}
