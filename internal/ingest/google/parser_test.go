package google

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture HTML: %v", err)
	}
	return doc
}

func TestParseLiveGamesScoreCard(t *testing.T) {
	html := `
<html><body>
  <div class="imso_mh__lv-m-stl-cont">
    <div class="imso_mh__first-tn-ed">Lakers</div>
    <div class="imso_mh__first-tn-ed">Celtics</div>
    <div class="imso_mh__l-tm-sc">98</div>
    <div class="imso_mh__l-tm-sc">105</div>
    <span class="imso_mh__ft-mtch">Q4 2:30</span>
  </div>
</body></html>`

	games := ParseLiveGames(docFromHTML(t, html))
	if len(games) != 1 {
		t.Fatalf("ParseLiveGames returned %d games, want 1", len(games))
	}

	g := games[0]
	if g.AwayTeam != "Lakers" || g.HomeTeam != "Celtics" {
		t.Errorf("teams = %q at %q", g.AwayTeam, g.HomeTeam)
	}
	if g.AwayScore != 98 || g.HomeScore != 105 {
		t.Errorf("scores = %d-%d", g.AwayScore, g.HomeScore)
	}
	if !g.Live {
		t.Error("Q4 game not marked live")
	}
	if g.Period != 4 || g.TimeRemaining != "2:30" {
		t.Errorf("clock = period %d, %q", g.Period, g.TimeRemaining)
	}
}

func TestParseLiveGamesTextFallback(t *testing.T) {
	html := `
<html><body>
  <div class="sports-results">NBA scores today: Lakers 105 - 98 Celtics</div>
</body></html>`

	games := ParseLiveGames(docFromHTML(t, html))
	if len(games) != 1 {
		t.Fatalf("ParseLiveGames returned %d games, want 1", len(games))
	}

	g := games[0]
	if g.AwayTeam != "Lakers" || g.HomeTeam != "Celtics" {
		t.Errorf("teams = %q at %q", g.AwayTeam, g.HomeTeam)
	}
	if g.AwayScore != 105 || g.HomeScore != 98 {
		t.Errorf("scores = %d-%d", g.AwayScore, g.HomeScore)
	}
	if g.Live {
		t.Error("text-fallback game should not be marked live")
	}
}

func TestParseLiveGamesIgnoresIncompleteCards(t *testing.T) {
	// Card missing the second team name yields nothing.
	html := `
<html><body>
  <div class="imso_mh__lv-m-stl-cont">
    <div class="imso_mh__first-tn-ed">Lakers</div>
    <div class="imso_mh__l-tm-sc">98</div>
  </div>
</body></html>`

	if games := ParseLiveGames(docFromHTML(t, html)); len(games) != 0 {
		t.Errorf("incomplete card produced %d games, want 0", len(games))
	}
}

func TestParseGameClock(t *testing.T) {
	tests := []struct {
		status string
		period int
		clock  string
	}{
		{"Q1 10:30", 1, "10:30"},
		{"2nd 5:45", 2, "5:45"},
		{"Q3", 3, ""},
		{"4th Quarter 1:23", 4, "1:23"},
		{"OT 2:00", 5, "2:00"},
		{"Halftime", 2, "Halftime"},
		{"Final", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			period, clock := parseGameClock(tt.status)
			if period != tt.period || clock != tt.clock {
				t.Errorf("parseGameClock(%q) = (%d, %q), want (%d, %q)",
					tt.status, period, clock, tt.period, tt.clock)
			}
		})
	}
}
