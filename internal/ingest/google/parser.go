package google

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LiveGame is one game scraped from Google's score widget.
type LiveGame struct {
	AwayTeam      string `json:"awayTeam"`
	HomeTeam      string `json:"homeTeam"`
	AwayScore     int    `json:"awayScore"`
	HomeScore     int    `json:"homeScore"`
	Status        string `json:"status"`
	Period        int    `json:"period"`
	TimeRemaining string `json:"timeRemaining"`
	Live          bool   `json:"live"`
}

// ParseLiveGames extracts games from a rendered search results page.
// Google varies its widget markup, so selectors are tried in order.
func ParseLiveGames(doc *goquery.Document) []LiveGame {
	var games []LiveGame

	doc.Find("div.imso_mh__lv-m-stl-cont").Each(func(i int, s *goquery.Selection) {
		if game := parseScoreCard(s); game != nil {
			games = append(games, *game)
		}
	})

	if len(games) == 0 {
		doc.Find("div[class*='sports']").Each(func(i int, s *goquery.Selection) {
			if game := parseScoreText(s); game != nil {
				games = append(games, *game)
			}
		})
	}

	return games
}

// parseScoreCard reads the structured match widget.
func parseScoreCard(s *goquery.Selection) *LiveGame {
	game := &LiveGame{}

	s.Find("div.imso_mh__first-tn-ed").Each(func(i int, team *goquery.Selection) {
		name := strings.TrimSpace(team.Text())
		switch i {
		case 0:
			game.AwayTeam = name
		case 1:
			game.HomeTeam = name
		}
	})

	s.Find("div.imso_mh__l-tm-sc").Each(func(i int, score *goquery.Selection) {
		v, err := strconv.Atoi(strings.TrimSpace(score.Text()))
		if err != nil {
			return
		}
		switch i {
		case 0:
			game.AwayScore = v
		case 1:
			game.HomeScore = v
		}
	})

	game.Status = strings.TrimSpace(s.Find("span.imso_mh__ft-mtch").Text())
	game.Live = liveStatus(game.Status)
	game.Period, game.TimeRemaining = parseGameClock(game.Status)

	if game.AwayTeam == "" || game.HomeTeam == "" {
		return nil
	}
	return game
}

var scoreLinePattern = regexp.MustCompile(`(\w+)\s+(\d+)\s*-\s*(\d+)\s+(\w+)`)

// parseScoreText is a fallback for unstructured markup, scanning for
// lines shaped like "Lakers 105 - 98 Celtics".
func parseScoreText(s *goquery.Selection) *LiveGame {
	text := s.Text()
	if !strings.Contains(strings.ToLower(text), "nba") {
		return nil
	}

	matches := scoreLinePattern.FindStringSubmatch(text)
	if len(matches) != 5 {
		return nil
	}

	awayScore, _ := strconv.Atoi(matches[2])
	homeScore, _ := strconv.Atoi(matches[3])

	return &LiveGame{
		AwayTeam:  matches[1],
		HomeTeam:  matches[4],
		AwayScore: awayScore,
		HomeScore: homeScore,
		Status:    "Unknown",
	}
}

func liveStatus(status string) bool {
	s := strings.ToLower(status)
	for _, marker := range []string{"live", "q1", "q2", "q3", "q4"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

var clockPattern = regexp.MustCompile(`(\d{1,2}:\d{2})`)

var periodMarkers = []struct {
	marker string
	period int
}{
	{"q1", 1}, {"1st", 1},
	{"q2", 2}, {"2nd", 2},
	{"q3", 3}, {"3rd", 3},
	{"q4", 4}, {"4th", 4},
	{"ot", 5}, {"overtime", 5},
}

// parseGameClock pulls period and remaining time out of status text like
// "Q4 2:30" or "3rd 5:45".
func parseGameClock(status string) (int, string) {
	s := strings.ToLower(status)

	for _, pm := range periodMarkers {
		if strings.Contains(s, pm.marker) {
			if matches := clockPattern.FindStringSubmatch(status); len(matches) > 0 {
				return pm.period, matches[1]
			}
			return pm.period, ""
		}
	}

	if strings.Contains(s, "half") {
		return 2, "Halftime"
	}

	return 0, ""
}
