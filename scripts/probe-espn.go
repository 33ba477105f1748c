// Manual probe for the ESPN endpoints. Run directly:
//
//	go run scripts/probe-espn.go [YYYY-MM-DD]
//
// Fetches the scoreboard for the given US Eastern date (default today) and
// the box score of the first listed game, printing the localized rows.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fortuna/iris/internal/boxscore"
	"github.com/fortuna/iris/internal/ingest/espn"
	"github.com/fortuna/iris/internal/locale"
)

func main() {
	client := espn.New("")
	ctx := context.Background()

	var date time.Time
	if len(os.Args) > 1 {
		var err error
		date, err = time.Parse("2006-01-02", os.Args[1])
		if err != nil {
			log.Fatalf("bad date %q: %v", os.Args[1], err)
		}
	}

	payload, err := client.FetchScoreboard(ctx, date)
	if err != nil {
		log.Fatalf("scoreboard fetch failed: %v", err)
	}

	games := espn.ParseScoreboard(payload)
	log.Printf("✓ %d games on scoreboard", len(games))
	for _, g := range games {
		fmt.Printf("  [%s] %s @ %s  %s-%s  (%s)\n",
			g.EventID, g.AwayTeam, g.HomeTeam, g.AwayScore, g.HomeScore, g.Status)
	}

	if len(games) == 0 {
		return
	}

	summary, err := client.FetchGameSummary(ctx, games[0].EventID)
	if err != nil {
		log.Fatalf("summary fetch failed: %v", err)
	}

	resolver := locale.NewResolver(locale.LoadTables(""), nil)
	away, home := boxscore.NewNormalizer(resolver).Normalize(summary)

	fmt.Printf("\n%s (%d rows):\n", games[0].AwayTeam, len(away))
	for _, row := range away {
		fmt.Printf("  %-16s %6s  %3s分 %s篮板 %s助攻\n",
			row.Name, row.Minutes, row.Points, row.Rebounds, row.Assists)
	}
	fmt.Printf("\n%s (%d rows):\n", games[0].HomeTeam, len(home))
	for _, row := range home {
		fmt.Printf("  %-16s %6s  %3s分 %s篮板 %s助攻\n",
			row.Name, row.Minutes, row.Points, row.Rebounds, row.Assists)
	}
}
