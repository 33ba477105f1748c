package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"time"
)

const (
	// DefaultBaseURL is ESPN's public site API.
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	sportPath = "basketball/nba"
)

// Client fetches NBA scoreboard and game-summary payloads from ESPN.
// Requests go through curl because ESPN blocks Go's HTTP client fingerprint.
type Client struct {
	baseURL string
}

// New creates a client. An empty baseURL selects the public API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL}
}

// FetchScoreboard fetches the list of games for a date. The date is
// interpreted in US Eastern time, ESPN's scheduling timezone; a zero date
// means ESPN's notion of "today". Responses are requested in Chinese so
// team names arrive pre-localized when ESPN supports it.
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("lang", "zh")
	params.Set("region", "cn")
	if !date.IsZero() {
		params.Set("dates", date.Format("20060102"))
	}

	endpoint := fmt.Sprintf("%s/%s/scoreboard?%s", c.baseURL, sportPath, params.Encode())
	return c.fetch(ctx, endpoint)
}

// FetchGameSummary fetches the full summary for one game, including the
// boxscore section when ESPN has produced it.
func (c *Client) FetchGameSummary(ctx context.Context, gameID string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, sportPath, url.QueryEscape(gameID))
	return c.fetch(ctx, endpoint)
}

// FetchBoxScore hits the legacy boxscore endpoint. Used as a fallback when
// the summary payload omits its boxscore section, which happens for a short
// window after tip-off.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/%s/boxscore?event=%s", c.baseURL, sportPath, url.QueryEscape(gameID))
	return c.fetch(ctx, endpoint)
}

// fetch runs curl and decodes the JSON body.
func (c *Client) fetch(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	cmd := exec.CommandContext(ctx, "curl", "-s", "-L", "-m", "15", endpoint)

	output, err := cmd.Output()
	if err != nil {
		log.Printf("[espn-client] ❌ curl failed for %s: %v", endpoint, err)
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("curl failed: %s (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("curl execution failed: %w", err)
	}

	// An HTML body means an error page (403, 404) rather than JSON.
	if len(output) > 0 && output[0] == '<' {
		return nil, fmt.Errorf("ESPN returned HTML error page: %s", snippet(output))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w (body: %s)", err, snippet(output))
	}

	return result, nil
}

func snippet(body []byte) string {
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
