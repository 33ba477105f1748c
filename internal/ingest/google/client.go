package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const (
	searchURL = "https://www.google.com/search"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// minRequestInterval spaces out requests so the scraper is not
	// mistaken for abusive traffic.
	minRequestInterval = 2 * time.Second
)

// Client scrapes Google's sports widgets through a headless browser.
// Used as a fallback score source when the primary API lags behind
// live play. Not safe for concurrent use; the scheduler serializes it.
type Client struct {
	lastRequest time.Time

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewClient starts a headless browser allocator. Call Close when done.
func NewClient() (*Client, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Client{allocCtx: allocCtx, cancel: cancel}, nil
}

// Close releases the browser allocator.
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// FetchLiveGames returns parsed live NBA games from Google's score widgets.
func (c *Client) FetchLiveGames(ctx context.Context) ([]LiveGame, error) {
	html, err := c.fetchWithRateLimit(ctx, "nba games today")
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	return ParseLiveGames(doc), nil
}

func (c *Client) fetchWithRateLimit(ctx context.Context, query string) (string, error) {
	if !c.lastRequest.IsZero() {
		if elapsed := time.Since(c.lastRequest); elapsed < minRequestInterval {
			select {
			case <-time.After(minRequestInterval - elapsed):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	html, err := c.fetch(ctx, query)
	c.lastRequest = time.Now()
	return html, err
}

// fetch renders the search page in the headless browser. A plain HTTP GET
// gets the no-JS page without the score widgets.
func (c *Client) fetch(ctx context.Context, query string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var html string
	url := fmt.Sprintf("%s?q=%s", searchURL, strings.ReplaceAll(query, " ", "+"))

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}
	if html == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	return html, nil
}
