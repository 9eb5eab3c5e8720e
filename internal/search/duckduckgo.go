package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DuckDuckGo implements Provider against the DuckDuckGo HTML endpoint,
// which requires no API key. Results are scraped from the rendered page.
type DuckDuckGo struct {
	BaseURL    string // defaults to https://html.duckduckgo.com/html/
	HTTPClient *http.Client
	UserAgent  string // optional custom UA
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	base := d.BaseURL
	if base == "" {
		base = "https://html.duckduckgo.com/html/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}
	hc := d.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	out := make([]Result, 0, limit)
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		titleElem := sel.Find("a.result__a").First()
		if titleElem.Length() == 0 {
			return true
		}
		href, _ := titleElem.Attr("href")
		href = strings.TrimSpace(href)
		// Skip DuckDuckGo redirect links; they hide the target host.
		if href == "" || strings.HasPrefix(href, "//duckduckgo.com/l/?") {
			return true
		}
		title := strings.TrimSpace(titleElem.Text())
		if title == "" {
			return true
		}
		snippet := strings.TrimSpace(sel.Find("a.result__snippet").First().Text())
		out = append(out, Result{
			Title:   title,
			URL:     href,
			Snippet: snippet,
			Source:  hostOf(href),
		})
		return len(out) < limit
	})
	return out, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
