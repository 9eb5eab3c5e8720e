package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const resultsPage = `<html><body>
<div class="result">
  <a class="result__a" href="https://example.com/one">First: Result</a>
  <a class="result__snippet">Snippet one text</a>
</div>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=hidden">Redirect Result</a>
</div>
<div class="result">
  <a class="result__a" href="https://news.example.org/two">Second Result</a>
  <a class="result__snippet">Snippet two text</a>
</div>
<div class="result"><span>no anchor here</span></div>
</body></html>`

func TestDuckDuckGo_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "some topic" {
			t.Errorf("expected query %q, got %q", "some topic", got)
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	prov := &DuckDuckGo{BaseURL: srv.URL, UserAgent: "test/1.0"}
	results, err := prov.Search(context.Background(), "some topic", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results (redirect link skipped), got %d", len(results))
	}
	first := results[0]
	if first.Title != "First: Result" || first.URL != "https://example.com/one" {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if first.Snippet != "Snippet one text" {
		t.Fatalf("unexpected snippet: %q", first.Snippet)
	}
	if first.Source != "example.com" {
		t.Fatalf("expected source host label, got %q", first.Source)
	}
	if results[1].Source != "news.example.org" {
		t.Fatalf("unexpected second source: %q", results[1].Source)
	}
}

func TestDuckDuckGo_HonorsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	prov := &DuckDuckGo{BaseURL: srv.URL}
	results, err := prov.Search(context.Background(), "q", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestDuckDuckGo_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	prov := &DuckDuckGo{BaseURL: srv.URL}
	if _, err := prov.Search(context.Background(), "q", 5); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
