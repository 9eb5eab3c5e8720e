package research

import (
	"testing"

	"github.com/inkwellhq/researchd/internal/domain"
)

func TestDedupe_KeepsFirstSeenOrder(t *testing.T) {
	sources := []domain.Source{
		{Title: "A", URL: "https://example.com/a"},
		{Title: "B", URL: "https://example.com/b"},
		{Title: "A again", URL: "https://example.com/a"},
		{Title: "C", URL: "https://example.com/c"},
		{Title: "B again", URL: "https://example.com/b"},
	}
	out := Dedupe(sources)
	if len(out) != 3 {
		t.Fatalf("expected 3 unique sources, got %d", len(out))
	}
	want := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	for i, u := range want {
		if out[i].URL != u {
			t.Fatalf("position %d: expected %q, got %q", i, u, out[i].URL)
		}
	}
	if out[0].Title != "A" {
		t.Fatalf("dedupe should keep the first-seen entry, got title %q", out[0].Title)
	}
}

func TestDedupe_DropsEmptyURL(t *testing.T) {
	out := Dedupe([]domain.Source{{Title: "no url"}})
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d entries", len(out))
	}
}

func TestCredibility(t *testing.T) {
	cases := []struct {
		name string
		src  domain.Source
		want float64
	}{
		{"base only", domain.Source{Source: "randomblog.io"}, 0.5},
		{"trusted domain", domain.Source{Source: "www.bbc.com"}, 0.8},
		{"content only", domain.Source{Source: "randomblog.io", Content: "text"}, 0.7},
		{"trusted with content clamps at 1.0", domain.Source{Source: "en.wikipedia.org", Content: "text"}, 1.0},
		{"multiple trusted matches do not stack", domain.Source{Source: "nature.org"}, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Credibility(tc.src)
			if got != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, got)
			}
			if got < 0.0 || got > 1.0 {
				t.Fatalf("credibility out of range: %.2f", got)
			}
		})
	}
}

func TestRank_SortedNonIncreasingAndStable(t *testing.T) {
	sources := []domain.Source{
		{Title: "plain one", URL: "https://a.io/1", Source: "a.io"},
		{Title: "trusted", URL: "https://bbc.com/1", Source: "bbc.com"},
		{Title: "plain two", URL: "https://b.io/1", Source: "b.io"},
	}
	out := Rank(sources)
	for i := 1; i < len(out); i++ {
		if out[i].Credibility > out[i-1].Credibility {
			t.Fatalf("ranking not non-increasing at %d: %.2f > %.2f", i, out[i].Credibility, out[i-1].Credibility)
		}
	}
	if out[0].Source != "bbc.com" {
		t.Fatalf("expected trusted source first, got %q", out[0].Source)
	}
	// Ties keep prior relative order.
	if out[1].Title != "plain one" || out[2].Title != "plain two" {
		t.Fatalf("tie order not stable: %q, %q", out[1].Title, out[2].Title)
	}
}

func TestKeyFacts(t *testing.T) {
	long := "this snippet is definitely longer than fifty characters in total length"
	sources := []domain.Source{
		{Snippet: long + " one"},
		{Snippet: "short"},
		{Snippet: long + " two"},
		{Snippet: long + " three"},
		{Snippet: long + " four"},
		{Snippet: long + " ignored, beyond top five"},
	}
	facts := KeyFacts(sources)
	if len(facts) != 4 {
		t.Fatalf("expected 4 facts, got %d", len(facts))
	}
	if facts[0] != long+" one" {
		t.Fatalf("facts should keep ranked order, got %q first", facts[0])
	}
}

func TestKeyFacts_Empty(t *testing.T) {
	if facts := KeyFacts(nil); len(facts) != 0 {
		t.Fatalf("expected no facts, got %d", len(facts))
	}
}
