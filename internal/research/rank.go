package research

import (
	"sort"
	"strings"

	"github.com/inkwellhq/researchd/internal/domain"
)

// trustedDomains boosts credibility for well-known publishers and
// institutional TLD fragments. First match wins; boosts do not stack.
var trustedDomains = []string{
	"edu", "gov", "org", "nytimes.com", "bbc.com", "reuters.com",
	"theguardian.com", "wsj.com", "economist.com", "nature.com",
	"sciencedirect.com", "wikipedia.org",
}

// Credibility scores a source: 0.5 base, +0.3 on the first trusted-domain
// match, +0.2 when extracted content is present, clamped to 1.0.
func Credibility(s domain.Source) float64 {
	score := 0.5
	host := strings.ToLower(s.Source)
	for _, trusted := range trustedDomains {
		if strings.Contains(host, trusted) {
			score += 0.3
			break
		}
	}
	if s.Content != "" {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Rank assigns each source its credibility and sorts descending. The sort is
// stable, so equal scores keep their prior relative order.
func Rank(sources []domain.Source) []domain.Source {
	out := make([]domain.Source, len(sources))
	copy(out, sources)
	for i := range out {
		out[i].Credibility = Credibility(out[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Credibility > out[j].Credibility
	})
	return out
}

// Dedupe removes entries whose URL has already been seen, preserving
// first-seen order. Entries without a URL are dropped.
func Dedupe(sources []domain.Source) []domain.Source {
	seen := map[string]struct{}{}
	out := make([]domain.Source, 0, len(sources))
	for _, s := range sources {
		if s.URL == "" {
			continue
		}
		if _, ok := seen[s.URL]; ok {
			continue
		}
		seen[s.URL] = struct{}{}
		out = append(out, s)
	}
	return out
}
