package research

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/inkwellhq/researchd/internal/domain"
	"github.com/inkwellhq/researchd/internal/extract"
	"github.com/inkwellhq/researchd/internal/fetch"
	"github.com/inkwellhq/researchd/internal/search"
)

// Engine orchestrates the research pipeline: query generation, source
// gathering, deduplication, ranking, content extraction, and fact selection.
// Every network step degrades to an empty result on failure; the pipeline
// itself never aborts because of an upstream miss.
type Engine struct {
	Provider search.Provider
	Fetcher  *fetch.Client

	// ResultsPerQuery caps how many hits each query keeps. Zero means 5.
	ResultsPerQuery int
	// MaxSources bounds the ranked source list. Zero means 15.
	MaxSources int
	// MaxExtract bounds how many top sources get their page fetched. Zero means 10.
	MaxExtract int
	// MaxContentWords truncates extracted text. Zero applies the extractor default.
	MaxContentWords int
	// QueryDelay and FetchDelay pace successive remote calls to avoid
	// rate-limiting. These are plain sleeps, not scheduling guarantees.
	QueryDelay time.Duration
	FetchDelay time.Duration
}

// Data is the outcome of one research run.
type Data struct {
	Topic        string          `json:"topic"`
	QueriesUsed  []string        `json:"queries_used"`
	Sources      []domain.Source `json:"sources"`
	TotalSources int             `json:"total_sources"`
	KeyFacts     []string        `json:"key_facts"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Queries returns the fixed set of query variants for a topic.
func Queries(topic string) []string {
	return []string{
		topic,
		topic + " analysis",
		topic + " overview",
		topic + " latest news",
		topic + " expert opinion",
	}
}

// Research runs the full pipeline for a topic.
func (e *Engine) Research(ctx context.Context, topic string) (*Data, error) {
	queries := Queries(topic)
	used := queries[:3]

	resultsPerQuery := e.ResultsPerQuery
	if resultsPerQuery <= 0 {
		resultsPerQuery = 5
	}
	maxSources := e.MaxSources
	if maxSources <= 0 {
		maxSources = 15
	}
	maxExtract := e.MaxExtract
	if maxExtract <= 0 {
		maxExtract = 10
	}

	var gathered []domain.Source
	for i, q := range used {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results, err := e.Provider.Search(ctx, q, resultsPerQuery)
		if err != nil {
			log.Warn().Err(err).Str("query", q).Msg("search failed, skipping query")
			results = nil
		}
		for _, r := range results {
			gathered = append(gathered, domain.Source{
				Title:   r.Title,
				URL:     r.URL,
				Snippet: r.Snippet,
				Source:  r.Source,
			})
		}
		if i < len(used)-1 {
			sleep(ctx, e.QueryDelay)
		}
	}

	ranked := Rank(Dedupe(gathered))
	if len(ranked) > maxSources {
		ranked = ranked[:maxSources]
	}

	// Fetch page text for the top sources, then rescore so the content
	// bonus is reflected in the stored credibility. Order is kept as ranked.
	limit := maxExtract
	if limit > len(ranked) {
		limit = len(ranked)
	}
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ranked[i].Content = e.extractContent(ctx, ranked[i].URL)
		ranked[i].Credibility = Credibility(ranked[i])
		if i < limit-1 {
			sleep(ctx, e.FetchDelay)
		}
	}
	enriched := ranked[:limit]

	data := &Data{
		Topic:        topic,
		QueriesUsed:  used,
		Sources:      enriched,
		TotalSources: len(enriched),
		KeyFacts:     KeyFacts(enriched),
		Timestamp:    time.Now(),
	}
	log.Info().Str("topic", topic).Int("sources", len(enriched)).Msg("research complete")
	return data, nil
}

func (e *Engine) extractContent(ctx context.Context, url string) string {
	if e.Fetcher == nil || url == "" {
		return ""
	}
	body, _, err := e.Fetcher.Get(ctx, url)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("content extraction failed")
		return ""
	}
	return extract.FromHTML(body, e.MaxContentWords)
}

// KeyFacts takes the top 5 ranked sources' snippets that exceed 50
// characters, in ranked order, capped at 10.
func KeyFacts(sources []domain.Source) []string {
	facts := []string{}
	top := sources
	if len(top) > 5 {
		top = top[:5]
	}
	for _, s := range top {
		if len(s.Snippet) > 50 {
			facts = append(facts, s.Snippet)
		}
	}
	if len(facts) > 10 {
		facts = facts[:10]
	}
	return facts
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
