package analytics

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/inkwellhq/researchd/internal/domain"
)

// stopWords are excluded from word cloud counting.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the be to of and a in that have i " +
			"it for not on with he as you do at " +
			"this but his by from they we say her she " +
			"or an will my one all would there their " +
			"what so up out if about who get which go " +
			"report article investigation research study analysis") {
		stopWords[w] = struct{}{}
	}
}

var cloudWordRe = regexp.MustCompile(`\b[a-z]{4,}\b`)

// Statistics aggregates totals across all reports.
type Statistics struct {
	TotalReports int        `json:"total_reports"`
	TotalWords   int        `json:"total_words"`
	TotalSources int        `json:"total_sources"`
	AvgWordCount int        `json:"avg_word_count"`
	AvgSources   int        `json:"avg_sources"`
	DateRange    *DateRange `json:"date_range"`
}

// DateRange bounds the creation times of the report set.
type DateRange struct {
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

// WordCloudEntry is one word with its frequency and a 0-100 display size
// normalized against the most frequent word.
type WordCloudEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Size  int    `json:"size"`
}

// DatePoint is a per-day aggregate.
type DatePoint struct {
	Date    string `json:"date"`
	Count   int    `json:"count,omitempty"`
	Words   int    `json:"words,omitempty"`
	Sources int    `json:"sources,omitempty"`
}

// Trends groups per-day aggregates, ascending by date.
type Trends struct {
	ReportsOverTime []DatePoint `json:"reports_over_time"`
	WordCountTrend  []DatePoint `json:"word_count_trend"`
	SourcesTrend    []DatePoint `json:"sources_trend"`
}

// TopicShare is one topic with its frequency and share of all reports.
type TopicShare struct {
	Topic      string  `json:"topic"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SourceCount is one site label with its usage count.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Comprehensive bundles every analytics view in one payload.
type Comprehensive struct {
	Statistics Statistics       `json:"statistics"`
	WordCloud  []WordCloudEntry `json:"word_cloud"`
	Trends     Trends           `json:"trends"`
	Topics     []TopicShare     `json:"topics"`
	TopSources []SourceCount    `json:"top_sources"`
}

// GetComprehensive computes all analytics in one call.
func GetComprehensive(reports []domain.Report) Comprehensive {
	return Comprehensive{
		Statistics: GetStatistics(reports),
		WordCloud:  GetWordCloud(reports, 50),
		Trends:     GetTrends(reports),
		Topics:     GetTopicDistribution(reports, 10),
		TopSources: GetTopSources(reports, 10),
	}
}

// GetStatistics calculates overall statistics across all reports.
func GetStatistics(reports []domain.Report) Statistics {
	if len(reports) == 0 {
		return Statistics{}
	}
	stats := Statistics{TotalReports: len(reports)}
	var first, last time.Time
	for _, r := range reports {
		stats.TotalWords += r.WordCount
		stats.TotalSources += len(r.Sources)
		if first.IsZero() || r.CreatedAt.Before(first) {
			first = r.CreatedAt
		}
		if last.IsZero() || r.CreatedAt.After(last) {
			last = r.CreatedAt
		}
	}
	stats.AvgWordCount = stats.TotalWords / stats.TotalReports
	stats.AvgSources = stats.TotalSources / stats.TotalReports
	if !first.IsZero() {
		stats.DateRange = &DateRange{First: first, Last: last}
	}
	return stats
}

// GetWordCloud produces word frequencies over title, summary, and content of
// every report, stop-word filtered, limited to topN entries.
func GetWordCloud(reports []domain.Report, topN int) []WordCloudEntry {
	counter := newCounter()
	for _, r := range reports {
		text := strings.ToLower(r.Title + " " + r.Summary + " " + r.Content)
		for _, w := range cloudWordRe.FindAllString(text, -1) {
			if _, stop := stopWords[w]; stop {
				continue
			}
			counter.add(w)
		}
	}
	top := counter.mostCommon(topN)
	if len(top) == 0 {
		return []WordCloudEntry{}
	}
	maxCount := top[0].count
	out := make([]WordCloudEntry, 0, len(top))
	for _, e := range top {
		out = append(out, WordCloudEntry{
			Word:  e.key,
			Count: e.count,
			Size:  int(float64(e.count) / float64(maxCount) * 100),
		})
	}
	return out
}

// GetTrends buckets reports by the date portion of their creation time.
func GetTrends(reports []domain.Report) Trends {
	type bucket struct {
		count   int
		words   int
		sources int
	}
	byDate := map[string]*bucket{}
	for _, r := range reports {
		key := r.CreatedAt.Format("2006-01-02")
		b, ok := byDate[key]
		if !ok {
			b = &bucket{}
			byDate[key] = b
		}
		b.count++
		b.words += r.WordCount
		b.sources += len(r.Sources)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	t := Trends{
		ReportsOverTime: []DatePoint{},
		WordCountTrend:  []DatePoint{},
		SourcesTrend:    []DatePoint{},
	}
	for _, d := range dates {
		b := byDate[d]
		t.ReportsOverTime = append(t.ReportsOverTime, DatePoint{Date: d, Count: b.count})
		t.WordCountTrend = append(t.WordCountTrend, DatePoint{Date: d, Words: b.words})
		t.SourcesTrend = append(t.SourcesTrend, DatePoint{Date: d, Sources: b.sources})
	}
	return t
}

// GetTopicDistribution counts topic frequency with each topic's share of all
// reports, rounded to one decimal.
func GetTopicDistribution(reports []domain.Report, topN int) []TopicShare {
	counter := newCounter()
	for _, r := range reports {
		topic := r.Topic
		if topic == "" {
			topic = "Unknown"
		}
		counter.add(topic)
	}
	out := []TopicShare{}
	for _, e := range counter.mostCommon(topN) {
		pct := float64(e.count) / float64(len(reports)) * 100
		out = append(out, TopicShare{
			Topic:      e.key,
			Count:      e.count,
			Percentage: math.Round(pct*10) / 10,
		})
	}
	return out
}

// GetTopSources finds the most frequently cited site labels.
func GetTopSources(reports []domain.Report, topN int) []SourceCount {
	counter := newCounter()
	for _, r := range reports {
		for _, s := range r.Sources {
			label := s.Source
			if label == "" {
				label = "Unknown"
			}
			counter.add(label)
		}
	}
	out := []SourceCount{}
	for _, e := range counter.mostCommon(topN) {
		out = append(out, SourceCount{Source: e.key, Count: e.count})
	}
	return out
}
