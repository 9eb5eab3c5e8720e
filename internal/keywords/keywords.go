// Package keywords extracts and categorizes important terms from report text
// using regex heuristics: capitalized phrases become entities, acronyms and
// hyphenated words become technical terms, and the remaining frequent words
// become generic keywords. Everything is a pure function over text.
package keywords

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	entityRe     = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	acronymRe    = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	hyphenatedRe = regexp.MustCompile(`\b\w+(?:-\w+)+\b`)
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
)

// Extraction holds categorized keywords.
type Extraction struct {
	Keywords  []string `json:"keywords"`
	Entities  []string `json:"entities"`
	Technical []string `json:"technical"`
}

// HighlightData pairs an extraction with a lowercased term-to-category map
// for client-side highlighting.
type HighlightData struct {
	Extracted    Extraction        `json:"extracted"`
	HighlightMap map[string]string `json:"highlight_map"`
}

// Extract pulls categorized keywords out of text, returning at most topN
// generic keywords and 10 each of entities and technical terms.
func Extract(text string, topN int) Extraction {
	if topN <= 0 {
		topN = 20
	}
	words := tokenize(text)
	entities := extractEntities(text)
	technical := extractTechnicalTerms(text)
	keywords := extractImportantWords(words, topN)

	// Remove entity and technical words from generic keywords to avoid
	// duplication across categories.
	claimed := map[string]struct{}{}
	for _, e := range entities {
		for _, w := range strings.Fields(strings.ToLower(e)) {
			claimed[w] = struct{}{}
		}
	}
	for _, t := range technical {
		for _, w := range strings.Fields(strings.ToLower(t)) {
			claimed[w] = struct{}{}
		}
	}
	filtered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if _, ok := claimed[strings.ToLower(k)]; ok {
			continue
		}
		filtered = append(filtered, k)
	}

	return Extraction{
		Keywords:  capped(filtered, topN),
		Entities:  capped(entities, 10),
		Technical: capped(technical, 10),
	}
}

// Highlight returns the extraction plus a flat map of every extracted term
// (lowercased) to its category.
func Highlight(text string) HighlightData {
	extracted := Extract(text, 20)
	m := map[string]string{}
	for _, k := range extracted.Keywords {
		m[strings.ToLower(k)] = "keyword"
	}
	for _, e := range extracted.Entities {
		m[strings.ToLower(e)] = "entity"
	}
	for _, t := range extracted.Technical {
		m[strings.ToLower(t)] = "technical"
	}
	return HighlightData{Extracted: extracted, HighlightMap: m}
}

func tokenize(text string) []string {
	text = nonWordRe.ReplaceAllString(text, " ")
	var words []string
	for _, w := range strings.Fields(text) {
		if len(w) <= 2 {
			continue
		}
		if isStopWord(strings.ToLower(w)) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// extractEntities finds capitalized words and phrases that occur at least
// twice, ordered by frequency.
func extractEntities(text string) []string {
	counter := newCounter()
	for _, m := range entityRe.FindAllString(text, -1) {
		counter.add(m)
	}
	var out []string
	for _, e := range counter.mostCommon(0) {
		if e.count < 2 || len(e.key) <= 2 {
			continue
		}
		if isStopWord(strings.ToLower(e.key)) {
			continue
		}
		out = append(out, e.key)
	}
	return out
}

// extractTechnicalTerms finds acronyms and hyphenated terms that occur at
// least twice, ordered by frequency.
func extractTechnicalTerms(text string) []string {
	counter := newCounter()
	for _, m := range acronymRe.FindAllString(text, -1) {
		counter.add(m)
	}
	for _, m := range hyphenatedRe.FindAllString(text, -1) {
		counter.add(m)
	}
	var out []string
	for _, e := range counter.mostCommon(0) {
		if e.count < 2 || len(e.key) <= 1 {
			continue
		}
		out = append(out, e.key)
	}
	return out
}

// extractImportantWords ranks remaining words by frequency, keeping those
// longer than 3 characters that occur at least twice, first letter upper-cased
// for display.
func extractImportantWords(words []string, topN int) []string {
	counter := newCounter()
	for _, w := range words {
		counter.add(strings.ToLower(w))
	}
	var out []string
	seen := map[string]struct{}{}
	for _, e := range counter.mostCommon(topN * 2) {
		if len(e.key) <= 3 || e.count < 2 {
			continue
		}
		if _, ok := seen[e.key]; ok {
			continue
		}
		seen[e.key] = struct{}{}
		out = append(out, capitalize(e.key))
		if len(out) >= topN {
			break
		}
	}
	return out
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func capped(s []string, n int) []string {
	if s == nil {
		return []string{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
