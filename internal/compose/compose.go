package compose

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inkwellhq/researchd/internal/domain"
	"github.com/inkwellhq/researchd/internal/research"
)

// Journalist renders research data into a fixed-structure article: lede,
// Background and Context, Key Findings, Expert Analysis, Broader
// Implications, Conclusion, plus a summary and a numbered citation list.
// Output is deterministic given identical input.
type Journalist struct {
	titleCaser cases.Caser
}

// NewJournalist creates a Journalist.
func NewJournalist() *Journalist {
	return &Journalist{titleCaser: cases.Title(language.English)}
}

// Draft is a composed report before persistence.
type Draft struct {
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Summary   string          `json:"summary"`
	WordCount int             `json:"word_count"`
	Sources   []domain.Source `json:"sources"`
	Sections  Sections        `json:"sections"`
}

// Sections exposes the article parts individually.
type Sections struct {
	Lede       string `json:"lede"`
	Body       string `json:"body"`
	Conclusion string `json:"conclusion"`
}

// Citation is the positionally-numbered projection of a source.
type Citation struct {
	Number      int     `json:"number"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	Credibility float64 `json:"credibility"`
}

// Write composes the article from research data.
func (j *Journalist) Write(data *research.Data) *Draft {
	topic := data.Topic
	sources := data.Sources
	facts := data.KeyFacts

	title := j.generateTitle(topic, sources)
	lede := writeLede(topic, facts)
	body := writeBody(topic, sources, facts)
	conclusion := writeConclusion(topic, sources)

	content := lede + "\n\n" + body + "\n\n" + conclusion
	summary := generateSummary(topic, facts)

	return &Draft{
		Title:     title,
		Content:   content,
		Summary:   summary,
		WordCount: len(strings.Fields(content)),
		Sources:   sources,
		Sections: Sections{
			Lede:       lede,
			Body:       body,
			Conclusion: conclusion,
		},
	}
}

// Citations produces the numbered citation list for a source list.
func Citations(sources []domain.Source) []Citation {
	out := make([]Citation, 0, len(sources))
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = "Untitled"
		}
		label := s.Source
		if label == "" {
			label = "Unknown"
		}
		out = append(out, Citation{
			Number:      i + 1,
			Title:       title,
			URL:         s.URL,
			Source:      label,
			Credibility: s.Credibility,
		})
	}
	return out
}

func (j *Journalist) generateTitle(topic string, sources []domain.Source) string {
	title := j.titleCaser.String(topic)
	if len(sources) > 0 {
		if srcTitle := sources[0].Title; strings.Contains(srcTitle, ":") {
			subtitle := strings.TrimSpace(strings.SplitN(srcTitle, ":", 2)[0])
			return title + ": " + subtitle
		}
	}
	return "An In-Depth Look at " + title
}

func writeLede(topic string, facts []string) string {
	opening := fmt.Sprintf("Recent developments in %s have drawn significant attention from experts and observers alike.", topic)
	if len(facts) > 0 {
		opening = facts[0]
	}
	context := fmt.Sprintf("This comprehensive investigation examines the key aspects of %s, drawing from multiple authoritative sources and expert analyses.", topic)
	return opening + "\n\n" + context
}

func writeBody(topic string, sources []domain.Source, facts []string) string {
	var paragraphs []string

	paragraphs = append(paragraphs, "## Background and Context\n")
	for i, s := range sources {
		if i >= 3 {
			break
		}
		if s.Content == "" {
			continue
		}
		sentences := strings.SplitN(s.Content, ".", 5)
		if len(sentences) > 4 {
			sentences = sentences[:4]
		}
		paragraphs = append(paragraphs, strings.Join(sentences, ".")+".")
		break
	}

	paragraphs = append(paragraphs, "\n\n## Key Findings\n")
	for i, fact := range facts {
		if i >= 5 {
			break
		}
		paragraphs = append(paragraphs, fmt.Sprintf("**%d.** %s\n", i+1, fact))
	}

	paragraphs = append(paragraphs, "\n## Expert Analysis\n")
	expert := expertSources(sources)
	if len(expert) > 0 {
		for i, s := range expert {
			if i >= 2 {
				break
			}
			if s.Snippet != "" {
				paragraphs = append(paragraphs, s.Snippet+"\n")
			}
		}
	} else {
		for i := 1; i < len(sources) && i < 3; i++ {
			if sources[i].Snippet != "" {
				paragraphs = append(paragraphs, sources[i].Snippet+"\n")
			}
		}
	}

	paragraphs = append(paragraphs, "\n## Broader Implications\n")
	implications := fmt.Sprintf("The developments in %s have far-reaching implications across multiple sectors. ", topic) +
		"Stakeholders are closely monitoring the situation as it continues to evolve. " +
		"Understanding these dynamics is crucial for informed decision-making and strategic planning."
	paragraphs = append(paragraphs, implications)

	return strings.Join(paragraphs, "\n")
}

func expertSources(sources []domain.Source) []domain.Source {
	markers := []string{"edu", "gov", "expert", "research"}
	var out []domain.Source
	for _, s := range sources {
		for _, m := range markers {
			if strings.Contains(s.Source, m) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func writeConclusion(topic string, sources []domain.Source) string {
	return "## Conclusion\n\n" +
		fmt.Sprintf("As this investigation reveals, %s represents a complex and multifaceted issue that warrants continued attention and analysis. ", topic) +
		fmt.Sprintf("The evidence gathered from %d authoritative sources paints a comprehensive picture of the current landscape. ", len(sources)) +
		"\n\nWhile challenges remain, the path forward requires careful consideration of all stakeholder perspectives and evidence-based decision making. " +
		"As the situation continues to develop, ongoing research and monitoring will be essential to understanding the full scope and impact."
}

func generateSummary(topic string, facts []string) string {
	summary := fmt.Sprintf("This investigative report examines %s through comprehensive research and analysis. ", topic)
	if len(facts) > 0 {
		lead := facts[0]
		if len(lead) > 200 {
			lead = lead[:200]
		}
		summary += fmt.Sprintf("Key findings include: %s... ", lead)
	}
	summary += "The report synthesizes information from multiple authoritative sources to provide a balanced and thorough perspective."
	return summary
}
