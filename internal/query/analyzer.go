// AngelaMos | 2026
// analyzer.go

// Package query turns a free-text product query into normalized keywords.
package query

import (
	"github.com/carterperez-dev/templates/review-insights/internal/tokenize"
)

type Config struct {
	StripStopWords bool
	// StopWords replaces the built-in list when non-nil.
	StopWords []string
	Tokenizer tokenize.Chain
}

type Analyzer struct {
	tokenizer tokenize.Chain
	stopWords map[string]struct{}
}

func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.Tokenizer.Primary == nil && cfg.Tokenizer.Fallback == nil {
		cfg.Tokenizer = tokenize.Default()
	}

	a := &Analyzer{
		tokenizer: cfg.Tokenizer,
		stopWords: map[string]struct{}{},
	}

	if cfg.StripStopWords {
		words := cfg.StopWords
		if words == nil {
			words = defaultStopWords
		}
		for _, w := range words {
			a.stopWords[tokenize.Normalize(w)] = struct{}{}
		}
	}

	return a
}

// Keywords returns the distinct keywords of q in first-occurrence order.
func (a *Analyzer) Keywords(q string) []string {
	tokens := a.tokenizer.Words(q)
	seen := make(map[string]struct{}, len(tokens))
	keywords := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if _, stop := a.stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}

	return keywords
}

func (a *Analyzer) KeywordSet(q string) map[string]struct{} {
	keywords := a.Keywords(q)
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}
	return set
}
