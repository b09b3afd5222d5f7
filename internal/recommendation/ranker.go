// AngelaMos | 2026
// ranker.go

package recommendation

import (
	"sort"
	"strings"

	"github.com/carterperez-dev/templates/review-insights/internal/query"
	"github.com/carterperez-dev/templates/review-insights/internal/sentiment"
	"github.com/carterperez-dev/templates/review-insights/internal/tokenize"
)

const (
	DefaultRelevanceWeight = 50.0
	DefaultSentimentWeight = 0.5
	DefaultLimit           = 5

	neutralSentiment = 50.0
)

// Candidate is a product plus the text of every review that references it,
// assembled fresh for one ranking run.
type Candidate struct {
	ProductID   int64
	Name        string
	Category    string
	Description string
	Reviews     []string
}

type Ranked struct {
	Candidate Candidate
	// Sentiment is on a 0..100 scale; 50 is neutral.
	Sentiment float64
	// Relevance is the fraction of query keywords found, 0..1.
	Relevance float64
	Score     float64
}

type RankerConfig struct {
	RelevanceWeight float64
	SentimentWeight float64
	DefaultLimit    int
}

type Ranker struct {
	classifier *sentiment.Classifier
	analyzer   *query.Analyzer
	cfg        RankerConfig
}

func NewRanker(
	classifier *sentiment.Classifier,
	analyzer *query.Analyzer,
	cfg RankerConfig,
) *Ranker {
	if cfg.RelevanceWeight < 0 {
		cfg.RelevanceWeight = DefaultRelevanceWeight
	}
	if cfg.SentimentWeight < 0 {
		cfg.SentimentWeight = DefaultSentimentWeight
	}
	if cfg.RelevanceWeight == 0 && cfg.SentimentWeight == 0 {
		cfg.RelevanceWeight = DefaultRelevanceWeight
		cfg.SentimentWeight = DefaultSentimentWeight
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultLimit
	}

	return &Ranker{classifier: classifier, analyzer: analyzer, cfg: cfg}
}

// Rank scores every candidate against q and returns the best k, highest
// score first. Equal scores keep their input order. k <= 0 uses the
// configured default.
func (r *Ranker) Rank(candidates []Candidate, q string, k int) []Ranked {
	if k <= 0 {
		k = r.cfg.DefaultLimit
	}

	keywords := r.analyzer.Keywords(q)

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		sent := r.SentimentScore(c.Reviews)
		rel := Relevance(c, keywords)

		ranked = append(ranked, Ranked{
			Candidate: c,
			Sentiment: sent,
			Relevance: rel,
			Score:     rel*r.cfg.RelevanceWeight + sent*r.cfg.SentimentWeight,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// SentimentScore maps the mean polarity of reviews onto 0..100. A product
// without reviews is neutral.
func (r *Ranker) SentimentScore(reviews []string) float64 {
	if len(reviews) == 0 {
		return neutralSentiment
	}

	var pos, neg float64
	for _, text := range reviews {
		res := r.classifier.Classify(text)
		pos += res.PositiveScore
		neg += res.NegativeScore
	}

	n := float64(len(reviews))
	return (pos/n - neg/n + 100) / 2
}

// Relevance is the fraction of keywords that occur as a substring of the
// candidate's name, category, description or any review.
func Relevance(c Candidate, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	haystack := tokenize.Normalize(strings.Join(
		append([]string{c.Name, c.Category, c.Description}, c.Reviews...),
		"\n",
	))

	found := 0
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			found++
		}
	}

	return float64(found) / float64(len(keywords))
}
