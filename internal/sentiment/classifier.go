// AngelaMos | 2026
// classifier.go

// Package sentiment labels review text as positive, negative or neutral by
// fuzzy matching its words against fixed polarity lexicons.
//
// A word counts toward a polarity when its best Levenshtein similarity to
// that polarity's lexicon reaches the match threshold. Each polarity score is
// the mean similarity of its counting words, rounded to two decimals. The
// label goes to the strictly larger score, provided it reaches the decision
// threshold; everything else is neutral.
//
// A Classifier holds only read-only data after construction and is safe for
// concurrent use.
package sentiment

import (
	"math"

	"github.com/carterperez-dev/templates/review-insights/internal/tokenize"
)

const (
	DefaultMatchThreshold    = 0.6
	DefaultDecisionThreshold = 0.6
)

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

func (l Label) Valid() bool {
	return l == Positive || l == Negative || l == Neutral
}

type Result struct {
	Label         Label   `json:"sentiment"`
	PositiveScore float64 `json:"positive_score"`
	NegativeScore float64 `json:"negative_score"`
}

type Config struct {
	MatchThreshold    float64
	DecisionThreshold float64
	Positive          []string
	Negative          []string
	Tokenizer         tokenize.Chain
	Lemmatizer        Lemmatizer
}

type Classifier struct {
	matchThreshold    float64
	decisionThreshold float64
	positive          []string
	negative          []string
	tokenizer         tokenize.Chain
	lemmatizer        Lemmatizer
}

// New builds a Classifier, filling zero fields with defaults. Lexicon
// entries are normalized and lemmatized the same way as input words.
func New(cfg Config) *Classifier {
	if cfg.MatchThreshold <= 0 {
		cfg.MatchThreshold = DefaultMatchThreshold
	}
	if cfg.DecisionThreshold <= 0 {
		cfg.DecisionThreshold = DefaultDecisionThreshold
	}
	if cfg.Positive == nil {
		cfg.Positive = DefaultPositive
	}
	if cfg.Negative == nil {
		cfg.Negative = DefaultNegative
	}
	if cfg.Tokenizer.Primary == nil && cfg.Tokenizer.Fallback == nil {
		cfg.Tokenizer = tokenize.Default()
	}
	if cfg.Lemmatizer == nil {
		cfg.Lemmatizer = IdentityLemmatizer{}
	}

	return &Classifier{
		matchThreshold:    cfg.MatchThreshold,
		decisionThreshold: cfg.DecisionThreshold,
		positive:          prepareLexicon(cfg.Positive, cfg.Lemmatizer),
		negative:          prepareLexicon(cfg.Negative, cfg.Lemmatizer),
		tokenizer:         cfg.Tokenizer,
		lemmatizer:        cfg.Lemmatizer,
	}
}

func prepareLexicon(words []string, lem Lemmatizer) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = tokenize.Normalize(w)
		if w == "" {
			continue
		}
		out = append(out, lem.Lemma(w))
	}
	return out
}

func (c *Classifier) Classify(text string) Result {
	var posSum, negSum float64
	var posCount, negCount int

	for _, token := range c.tokenizer.Words(text) {
		word := c.lemmatizer.Lemma(token)

		if s := bestSimilarity(word, c.positive); s >= c.matchThreshold {
			posSum += s
			posCount++
		}
		if s := bestSimilarity(word, c.negative); s >= c.matchThreshold {
			negSum += s
			negCount++
		}
	}

	res := Result{
		PositiveScore: mean(posSum, posCount),
		NegativeScore: mean(negSum, negCount),
	}
	res.Label = c.decide(res.PositiveScore, res.NegativeScore)

	return res
}

func (c *Classifier) decide(pos, neg float64) Label {
	switch {
	case pos > neg && pos >= c.decisionThreshold:
		return Positive
	case neg > pos && neg >= c.decisionThreshold:
		return Negative
	default:
		return Neutral
	}
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return Round2(sum / float64(n))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
