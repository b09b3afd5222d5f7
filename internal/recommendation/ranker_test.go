// AngelaMos | 2026
// ranker_test.go

package recommendation

import (
	"math"
	"testing"

	"github.com/carterperez-dev/templates/review-insights/internal/query"
	"github.com/carterperez-dev/templates/review-insights/internal/sentiment"
)

func newTestRanker(cfg RankerConfig) *Ranker {
	return NewRanker(
		sentiment.New(sentiment.Config{}),
		query.NewAnalyzer(query.Config{StripStopWords: true}),
		cfg,
	)
}

func TestRank_BackpackScenario(t *testing.T) {
	r := newTestRanker(RankerConfig{})

	candidates := []Candidate{
		{ProductID: 2, Name: "Kitchen Knife", Reviews: []string{"sharp and reliable"}},
		{ProductID: 1, Name: "Hiking Backpack", Reviews: []string{"very comfortable and durable"}},
	}

	got := r.Rank(candidates, "comfortable backpack", 0)

	if len(got) != 2 {
		t.Fatalf("len(Rank) = %d, want 2", len(got))
	}
	if got[0].Candidate.ProductID != 1 {
		t.Fatalf("first = product %d, want 1", got[0].Candidate.ProductID)
	}
	if got[0].Relevance != 1 {
		t.Errorf("backpack relevance = %v, want 1", got[0].Relevance)
	}
	// avg_pos 1, avg_neg 0 -> (1 - 0 + 100) / 2
	if !approx(got[0].Sentiment, 50.5) {
		t.Errorf("backpack sentiment = %v, want 50.5", got[0].Sentiment)
	}
	if !approx(got[0].Score, 50+50.5*0.5) {
		t.Errorf("backpack score = %v, want %v", got[0].Score, 50+50.5*0.5)
	}
}

func TestRank_NoReviewsIsNeutral(t *testing.T) {
	r := newTestRanker(RankerConfig{})

	got := r.Rank([]Candidate{{ProductID: 1, Name: "Lamp"}}, "lamp", 5)

	if !approx(got[0].Sentiment, 50) {
		t.Errorf("sentiment = %v, want 50", got[0].Sentiment)
	}
}

func TestRank_EmptyQueryRanksBySentiment(t *testing.T) {
	r := newTestRanker(RankerConfig{})

	candidates := []Candidate{
		{ProductID: 1, Name: "A", Reviews: []string{"terrible"}},
		{ProductID: 2, Name: "B", Reviews: []string{"excellent"}},
		{ProductID: 3, Name: "C"},
	}

	got := r.Rank(candidates, "   ", 5)

	want := []int64{2, 3, 1}
	for i, id := range want {
		if got[i].Candidate.ProductID != id {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
		if got[i].Relevance != 0 {
			t.Errorf("product %d relevance = %v, want 0", id, got[i].Relevance)
		}
	}
}

func TestRank_MonotoneInRelevance(t *testing.T) {
	r := newTestRanker(RankerConfig{})

	reviews := []string{"good"}
	candidates := []Candidate{
		{ProductID: 1, Name: "Red Shoes", Reviews: reviews},
		{ProductID: 2, Name: "Red Running Shoes", Reviews: reviews},
	}

	got := r.Rank(candidates, "red running shoes", 5)

	if got[0].Candidate.ProductID != 2 {
		t.Errorf("order = %v, want product 2 first", ids(got))
	}
	if got[0].Relevance <= got[1].Relevance {
		t.Errorf("relevance %v <= %v", got[0].Relevance, got[1].Relevance)
	}
}

func TestRank_StableTies(t *testing.T) {
	r := newTestRanker(RankerConfig{})

	candidates := []Candidate{
		{ProductID: 5, Name: "X"},
		{ProductID: 3, Name: "Y"},
		{ProductID: 9, Name: "Z"},
	}

	for range 5 {
		got := r.Rank(candidates, "", 5)
		if ids(got)[0] != 5 || ids(got)[1] != 3 || ids(got)[2] != 9 {
			t.Fatalf("order = %v, want input order [5 3 9]", ids(got))
		}
	}
}

func TestRank_TopK(t *testing.T) {
	r := newTestRanker(RankerConfig{DefaultLimit: 2})

	candidates := make([]Candidate, 0, 4)
	for i := int64(1); i <= 4; i++ {
		candidates = append(candidates, Candidate{ProductID: i})
	}

	if got := r.Rank(candidates, "", 0); len(got) != 2 {
		t.Errorf("k=0 len = %d, want configured default 2", len(got))
	}
	if got := r.Rank(candidates, "", 3); len(got) != 3 {
		t.Errorf("k=3 len = %d, want 3", len(got))
	}
	if got := r.Rank(candidates, "", 10); len(got) != 4 {
		t.Errorf("k=10 len = %d, want 4", len(got))
	}
	if got := r.Rank(nil, "anything", 3); len(got) != 0 {
		t.Errorf("no candidates len = %d, want 0", len(got))
	}
}

func TestRank_WeightsAreConfigurable(t *testing.T) {
	relevanceOnly := newTestRanker(RankerConfig{RelevanceWeight: 1, SentimentWeight: 0})

	candidates := []Candidate{
		{ProductID: 1, Name: "Tent", Reviews: []string{"excellent"}},
		{ProductID: 2, Name: "Lantern", Reviews: []string{"awful"}},
	}

	got := relevanceOnly.Rank(candidates, "lantern", 5)
	if got[0].Candidate.ProductID != 2 || !approx(got[0].Score, 1) {
		t.Errorf("relevance-only ranking = %+v", got)
	}
}

func TestRelevance(t *testing.T) {
	c := Candidate{
		Name:        "Рюкзак туристичний",
		Category:    "Outdoor",
		Description: "Waterproof",
		Reviews:     []string{"Дуже зручний"},
	}

	tests := []struct {
		keywords []string
		want     float64
	}{
		{nil, 0},
		{[]string{"рюкзак"}, 1},
		{[]string{"outdoor", "waterproof", "зручний", "tent"}, 0.75},
		{[]string{"tent"}, 0},
	}

	for _, tt := range tests {
		if got := Relevance(c, tt.keywords); !approx(got, tt.want) {
			t.Errorf("Relevance(%v) = %v, want %v", tt.keywords, got, tt.want)
		}
	}
}

func ids(ranked []Ranked) []int64 {
	out := make([]int64, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Candidate.ProductID)
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
