// AngelaMos | 2026
// classifier_test.go

package sentiment

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/carterperez-dev/templates/review-insights/internal/tokenize"
)

func TestClassify(t *testing.T) {
	c := New(Config{})

	tests := []struct {
		name      string
		text      string
		wantLabel Label
		wantPos   float64
		wantNeg   float64
		checkPos  bool
		checkNeg  bool
	}{
		{
			name:      "empty text is neutral with zero scores",
			text:      "",
			wantLabel: Neutral,
			wantPos:   0,
			wantNeg:   0,
			checkPos:  true,
			checkNeg:  true,
		},
		{
			name:      "english positive review",
			text:      "Very comfortable and durable",
			wantLabel: Positive,
			wantPos:   1,
			checkPos:  true,
		},
		{
			name:      "russian positive review",
			text:      "Очень удобный и качественный рюкзак",
			wantLabel: Positive,
			wantPos:   1,
			checkPos:  true,
		},
		{
			name:      "ukrainian negative review",
			text:      "Жахливий і повільний сервіс",
			wantLabel: Negative,
			wantNeg:   1,
			checkNeg:  true,
		},
		{
			name:      "misspelled word still matches",
			text:      "comfortabel",
			wantLabel: Positive,
			wantPos:   0.82,
			checkPos:  true,
		},
		{
			name:      "equal polarity is neutral",
			text:      "good but slow and terrible",
			wantLabel: Neutral,
			wantPos:   1,
			wantNeg:   1,
			checkPos:  true,
			checkNeg:  true,
		},
		{
			name:      "no lexicon words",
			text:      "the package arrived on tuesday",
			wantLabel: Neutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)

			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q (result %+v)", got.Label, tt.wantLabel, got)
			}
			if tt.checkPos && !approxEqual(got.PositiveScore, tt.wantPos) {
				t.Errorf("PositiveScore = %v, want %v", got.PositiveScore, tt.wantPos)
			}
			if tt.checkNeg && !approxEqual(got.NegativeScore, tt.wantNeg) {
				t.Errorf("NegativeScore = %v, want %v", got.NegativeScore, tt.wantNeg)
			}
		})
	}
}

func TestClassify_EveryPositiveWordAlone(t *testing.T) {
	c := New(Config{})

	for _, word := range DefaultPositive {
		got := c.Classify(word)
		if got.Label != Positive || got.PositiveScore != 1 {
			t.Errorf("Classify(%q) = %+v, want positive with score 1", word, got)
		}
	}
}

func TestClassify_EveryNegativeWordAlone(t *testing.T) {
	c := New(Config{})

	for _, word := range DefaultNegative {
		got := c.Classify(word)
		if got.Label != Negative || got.NegativeScore != 1 {
			t.Errorf("Classify(%q) = %+v, want negative with score 1", word, got)
		}
	}
}

func TestClassify_PositiveWordsScoreNoNegative(t *testing.T) {
	c := New(Config{})

	words := []string{
		"comfortable", "reliable", "durable", "good",
		"удобный", "прочный", "зручний", "якісний", "міцний",
	}
	for _, word := range words {
		got := c.Classify(word)
		if got.NegativeScore != 0 {
			t.Errorf("Classify(%q).NegativeScore = %v, want 0", word, got.NegativeScore)
		}
	}

	got := c.Classify("very comfortable and durable")
	if got.PositiveScore != 1 || got.NegativeScore != 0 {
		t.Errorf("Classify() = %+v, want positive 1 and negative 0", got)
	}
}

func TestClassify_ThresholdsAreConfigurable(t *testing.T) {
	strict := New(Config{MatchThreshold: 1})

	got := strict.Classify("comfortabel")
	if got.Label != Neutral || got.PositiveScore != 0 {
		t.Errorf("strict Classify() = %+v, want neutral with zero positive score", got)
	}

	demanding := New(Config{DecisionThreshold: 0.9})
	got = demanding.Classify("comfortabel")
	if got.Label != Neutral {
		t.Errorf("demanding Classify() label = %q, want neutral", got.Label)
	}
	if !approxEqual(got.PositiveScore, 0.82) {
		t.Errorf("demanding Classify() positive = %v, want 0.82", got.PositiveScore)
	}
}

func TestClassify_ScoresRoundedToTwoDecimals(t *testing.T) {
	c := New(Config{})

	got := c.Classify("comfortabel good")
	// (0.8181... + 1) / 2 = 0.909... -> 0.91
	if !approxEqual(got.PositiveScore, 0.91) {
		t.Errorf("PositiveScore = %v, want 0.91", got.PositiveScore)
	}
}

func TestClassify_CustomLexicons(t *testing.T) {
	c := New(Config{
		Positive: []string{"Shiny"},
		Negative: []string{"rusty"},
	})

	if got := c.Classify("shiny"); got.Label != Positive {
		t.Errorf("Classify(shiny) = %+v, want positive", got)
	}
	if got := c.Classify("good"); got.Label != Neutral {
		t.Errorf("Classify(good) = %+v, want neutral with custom lexicon", got)
	}
}

type brokenTokenizer struct{}

func (brokenTokenizer) Tokenize(string) ([]string, error) {
	return nil, errors.New("punkt data missing")
}

func TestClassify_TokenizerFallback(t *testing.T) {
	c := New(Config{
		Tokenizer: tokenize.Chain{Primary: brokenTokenizer{}, Fallback: tokenize.Regex{}},
	})

	got := c.Classify("Зручний і якісний")
	if got.Label != Positive {
		t.Errorf("Classify() = %+v, want positive via regex fallback", got)
	}
}

func TestClassify_ConcurrentUse(t *testing.T) {
	c := New(Config{})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Classify("excellent quality"); got.Label != Positive {
				t.Errorf("Classify() = %+v, want positive", got)
			}
		}()
	}
	wg.Wait()
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"good", "good", 1},
		{"kitten", "sitting", 1 - 3.0/7.0},
		{"abc", "", 0},
		{"зручний", "зручна", 1 - 2.0/7.0},
	}

	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); !approxEqual(got, tt.want) {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLabelValid(t *testing.T) {
	for _, l := range []Label{Positive, Negative, Neutral} {
		if !l.Valid() {
			t.Errorf("%q.Valid() = false, want true", l)
		}
	}
	if Label("mixed").Valid() {
		t.Error(`"mixed".Valid() = true, want false`)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
