// AngelaMos | 2026
// analyzer_test.go

package query

import (
	"reflect"
	"testing"
)

func TestAnalyzer_Keywords(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		q    string
		want []string
	}{
		{
			name: "lower-cases and deduplicates",
			cfg:  Config{},
			q:    "Comfortable BACKPACK comfortable",
			want: []string{"comfortable", "backpack"},
		},
		{
			name: "keeps stop-words when stripping disabled",
			cfg:  Config{},
			q:    "a warm jacket",
			want: []string{"a", "warm", "jacket"},
		},
		{
			name: "strips default stop-words",
			cfg:  Config{StripStopWords: true},
			q:    "I want a warm jacket for the winter",
			want: []string{"warm", "jacket", "winter"},
		},
		{
			name: "strips russian and ukrainian stop-words",
			cfg:  Config{StripStopWords: true},
			q:    "хочу зимняя куртка і теплий шарф",
			want: []string{"зимняя", "куртка", "теплий", "шарф"},
		},
		{
			name: "custom stop-word list",
			cfg:  Config{StripStopWords: true, StopWords: []string{"Tactical"}},
			q:    "tactical boots",
			want: []string{"boots"},
		},
		{
			name: "punctuation only yields nothing",
			cfg:  Config{StripStopWords: true},
			q:    "?! 42 ...",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAnalyzer(tt.cfg).Keywords(tt.q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords(%q) = %#v, want %#v", tt.q, got, tt.want)
			}
		})
	}
}

func TestAnalyzer_KeywordSet(t *testing.T) {
	set := NewAnalyzer(Config{}).KeywordSet("red red shoes")

	if len(set) != 2 {
		t.Fatalf("len(KeywordSet) = %d, want 2", len(set))
	}
	for _, k := range []string{"red", "shoes"} {
		if _, ok := set[k]; !ok {
			t.Errorf("KeywordSet missing %q", k)
		}
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	a := NewAnalyzer(Config{StripStopWords: true})
	first := a.Keywords("зручний рюкзак для походів")

	for range 10 {
		if got := a.Keywords("зручний рюкзак для походів"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Keywords() = %v, want stable %v", got, first)
		}
	}
}
