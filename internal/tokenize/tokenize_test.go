// AngelaMos | 2026
// tokenize_test.go

package tokenize

import (
	"errors"
	"reflect"
	"testing"
)

type failingTokenizer struct{}

func (failingTokenizer) Tokenize(string) ([]string, error) {
	return nil, errors.New("resource unavailable")
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "latin words lower-cased",
			text: "Very Comfortable, and DURABLE!",
			want: []string{"very", "comfortable", "and", "durable"},
		},
		{
			name: "ukrainian letters kept whole",
			text: "Їжак ґудзик єнот",
			want: []string{"їжак", "ґудзик", "єнот"},
		},
		{
			name: "digits and punctuation dropped",
			text: "top-5 рюкзак 2024",
			want: []string{"top", "рюкзак"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestChain_FallsBackWhenPrimaryFails(t *testing.T) {
	chain := Chain{Primary: failingTokenizer{}, Fallback: Regex{}}

	got := chain.Words("Зручний Backpack")
	want := []string{"зручний", "backpack"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestChain_NilTokenizersUseRegex(t *testing.T) {
	got := Chain{}.Words("good bad")
	want := []string{"good", "bad"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestUnicode_RejectsInvalidUTF8(t *testing.T) {
	_, err := Unicode{}.Tokenize("ok \xff broken")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Tokenize() error = %v, want ErrInvalidUTF8", err)
	}

	got := Words("ok \xff broken")
	want := []string{"ok", "broken"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestUnicode_ComposesCombiningMarks(t *testing.T) {
	// "й" written as "и" + U+0306 must stay one token.
	got := Words("мо\u0438\u0306 рюкзак")
	want := []string{"мо\u0439", "рюкзак"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Hiking BACKPACK"); got != "hiking backpack" {
		t.Errorf("Normalize() = %q, want %q", got, "hiking backpack")
	}
}
