// AngelaMos | 2026
// stopwords.go

package query

var defaultStopWords = []string{
	// en
	"a", "an", "the", "and", "or", "but", "of", "to", "in", "on", "for",
	"with", "by", "at", "from", "is", "are", "was", "be", "it", "this",
	"that", "i", "me", "my", "we", "you", "your", "want", "need", "some",
	"something", "please", "show", "find",
	// ru
	"и", "в", "во", "на", "с", "со", "для", "по", "из", "к", "о", "об",
	"а", "но", "или", "не", "что", "это", "как", "я", "мне", "хочу",
	"нужен", "нужна", "нужно", "какой", "какая",
	// uk
	"і", "й", "та", "у", "з", "із", "до", "від", "або", "що", "це",
	"як", "мені", "хочу", "потрібен", "потрібна", "потрібно", "який",
	"яка",
}

// DefaultStopWords returns a copy of the built-in en/ru/uk stop-word list.
func DefaultStopWords() []string {
	out := make([]string, len(defaultStopWords))
	copy(out, defaultStopWords)
	return out
}
