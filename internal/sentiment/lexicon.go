// AngelaMos | 2026
// lexicon.go

package sentiment

// DefaultPositive and DefaultNegative cover Russian, Ukrainian and English
// review vocabulary. They are copied into each Classifier at construction,
// so callers may extend their own slices freely.
//
// No entry is a prefixed antonym of an entry in the other list: at the
// default match threshold "reliable" would also score 0.8 against
// "unreliable". Multi-word phrases are absent since Classify matches single
// words.
var (
	DefaultPositive = []string{
		// ru
		"качественный", "удобный", "красивый", "отличный", "классный",
		"хороший", "нравится", "прочный",
		// uk
		"чудовий", "зручний", "стильний", "класний", "відмінний",
		"гарний", "якісний", "міцний",
		// en
		"good", "great", "excellent", "comfortable", "durable", "reliable",
		"beautiful", "stylish", "perfect", "quality", "love", "awesome",
	}

	DefaultNegative = []string{
		// ru
		"плохой", "плохая", "медленный", "разочарован", "ненадежный",
		"ужасный", "тусклый",
		// uk
		"поганий", "повільний", "розчарований", "ненадійний", "жахливий",
		"тьмяний",
		// en
		"bad", "poor", "slow", "disappointed", "terrible", "awful",
		"broken", "flimsy", "useless", "horrible",
	}
)
