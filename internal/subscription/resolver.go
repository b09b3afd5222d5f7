// AngelaMos | 2026
// resolver.go

package subscription

import (
	"strings"

	"github.com/carterperez-dev/templates/review-insights/internal/tokenize"
)

const (
	CodeFree     = "free"
	CodeBasic    = "basic"
	CodeAdvanced = "advanced"
	CodePremium  = "premium"
)

var defaultSynonyms = map[string]string{
	"free":         CodeFree,
	"безкоштовна":  CodeFree,
	"безкоштовний": CodeFree,
	"бесплатная":   CodeFree,
	"бесплатный":   CodeFree,

	"basic":   CodeBasic,
	"базовий": CodeBasic,
	"базовый": CodeBasic,

	"advanced":    CodeAdvanced,
	"просунутий":  CodeAdvanced,
	"продвинутый": CodeAdvanced,

	"premium": CodePremium,
	"преміум": CodePremium,
	"премиум": CodePremium,
}

func IsCanonical(code string) bool {
	switch code {
	case CodeFree, CodeBasic, CodeAdvanced, CodePremium:
		return true
	}
	return false
}

// NormalizeCode trims and lower-cases s and joins its words with dashes.
func NormalizeCode(s string) string {
	return strings.Join(strings.Fields(tokenize.Normalize(s)), "-")
}

// Resolver maps localized plan names onto canonical codes. It is read-only
// after construction.
type Resolver struct {
	synonyms map[string]string
}

// NewResolver builds a Resolver over the built-in synonyms plus extra, whose
// values must be canonical codes.
func NewResolver(extra map[string]string) *Resolver {
	synonyms := make(map[string]string, len(defaultSynonyms)+len(extra))
	for k, v := range defaultSynonyms {
		synonyms[NormalizeCode(k)] = v
	}
	for k, v := range extra {
		if IsCanonical(v) {
			synonyms[NormalizeCode(k)] = v
		}
	}
	return &Resolver{synonyms: synonyms}
}

// Resolve returns the canonical code for nameOrCode. When no synonym
// matches it returns the normalized input and false.
func (r *Resolver) Resolve(nameOrCode string) (string, bool) {
	code := NormalizeCode(nameOrCode)
	if code == "" {
		return "", false
	}
	if canonical, ok := r.synonyms[code]; ok {
		return canonical, true
	}
	return code, false
}
