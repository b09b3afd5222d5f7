// AngelaMos | 2026
// language.go

package subscription

import (
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
)

var DefaultLanguages = []string{"uk", "ru", "en"}

type Languages struct {
	allowed map[string]struct{}
	message string
}

func NewLanguages(codes []string) Languages {
	if len(codes) == 0 {
		codes = DefaultLanguages
	}

	l := Languages{allowed: make(map[string]struct{}, len(codes))}
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, dup := l.allowed[c]; !dup {
			names = append(names, "'"+c+"'")
		}
		l.allowed[c] = struct{}{}
	}
	l.message = "lang must be one of " + strings.Join(names, ", ")

	return l
}

// Normalize trims and lower-cases lang. An empty lang means no filter.
func (l Languages) Normalize(lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "", nil
	}
	if _, ok := l.allowed[lang]; !ok {
		return "", fmt.Errorf("%s: %w", l.message, core.ErrInvalidInput)
	}
	return lang, nil
}
