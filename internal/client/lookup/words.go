package lookup

import (
	"regexp"
	"slices"
	"strings"
)

var wordPattern = regexp.MustCompile(`^[a-zA-Z\-']+$`)

var (
	suffixes = []string{"ing", "ed", "er", "est", "ly", "s"}
	prefixes = []string{"un", "re", "pre", "dis"}
)

// IsValidWord: только латиница, дефис и апостроф, от 1 до 100 символов
func IsValidWord(word string) bool {
	w := strings.TrimSpace(word)
	if len(w) == 0 || len(w) > 100 {
		return false
	}
	return wordPattern.MatchString(w)
}

// Suggestions предлагает до трех базовых форм слова,
// отрезая типичные суффиксы и приставки
func Suggestions(word string) []string {
	w := Normalize(word)
	out := make([]string, 0, 3)

	add := func(base string) {
		if len(base) > 2 && !slices.Contains(out, base) {
			out = append(out, base)
		}
	}

	for _, suffix := range suffixes {
		if base, ok := strings.CutSuffix(w, suffix); ok {
			add(base)
		}
	}
	for _, prefix := range prefixes {
		if base, ok := strings.CutPrefix(w, prefix); ok {
			add(base)
		}
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
