package rewrite

import (
	"regexp"
	"sort"
	"strings"

	"monogen/internal/bind"
)

// SubstituteParams replaces every whole-word occurrence of each bound type
// parameter with its concrete type in a single pass, so text inserted for
// one parameter is never matched again by another. T1 does not match
// inside T10, ListT1, T1$x or T1ñ.
func SubstituteParams(text string, bindings []bind.Binding) string {
	if len(bindings) == 0 {
		return text
	}

	repl := make(map[string]string, len(bindings))
	alts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		if _, dup := repl[b.Param]; dup {
			continue
		}

		repl[b.Param] = b.Simple
		alts = append(alts, regexp.QuoteMeta(b.Param))
	}

	// Longest first so that the alternation itself never prefers a prefix.
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })

	re := regexp.MustCompile(strings.Join(alts, "|"))

	return replaceWords(text, re, func(m string) string {
		return repl[m]
	})
}

// RenameType replaces every whole-word occurrence of from with to.
func RenameType(text, from, to string) string {
	if from == "" || from == to {
		return text
	}

	return replaceWords(text, literalPattern(from), func(string) string { return to })
}
