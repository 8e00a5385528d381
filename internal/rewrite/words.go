package rewrite

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"monogen/internal/common"
)

// isolated reports whether text[start:end] is not glued to identifier runes
// on either side. Identifier runes include '$' and non-ASCII letters, which
// regexp's \b treats as boundaries.
func isolated(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); common.IsIdentRune(r) {
			return false
		}
	}

	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); common.IsIdentRune(r) {
			return false
		}
	}

	return true
}

// wordMatches returns the offsets of every match of re whose group is an
// isolated identifier. Group 0 is the whole match. Patterns must match
// identifier runes only in that group, so a rejected match never hides an
// isolated one overlapping it.
func wordMatches(re *regexp.Regexp, text string, group int) [][]int {
	var out [][]int

	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if isolated(text, m[2*group], m[2*group+1]) {
			out = append(out, m)
		}
	}

	return out
}

// replaceWords replaces every isolated match of re with repl(match).
func replaceWords(text string, re *regexp.Regexp, repl func(string) string) string {
	matches := wordMatches(re, text, 0)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(repl(text[m[0]:m[1]]))
		last = m[1]
	}

	b.WriteString(text[last:])

	return b.String()
}

func literalPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(word))
}

// containsWord reports whether word occurs as an isolated identifier.
func containsWord(text, word string) bool {
	return len(wordMatches(literalPattern(word), text, 0)) > 0
}
