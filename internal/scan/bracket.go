package scan

import (
	"strings"

	"monogen/internal/diagnostic"
)

// Pair describes one delimiter pair.
type Pair struct {
	Open  byte
	Close byte
	// SkipLiterals ignores delimiters inside "..." and '...' literals,
	// """...""" text blocks and // or /* */ comments, honoring backslash
	// escapes in literals.
	SkipLiterals bool
}

var (
	// Angle matches type-parameter clauses such as <K, List<V>>.
	Angle = Pair{Open: '<', Close: '>'}
	// Paren matches annotation argument lists, skipping literals and comments.
	Paren = Pair{Open: '(', Close: ')', SkipLiterals: true}
)

// MatchClose returns the index of the delimiter that closes the one at
// openIdx. The byte at openIdx must be p.Open.
func MatchClose(text string, openIdx int, p Pair) (int, error) {
	if openIdx < 0 || openIdx >= len(text) || text[openIdx] != p.Open {
		return -1, diagnostic.Errorf(diagnostic.KindUnbalancedDelimiter, string(p.Open),
			"no %q at offset %d", p.Open, openIdx)
	}

	depth := 0

	for i := openIdx; i < len(text); i++ {
		c := text[i]

		switch {
		case p.SkipLiterals && (c == '"' || c == '\'' || c == '/'):
			end, ok := skipLiteral(text, i)
			if !ok {
				return -1, diagnostic.Errorf(diagnostic.KindUnbalancedDelimiter, string(c),
					"unterminated literal starting at offset %d", i)
			}

			i = end
		case c == p.Open:
			depth++
		case c == p.Close:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return -1, diagnostic.Errorf(diagnostic.KindUnbalancedDelimiter, string(p.Open),
		"no matching %q for %q at offset %d", p.Close, p.Open, openIdx)
}

// skipLiteral returns the index of the last byte of the literal or comment
// starting at start, or start itself when none starts there. ok is false
// when the text ends inside it.
func skipLiteral(text string, start int) (end int, ok bool) {
	rest := text[start:]

	switch {
	case strings.HasPrefix(rest, `"""`):
		return skipTextBlock(text, start)
	case rest[0] == '"' || rest[0] == '\'':
		return skipQuoted(text, start)
	case strings.HasPrefix(rest, "//"):
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			return start + i, true
		}

		return len(text) - 1, true
	case strings.HasPrefix(rest, "/*"):
		if i := strings.Index(rest[2:], "*/"); i >= 0 {
			return start + 2 + i + 1, true
		}

		return -1, false
	default:
		return start, true
	}
}

// skipQuoted returns the index of the quote closing the literal opened at
// start.
func skipQuoted(text string, start int) (int, bool) {
	q := text[start]

	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case q:
			return i, true
		}
	}

	return -1, false
}

// skipTextBlock returns the index of the last quote of the """ closing the
// text block opened at start.
func skipTextBlock(text string, start int) (int, bool) {
	for i := start + 3; i < len(text); i++ {
		switch {
		case text[i] == '\\':
			i++
		case strings.HasPrefix(text[i:], `"""`):
			return i + 2, true
		}
	}

	return -1, false
}

// SplitTopLevel splits the contents of a clause on sep, ignoring separators
// nested inside p. The input excludes the enclosing delimiters.
func SplitTopLevel(inner string, sep byte, p Pair) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case p.Open:
			depth++
		case p.Close:
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, inner[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, inner[start:])
}
