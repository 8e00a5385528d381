package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monogen/internal/diagnostic"
)

func TestMatchClose_Angle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // text[open:close+1]
	}{
		{"simple", "class A<T> {", "<T>"},
		{"bounded", "class A<T extends Number> {", "<T extends Number>"},
		{"nested", "class A<K, V extends List<K>> {", "<K, V extends List<K>>"},
		{"deep", "A<Map<K, List<Set<V>>>> x", "<Map<K, List<Set<V>>>>"},
		{"multiline", "A<T\n  extends\n  Number>   {", "<T\n  extends\n  Number>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open := strings.IndexByte(tt.text, '<')
			closeIdx, err := MatchClose(tt.text, open, Angle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.text[open:closeIdx+1])
		})
	}
}

func TestMatchClose_ParenSkipsLiterals(t *testing.T) {
	text := `@Replace(from = "foo(", to = ')') rest`
	open := strings.IndexByte(text, '(')

	closeIdx, err := MatchClose(text, open, Paren)
	require.NoError(t, err)
	assert.Equal(t, " rest", text[closeIdx+1:])
}

func TestMatchClose_ParenNestedAnnotations(t *testing.T) {
	text := `@Template(value = { @Instantiate(value = { double.class }, replace = @Replace(from = "(T1[]) new Object", to = "x")) })
public class Klass`
	open := strings.IndexByte(text, '(')

	closeIdx, err := MatchClose(text, open, Paren)
	require.NoError(t, err)
	assert.Equal(t, "\npublic class Klass", text[closeIdx+1:])
}

func TestMatchClose_EscapedQuote(t *testing.T) {
	text := `(a = "say \")\"", b)!`
	closeIdx, err := MatchClose(text, 0, Paren)
	require.NoError(t, err)
	assert.Equal(t, "!", text[closeIdx+1:])
}

func TestMatchClose_ParenSkipsTextBlocksAndComments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"text block", "(doc = \"\"\"\n x ) \" y\n \"\"\")!"},
		{"text block escaped quotes", "(doc = \"\"\"\n a \\\"\"\" ) \n\"\"\")!"},
		{"line comment", "( // a ) here\n value = 1)!"},
		{"block comment", "(a /* ) ( */ , b)!"},
		{"division is no comment", "(a = 4 / 2)!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closeIdx, err := MatchClose(tt.text, 0, Paren)
			require.NoError(t, err)
			assert.Equal(t, "!", tt.text[closeIdx+1:])
		})
	}
}

func TestMatchClose_Unbalanced(t *testing.T) {
	tests := []struct {
		name string
		text string
		open int
		p    Pair
	}{
		{"no close", "class A<T extends List<T> {", 7, Angle},
		{"wrong start", "class A<T>", 0, Angle},
		{"out of range", "A<T>", 10, Angle},
		{"unterminated literal", `("abc)`, 0, Paren},
		{"unterminated text block", "(\"\"\"\n abc)\" )", 0, Paren},
		{"unterminated block comment", "(a /* b)", 0, Paren},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatchClose(tt.text, tt.open, tt.p)
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.KindUnbalancedDelimiter)
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	got := SplitTopLevel("K extends Comparable<K>, V, M extends Map<K, V>", ',', Angle)
	assert.Equal(t, []string{"K extends Comparable<K>", " V", " M extends Map<K, V>"}, got)

	assert.Equal(t, []string{"T"}, SplitTopLevel("T", ',', Angle))
}
