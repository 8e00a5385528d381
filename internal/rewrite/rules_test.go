package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monogen/internal/diagnostic"
)

func TestApplyRules(t *testing.T) {
	text := "T1[] array = (T1[]) new Object[42];\nT2 t = null;\n"

	tests := []struct {
		name   string
		rules  []Rule
		want   string
		counts []int
	}{
		{
			name: "literal text that is not a valid pattern",
			rules: []Rule{
				{From: "(T1[]) new Object", To: "new  double "},
				{From: "= null", To: "= new Date(0)"},
			},
			want:   "T1[] array = new  double [42];\nT2 t = new Date(0);\n",
			counts: []int{1, 1},
		},
		{
			name: "regex with capture",
			rules: []Rule{
				{From: `new Object\[(\d+)\]`, To: "new Object[$1 * 2]", Mode: RuleRegex},
			},
			want:   "T1[] array = (T1[]) new Object[42 * 2];\nT2 t = null;\n",
			counts: []int{1},
		},
		{
			name: "auto falls back to regex",
			rules: []Rule{
				{From: `T\d\b`, To: "X"},
			},
			want:   "X[] array = (X[]) new Object[42];\nX t = null;\n",
			counts: []int{3},
		},
		{
			name: "chained rules see previous output",
			rules: []Rule{
				{From: "null", To: "EMPTY"},
				{From: "EMPTY", To: "Float.NaN"},
			},
			want:   "T1[] array = (T1[]) new Object[42];\nT2 t = Float.NaN;\n",
			counts: []int{1, 1},
		},
		{
			name: "literal mode does not expand dollars",
			rules: []Rule{
				{From: "null", To: "$1", Mode: RuleLiteral},
			},
			want:   "T1[] array = (T1[]) new Object[42];\nT2 t = $1;\n",
			counts: []int{1},
		},
		{
			name: "lenient no-op",
			rules: []Rule{
				{From: "does not occur", To: "x"},
				{From: "(unbalanced", To: "x"},
			},
			want:   text,
			counts: []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, counts, err := ApplyRules(text, tt.rules, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.counts, counts)
		})
	}
}

func TestApplyRules_Strict(t *testing.T) {
	rules := []Rule{
		{From: "null", To: "0"},
		{From: "missing", To: "x"},
	}

	_, _, err := ApplyRules("T t = null;", rules, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.KindRuleApplicationFailure)

	var de *diagnostic.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "missing", de.Subject)
	assert.Contains(t, de.Message, "rule 2")

	got, _, err := ApplyRules("T t = null;", rules[:1], true)
	require.NoError(t, err)
	assert.Equal(t, "T t = 0;", got)
}

func TestApplyRules_InvalidRegex(t *testing.T) {
	_, _, err := ApplyRules("x", []Rule{{From: "(", To: "y", Mode: RuleRegex}}, false)
	assert.ErrorIs(t, err, diagnostic.KindRuleApplicationFailure)

	_, _, err = ApplyRules("x", []Rule{{From: "x", To: "y", Mode: "glob"}}, false)
	assert.ErrorIs(t, err, diagnostic.KindRuleApplicationFailure)
}

func TestRuleModeIsValid(t *testing.T) {
	for _, m := range []RuleMode{"", RuleAuto, RuleLiteral, RuleRegex} {
		assert.True(t, m.IsValid(), m)
	}

	assert.False(t, RuleMode("glob").IsValid())
}
