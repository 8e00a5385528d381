package rewrite

import (
	"regexp"
	"strings"

	"monogen/internal/diagnostic"
)

// RuleMode selects how a rule's From is interpreted.
type RuleMode string

const (
	// RuleAuto replaces From literally when it occurs verbatim in the text
	// and treats it as a regular expression otherwise.
	RuleAuto RuleMode = "auto"
	// RuleLiteral always replaces From verbatim.
	RuleLiteral RuleMode = "literal"
	// RuleRegex always treats From as a regular expression; To may use $1.
	RuleRegex RuleMode = "regex"
)

// IsValid returns true if the mode is a recognized value. The empty mode
// means RuleAuto.
func (m RuleMode) IsValid() bool {
	return m == "" || m == RuleAuto || m == RuleLiteral || m == RuleRegex
}

// Rule is one author-declared replacement.
type Rule struct {
	From string
	To   string
	Mode RuleMode
}

// ApplyRules applies rules in order, each over the output of the previous
// one. It returns the rewritten text and how many matches each rule had.
// With strict set, a rule that matches nothing fails the whole run.
func ApplyRules(text string, rules []Rule, strict bool) (string, []int, error) {
	counts := make([]int, len(rules))

	for i, r := range rules {
		out, n, err := applyRule(text, r)
		if err != nil {
			return "", nil, err
		}

		if n == 0 && strict {
			return "", nil, diagnostic.Errorf(diagnostic.KindRuleApplicationFailure, r.From,
				"replacement rule %d matched nothing", i+1)
		}

		text, counts[i] = out, n
	}

	return text, counts, nil
}

func applyRule(text string, r Rule) (string, int, error) {
	switch r.Mode {
	case RuleLiteral:
		return replaceLiteral(text, r)

	case RuleRegex:
		re, err := regexp.Compile(r.From)
		if err != nil {
			return "", 0, diagnostic.Wrap(diagnostic.KindRuleApplicationFailure, r.From, err,
				"invalid replacement pattern")
		}

		return replaceRegex(text, re, r.To)

	case "", RuleAuto:
		if strings.Contains(text, r.From) {
			return replaceLiteral(text, r)
		}

		re, err := regexp.Compile(r.From)
		if err != nil {
			// Not present verbatim and not a valid pattern: nothing matches.
			return text, 0, nil
		}

		return replaceRegex(text, re, r.To)

	default:
		return "", 0, diagnostic.Errorf(diagnostic.KindRuleApplicationFailure, string(r.Mode),
			"unknown replacement mode")
	}
}

func replaceLiteral(text string, r Rule) (string, int, error) {
	if r.From == "" {
		return text, 0, nil
	}

	return strings.ReplaceAll(text, r.From, r.To), strings.Count(text, r.From), nil
}

func replaceRegex(text string, re *regexp.Regexp, to string) (string, int, error) {
	n := len(re.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0, nil
	}

	return re.ReplaceAllString(text, to), n, nil
}
