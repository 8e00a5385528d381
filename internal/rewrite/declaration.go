package rewrite

import (
	"regexp"
	"strings"
	"unicode"

	"monogen/internal/diagnostic"
	"monogen/internal/match"
	"monogen/internal/scan"
)

const declKeywords = `(?:class|interface|record|enum)\s+`

var declNamePattern = regexp.MustCompile(`\b` + declKeywords + `([A-Za-z_$][\w$]*)`)

// declaration locates the generic declaration of simple. It prefers a
// match introduced by a declaration keyword and falls back to the first
// bare "Name<". It returns the offsets of the name and of its '<'.
func declaration(text, simple string) (nameIdx, openIdx int, ok bool) {
	name := regexp.QuoteMeta(simple)

	keyword := regexp.MustCompile(declKeywords + `(` + name + `)\s*<`)
	for _, m := range keyword.FindAllStringSubmatchIndex(text, -1) {
		// The keyword must stand alone too: "subclass Name<" is no declaration.
		if isolated(text, m[0], m[0]+strings.IndexFunc(text[m[0]:], unicode.IsSpace)) &&
			isolated(text, m[2], m[3]) {
			return m[2], m[1] - 1, true
		}
	}

	bare := regexp.MustCompile(`(` + name + `)\s*<`)
	if ms := wordMatches(bare, text, 1); len(ms) > 0 {
		return ms[0][2], ms[0][1] - 1, true
	}

	return -1, -1, false
}

// StripTypeParameters renames the generic declaration of source to target
// and deletes its whole type-parameter clause, bounds and nested generics
// included: "Klass<T extends Number> {" becomes "KlassDate {".
func StripTypeParameters(text, source, target string) (string, error) {
	nameIdx, openIdx, ok := declaration(text, source)
	if !ok {
		return "", notFound(text, source)
	}

	closeIdx, err := scan.MatchClose(text, openIdx, scan.Angle)
	if err != nil {
		return "", err
	}

	return text[:nameIdx] + target + text[closeIdx+1:], nil
}

// RequireDeclaration checks that a non-generic template mentions its own
// type name at all.
func RequireDeclaration(text, source string) error {
	if containsWord(text, source) {
		return nil
	}

	return notFound(text, source)
}

// TypeParameters reads the declared type-parameter names of source from its
// declaration clause: "Klass<T1 extends Number, @A T2>" yields [T1 T2].
// A non-generic declaration yields nil.
func TypeParameters(text, source string) ([]string, error) {
	_, openIdx, ok := declaration(text, source)
	if !ok {
		if RequireDeclaration(text, source) == nil {
			return nil, nil
		}

		return nil, notFound(text, source)
	}

	closeIdx, err := scan.MatchClose(text, openIdx, scan.Angle)
	if err != nil {
		return nil, err
	}

	var params []string

	for _, part := range scan.SplitTopLevel(text[openIdx+1:closeIdx], ',', scan.Angle) {
		if id := leadingIdent(part); id != "" {
			params = append(params, id)
		}
	}

	return params, nil
}

var leadingAnnotations = regexp.MustCompile(`^(?:\s*@\s*[\w$.]+\s*(?:\([^)]*\))?)*\s*`)

var identPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)

func leadingIdent(part string) string {
	part = leadingAnnotations.ReplaceAllString(part, "")
	return identPattern.FindString(strings.TrimSpace(part))
}

func notFound(text, source string) error {
	var names []string
	for _, m := range declNamePattern.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}

	err := diagnostic.Errorf(diagnostic.KindDeclarationNotFound, source,
		"declaration of %s not found", source)
	err.Suggestions = match.Suggest(source, names, 3)

	return err
}
