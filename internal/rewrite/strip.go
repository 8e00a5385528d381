package rewrite

import (
	"regexp"

	"monogen/internal/scan"
)

// Framework lists the annotation names and import paths that only exist
// for the generator and must never reach generated output.
type Framework struct {
	// Annotations are simple annotation names, e.g. "Template".
	Annotations []string
	// Imports are qualified names, e.g. "com.kt.codegen.Template".
	Imports []string
}

// Strip removes every framework import and annotation from text.
func Strip(text string, fw Framework) (string, error) {
	for _, imp := range fw.Imports {
		text = RemoveImport(text, imp)
	}

	for _, name := range fw.Annotations {
		var err error

		text, err = RemoveAnnotation(text, name)
		if err != nil {
			return "", err
		}
	}

	return text, nil
}

// RemoveImport deletes every import line of the given qualified name,
// line terminator included. Text without such an import is returned as is.
func RemoveImport(text, qualified string) string {
	re := regexp.MustCompile(`(?m)^[ \t]*import[ \t]+` + regexp.QuoteMeta(qualified) + `[ \t]*;[ \t]*(?:\r?\n|$)`)
	return re.ReplaceAllLiteralString(text, "")
}

// RemoveAnnotation deletes every usage of the named annotation. The marker
// may be separated from the name by whitespace and the name may be
// package-qualified. An argument list is removed together with everything
// nested in it and the whitespace that follows it; a bare marker loses only
// the marker and the name.
func RemoveAnnotation(text, name string) (string, error) {
	re := annotationPattern(name)

	from := 0
	for {
		loc := re.FindStringIndex(text[from:])
		if loc == nil {
			return text, nil
		}

		start, end := from+loc[0], from+loc[1]

		// "@Template$X" and "@Templateñ" name other annotations.
		if !isolated(text, start, end) {
			from = end
			continue
		}

		if open := skipSpace(text, end); open < len(text) && text[open] == '(' {
			closeIdx, err := scan.MatchClose(text, open, scan.Paren)
			if err != nil {
				return "", err
			}

			end = skipSpace(text, closeIdx+1)
		}

		text = text[:start] + text[end:]
		from = start
	}
}

func annotationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`@\s*(?:[A-Za-z_$][\w$]*\s*\.\s*)*` + regexp.QuoteMeta(name))
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			i++
		default:
			return i
		}
	}

	return i
}
