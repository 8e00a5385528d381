package rewrite

import "strings"

// DefaultPlaceholder is the token a template may embed to refer to its own
// qualified name from inside generated code.
const DefaultPlaceholder = "__TEMPLATE_SOURCE__"

// HeaderPrefix starts the provenance comment of every generated file.
const HeaderPrefix = "// generated from "

// Emit prepends the provenance comment and then resolves placeholder to
// source. It must run after every identifier rewrite so the resolved name,
// which usually contains the template's simple name, stays intact.
func Emit(text, source, placeholder string) string {
	text = HeaderPrefix + source + "\n" + text

	if placeholder != "" {
		text = strings.ReplaceAll(text, placeholder, source)
	}

	return text
}
