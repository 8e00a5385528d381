package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SimpleName returns the last dot-separated element of a qualified name.
// "x.y.Klass" yields "Klass"; a name without dots is returned unchanged.
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}

// PackageOf returns everything before the last dot of a qualified name,
// or an empty string for names in the default package.
func PackageOf(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[:i]
	}

	return ""
}

// Qualify joins a package and a simple name. An empty package yields the bare name.
func Qualify(pkg, simple string) string {
	if pkg == "" {
		return simple
	}

	return pkg + "." + simple
}

// PackageDir converts a dotted package name to a slash-separated relative directory.
func PackageDir(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// IsIdentRune reports whether r may appear inside an identifier of the
// template language (letters, digits, '_' and '$').
func IsIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
