// Package naming derives the qualified name of a generated artifact from its
// template's name and the concrete types bound to it.
package naming

import (
	"strings"

	"monogen/internal/common"
)

// Mode controls where the concrete type names go in the target name.
type Mode string

const (
	// Suffix appends the capitalized concrete names: Klass + Date = KlassDate.
	Suffix Mode = "suffix"
	// PrefixReplace prepends them: Double + Date + Klass = DoubleDateKlass.
	PrefixReplace Mode = "prefix"
)

// IsValid returns true if the mode is a recognized value.
func (m Mode) IsValid() bool {
	return m == Suffix || m == PrefixReplace
}

// Target returns the target qualified name. An explicit simple name, when
// non-empty, wins over the derived one. The target always lives in the
// source's package.
func Target(sourceQualified string, concrete []string, mode Mode, explicit string) string {
	pkg := common.PackageOf(sourceQualified)
	if explicit != "" {
		return common.Qualify(pkg, explicit)
	}

	return common.Qualify(pkg, TargetSimple(common.SimpleName(sourceQualified), concrete, mode))
}

// TargetSimple derives the target simple name from the source simple name.
func TargetSimple(sourceSimple string, concrete []string, mode Mode) string {
	var b strings.Builder
	for _, c := range concrete {
		b.WriteString(Token(c))
	}

	if mode == PrefixReplace {
		return b.String() + sourceSimple
	}

	return sourceSimple + b.String()
}

// Token turns one concrete type name into its name fragment: the simple
// name, capitalized, with array brackets spelled out and anything that is
// not an identifier character dropped. "int" becomes "Int", "int[]"
// becomes "IntArray".
func Token(concrete string) string {
	base := strings.TrimSpace(concrete)

	arrays := 0
	for strings.HasSuffix(base, "[]") {
		base = strings.TrimSpace(strings.TrimSuffix(base, "[]"))
		arrays++
	}

	if i := strings.IndexByte(base, '<'); i >= 0 {
		base = base[:i]
	}

	base = strings.Map(func(r rune) rune {
		if common.IsIdentRune(r) {
			return r
		}

		return -1
	}, common.SimpleName(base))

	return common.Capitalize(base) + strings.Repeat("Array", arrays)
}
