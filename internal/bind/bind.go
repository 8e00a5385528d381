// Package bind pairs a template's declared type parameters with the
// concrete types requested by one instantiation.
package bind

import (
	"strings"

	"monogen/internal/common"
	"monogen/internal/diagnostic"
)

// Binding is one type parameter bound to a concrete type.
type Binding struct {
	// Param is the type-parameter identifier as declared.
	Param string
	// Qualified is the concrete type as requested, e.g. "java.util.Date".
	Qualified string
	// Simple is the text substituted for Param, e.g. "Date".
	Simple string
}

// CheckInstantiations fails when a template requests no instantiations.
func CheckInstantiations(source string, count int) error {
	if count == 0 {
		return diagnostic.Errorf(diagnostic.KindEmptyInstantiationList, source,
			"template %s must request at least one instantiation", source)
	}

	return nil
}

// Resolve binds concrete to params by position. The lengths must match
// exactly; nothing is bound otherwise.
func Resolve(params, concrete []string) ([]Binding, error) {
	if len(params) != len(concrete) {
		return nil, diagnostic.Errorf(diagnostic.KindArityMismatch, strings.Join(concrete, ", "),
			"expected %d type parameters, got %d", len(params), len(concrete))
	}

	out := make([]Binding, len(params))
	for i, p := range params {
		out[i] = Binding{
			Param:     common.SimpleName(p),
			Qualified: concrete[i],
			Simple:    SimpleType(concrete[i]),
		}
	}

	return out, nil
}

// SimpleType strips the package from a qualified type name while keeping
// type arguments and array suffixes verbatim: "java.util.Date[]" becomes
// "Date[]", "java.util.List<x.Y>" becomes "List<x.Y>", "int" stays "int".
func SimpleType(qualified string) string {
	name := strings.TrimSpace(qualified)

	suffix := ""
	if i := strings.IndexAny(name, "<["); i >= 0 {
		name, suffix = name[:i], name[i:]
	}

	return common.SimpleName(name) + suffix
}

// SimpleNames returns the substituted text of every binding, in order.
func SimpleNames(bs []Binding) []string {
	return common.Map(bs, func(b Binding) string { return b.Simple })
}
