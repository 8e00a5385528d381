package directive

import (
	"path/filepath"

	"monogen/internal/naming"
	"monogen/internal/rewrite"
)

// File represents the root of a YAML directive file.
type File struct {
	// Version of the directive schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// SourceRoot is the directory template sources are resolved against.
	SourceRoot string `yaml:"source_root,omitempty"`

	// Extension is the file extension of templates and generated files.
	Extension string `yaml:"extension,omitempty"`

	// Output is the root directory generated files are written under.
	Output string `yaml:"output,omitempty"`

	// Placeholder is the token resolved to the template's qualified name.
	Placeholder string `yaml:"placeholder,omitempty"`

	// StrictRules makes a replacement rule that matches nothing an error.
	StrictRules bool `yaml:"strict_rules,omitempty"`

	// Framework lists the generator-only annotations and imports to strip.
	Framework Framework `yaml:"framework,omitempty"`

	// Templates is the list of template directives.
	Templates []Template `yaml:"templates" validate:"dive"`

	// Dir is the directory the file was loaded from; empty for parsed data.
	Dir string `yaml:"-"`
}

// Framework describes the annotation surface that exists only for the
// generator.
type Framework struct {
	// Package qualifies the annotation names, e.g. "com.kt.codegen".
	Package string `yaml:"package,omitempty"`

	// Annotations are the simple annotation names removed from templates.
	Annotations []string `yaml:"annotations,omitempty" validate:"dive,required"`

	// Imports are the qualified imports removed from templates. Defaults to
	// every annotation name plus Replace, qualified by Package.
	Imports []string `yaml:"imports,omitempty" validate:"dive,required"`
}

// Template is one generic type to instantiate.
type Template struct {
	// Source is the qualified name of the generic type, e.g. "x.y.Klass".
	Source string `yaml:"source" validate:"required"`

	// TypeParams are the declared type parameters in order. When empty they
	// are read from the template's declaration.
	TypeParams StringOrArray `yaml:"type_params,omitempty" validate:"dive,required"`

	// Naming selects how target names are derived.
	Naming naming.Mode `yaml:"naming,omitempty" validate:"omitempty,oneof=suffix prefix"`

	// SourceDir is an optional directory hint relative to the source root.
	SourceDir string `yaml:"source_dir,omitempty"`

	// Instantiations are the concrete bindings to generate.
	Instantiations []Instantiation `yaml:"instantiate" validate:"dive"`
}

// Instantiation is one set of concrete types for a template.
type Instantiation struct {
	// Types are the concrete type names bound to the type parameters by
	// position. Qualified names are allowed.
	Types StringOrArray `yaml:"types" validate:"dive,required"`

	// Target overrides the derived target simple name.
	Target string `yaml:"target,omitempty"`

	// Replace lists extra rules applied before any other rewrite.
	Replace RuleList `yaml:"replace,omitempty" validate:"dive"`
}

// Rule is one from/to replacement.
type Rule struct {
	From string           `yaml:"from" validate:"required"`
	To   string           `yaml:"to"`
	Mode rewrite.RuleMode `yaml:"mode,omitempty" validate:"omitempty,oneof=auto literal regex"`
}

// StringOrArray is a list of strings that can also be written as a single scalar.
type StringOrArray []string

// RuleList is an ordered list of rules that can also be written as an
// ordered from: to mapping.
type RuleList []Rule

// Rewrite converts the rules to their engine form.
func (rl RuleList) Rewrite() []rewrite.Rule {
	out := make([]rewrite.Rule, len(rl))
	for i, r := range rl {
		out[i] = rewrite.Rule{From: r.From, To: r.To, Mode: r.Mode}
	}

	return out
}

// RewriteFramework returns the strip configuration of the file.
func (f *File) RewriteFramework() rewrite.Framework {
	return rewrite.Framework{
		Annotations: f.Framework.Annotations,
		Imports:     f.Framework.Imports,
	}
}

// ResolvePath resolves p against the directory of the directive file.
func (f *File) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || f.Dir == "" {
		return p
	}

	return filepath.Join(f.Dir, p)
}

// TargetFor derives the qualified target name of one instantiation.
func (t *Template) TargetFor(inst *Instantiation) string {
	return naming.Target(t.Source, inst.Types, t.Naming, inst.Target)
}
