// Package rewrite implements the text transformations that turn a generic
// template into a concrete, non-generic source file.
//
// Nothing here parses the template language. Every stage works on raw
// text with regular expressions and balanced-delimiter scanning, and
// leaves every character it does not deliberately change untouched.
//
// Stages, in the order the generator runs them:
//   - ApplyRules: author-declared from/to replacements
//   - Strip: framework-only imports and annotations
//   - StripTypeParameters: the declaration's <...> clause
//   - SubstituteParams and RenameType: whole-word identifier rewrites
//   - Emit: provenance header and placeholder resolution
package rewrite
