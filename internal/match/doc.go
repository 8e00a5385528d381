// Package match ranks identifiers by edit distance. The rewriter uses it to
// suggest the declaration the author probably meant when the template's
// own type name cannot be found in its text.
package match
