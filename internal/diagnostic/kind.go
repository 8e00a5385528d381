package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies an engine failure. Kind implements error so that callers
// can match with errors.Is(err, KindArityMismatch).
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindEmptyInstantiationList
	KindArityMismatch
	KindDeclarationNotFound
	KindUnbalancedDelimiter
	KindRuleApplicationFailure
	KindDuplicateTarget
	KindInvalidDirective
	KindSourceNotFound
)

// Error implements error.
func (k Kind) Error() string {
	return k.String()
}
