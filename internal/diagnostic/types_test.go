package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "ArityMismatch", KindArityMismatch.String())
	assert.Equal(t, "SourceNotFound", KindSourceNotFound.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestError_IsAndAs(t *testing.T) {
	base := Errorf(KindArityMismatch, "x.y.Klass", "expected %d type parameters, got %d", 2, 1)
	wrapped := fmt.Errorf("instantiating x.y.Klass: %w", base)

	assert.ErrorIs(t, wrapped, KindArityMismatch)
	assert.NotErrorIs(t, wrapped, KindDeclarationNotFound)

	var e *Error
	require.ErrorAs(t, wrapped, &e)
	assert.Equal(t, "x.y.Klass", e.Subject)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindArityMismatch, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_Message(t *testing.T) {
	e := Errorf(KindDeclarationNotFound, "Klas", "declaration of %s not found", "Klas")
	e.Suggestions = []string{"Klass"}

	assert.Equal(t,
		`DeclarationNotFound: declaration of Klas not found ("Klas"); did you mean Klass?`,
		e.Error())

	cause := errors.New("boom")
	w := Wrap(KindSourceNotFound, "", cause, "reading template")
	assert.Equal(t, "SourceNotFound: reading template: boom", w.Error())
	assert.ErrorIs(t, w, cause)
}

func TestDiagnostics_AddErrSplitsJoined(t *testing.T) {
	var d Diagnostics

	joined := errors.Join(
		Errorf(KindArityMismatch, "", "expected 1 type parameters, got 2"),
		Errorf(KindRuleApplicationFailure, "= null", "rule matched nothing"),
		errors.New("disk full"),
	)
	d.AddErr("x.y.Klass", joined)

	require.Len(t, d.Errors, 3)
	assert.Equal(t, "ArityMismatch", d.Errors[0].Code)
	assert.Equal(t, "RuleApplicationFailure", d.Errors[1].Code)
	assert.Equal(t, "= null", d.Errors[1].Subject)
	assert.Equal(t, "", d.Errors[2].Code)
	assert.Equal(t, "x.y.Klass", d.Errors[2].Template)
	assert.False(t, d.IsValid())

	d.AddErr("ignored", nil)
	assert.Len(t, d.Errors, 3)
}

func TestDiagnostics_MergeAndError(t *testing.T) {
	var a, b Diagnostics

	assert.NoError(t, a.Error())

	a.AddWarning("noop_rule", "rule matched nothing", "x.y.A", "foo")
	b.AddError("missing_source", "template source is required", "", "")
	b.AddInfo("inferred", "type parameters inferred", "x.y.B", "")
	a.Merge(b)

	assert.True(t, a.HasErrors())
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.EqualError(t, a.Error(), "[missing_source] template source is required")
	assert.Equal(t, "[x.y.A] [noop_rule] rule matched nothing", a.Warnings[0].String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
