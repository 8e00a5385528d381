// Package diagnostic provides the typed errors raised by the rewriting
// engine and the structured diagnostics collected by the driver.
//
// Key capabilities:
//   - Error kinds matchable with errors.Is (e.g. errors.Is(err, KindArityMismatch))
//   - Offending pattern/identifier carried as the diagnostic subject
//   - "Did you mean" suggestions for unresolved declarations
//   - Per-template collection so one failing template never hides the others
package diagnostic
