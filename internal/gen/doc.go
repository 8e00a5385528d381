// Package gen instantiates generic templates into concrete source files.
//
// The generator runs one fixed pipeline per instantiation, strictly in
// order and exactly once:
//   - bind concrete types to the declared type parameters
//   - derive the target name
//   - apply the instantiation's replacement rules
//   - strip framework imports and annotations
//   - strip the declaration's type-parameter clause
//   - substitute type parameters and rename the type
//   - emit the provenance header and resolve the placeholder
//
// A failing instantiation produces no artifact and never affects its
// siblings. Run processes many templates in parallel and isolates failures
// per template the same way.
package gen
