// Package scan provides the balanced-delimiter matching used to find the
// end of type-parameter clauses and annotation argument lists without a
// parser.
package scan
