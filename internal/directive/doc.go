// Package directive provides the YAML schema, parsing, defaults and
// validation of template directive files.
//
// A directive file is the declaration surface of the generator: it names
// each generic template, the concrete types to instantiate it with, how
// target names are derived, and extra replacement rules.
//
// # Schema Overview
//
//	version: "1"
//	source_root: src/main/java
//	extension: .java
//	output: build/generated
//	placeholder: __TEMPLATE_SOURCE__
//	strict_rules: false
//	framework:
//	  package: com.kt.codegen
//	  annotations: [Template, Instantiate, Transform, Transforms]
//	templates:
//	  - source: x.y.Klass
//	    type_params: [T1, T2]   # optional, inferred from the declaration
//	    naming: prefix          # suffix (default) | prefix
//	    source_dir: ../shared   # optional, relative to source_root
//	    instantiate:
//	      - types: [double, java.util.Date]
//	        replace:
//	          - from: "(T1[]) new Object"
//	            to: "new  double "
//	      - types: [String, Float]
//	        replace:            # ordered shorthand
//	          "(T1[]) new Object": "new String"
//	          "= null": "= Float.NaN"
//	      - types: [Long, Long]
//	        target: LongPair    # explicit target simple name
//
// # Replacement Rules
//
// Rules run in declaration order, each over the output of the previous one.
// The default mode "auto" replaces From verbatim when it occurs in the text
// and otherwise treats it as a regular expression; "literal" and "regex"
// force one interpretation.
//
// # Paths
//
// Relative source_root and output paths are resolved against the directory
// of the directive file.
package directive
