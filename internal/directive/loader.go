package directive

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"monogen/internal/naming"
	"monogen/internal/rewrite"
)

// Defaults applied to optional fields.
const (
	DefaultVersion          = "1"
	DefaultSourceRoot       = "."
	DefaultExtension        = ".java"
	DefaultOutput           = "./generated"
	DefaultFrameworkPackage = "com.kt.codegen"
)

// DefaultAnnotations are the generator-only annotations of the default
// framework package.
var DefaultAnnotations = []string{"Template", "Instantiate", "Transform", "Transforms"}

// nestedOnly are annotations that only appear inside the others' arguments
// but still need their imports removed.
var nestedOnly = []string{"Replace"}

// LoadFile loads and parses a YAML directive file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directive YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	if f.SourceRoot == "" {
		f.SourceRoot = DefaultSourceRoot
	}

	if f.Extension == "" {
		f.Extension = DefaultExtension
	}

	if f.Output == "" {
		f.Output = DefaultOutput
	}

	if f.Placeholder == "" {
		f.Placeholder = rewrite.DefaultPlaceholder
	}

	fw := &f.Framework
	if fw.Package == "" {
		fw.Package = DefaultFrameworkPackage
	}

	if len(fw.Annotations) == 0 {
		fw.Annotations = append([]string(nil), DefaultAnnotations...)
	}

	if len(fw.Imports) == 0 {
		for _, name := range append(append([]string(nil), fw.Annotations...), nestedOnly...) {
			fw.Imports = append(fw.Imports, fw.Package+"."+name)
		}
	}

	for i := range f.Templates {
		t := &f.Templates[i]
		if t.Naming == "" {
			t.Naming = naming.Suffix
		}

		for j := range t.Instantiations {
			for k := range t.Instantiations[j].Replace {
				r := &t.Instantiations[j].Replace[k]
				if r.Mode == "" {
					r.Mode = rewrite.RuleAuto
				}
			}
		}
	}
}
