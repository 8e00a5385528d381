// Package source locates and reads template source files and supplies the
// declared type parameters the rewriting engine needs.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"monogen/internal/common"
	"monogen/internal/diagnostic"
	"monogen/internal/rewrite"
)

// Source is a loaded template.
type Source struct {
	// QualifiedName is the template's qualified type name.
	QualifiedName string
	// TypeParameters are the declared type parameters in order.
	TypeParameters []string
	// Text is the raw template text.
	Text string
	// Path is the file the text was read from.
	Path string
}

// Loader reads templates from a source tree laid out by package, e.g.
// Root/x/y/Klass.java for x.y.Klass.
type Loader struct {
	Root      string
	Extension string
}

// Path returns the file that holds qualified, honoring a directory hint
// relative to Root.
func (l *Loader) Path(qualified, hint string) string {
	rel := filepath.FromSlash(common.PackageDir(common.PackageOf(qualified)))
	return filepath.Join(l.Root, hint, rel, common.SimpleName(qualified)+l.Extension)
}

// Load reads the template for qualified. Declared type parameters are used
// as given; when there are none they are read from the declaration.
func (l *Loader) Load(qualified, hint string, declared []string) (*Source, error) {
	path := l.Path(qualified, hint)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, diagnostic.Wrap(diagnostic.KindSourceNotFound, path, err,
				"template %s not found", qualified)
		}

		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	return FromText(qualified, string(data), declared, path)
}

// FromText builds a Source from text already in memory.
func FromText(qualified, text string, declared []string, path string) (*Source, error) {
	params := declared
	if len(params) == 0 {
		var err error

		params, err = rewrite.TypeParameters(text, common.SimpleName(qualified))
		if err != nil {
			return nil, fmt.Errorf("reading type parameters of %s: %w", qualified, err)
		}
	}

	return &Source{
		QualifiedName:  qualified,
		TypeParameters: params,
		Text:           text,
		Path:           path,
	}, nil
}
