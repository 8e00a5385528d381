package gen_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"monogen/internal/directive"
	"monogen/internal/gen"
	"monogen/internal/source"
)

func TestExamples_Golden(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*", "monogen.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		path := path
		dir := filepath.Dir(path)

		t.Run(filepath.Base(dir), func(t *testing.T) {
			t.Parallel()

			f, err := directive.LoadFile(path)
			require.NoError(t, err)
			require.False(t, directive.Validate(f).HasErrors())

			loader := &source.Loader{Root: f.ResolvePath(f.SourceRoot), Extension: f.Extension}
			sink := gen.NewMemorySink()

			report, err := gen.NewGenerator(gen.ConfigFromFile(f)).Run(context.Background(), f.Templates, loader, sink)
			require.NoError(t, err)
			require.NoError(t, report.Diagnostics.Error())

			want := readExpected(t, filepath.Join(dir, "expected"), f.Extension)

			got := make(map[string]string)
			for _, a := range sink.Artifacts() {
				got[a.Target] = a.Text
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("generated sources mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// readExpected maps the qualified name of every golden file to its text.
func readExpected(t *testing.T, root, ext string) map[string]string {
	t.Helper()

	out := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ext) {
			return err
		}

		rel, err := filepath.Rel(root, strings.TrimSuffix(path, ext))
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		out[strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")] = string(data)

		return nil
	})
	require.NoError(t, err)

	return out
}
