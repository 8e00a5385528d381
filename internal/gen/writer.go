package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"monogen/internal/common"
	"monogen/internal/diagnostic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Sink receives generated artifacts. Implementations must be safe for
// concurrent use.
type Sink interface {
	Write(ctx context.Context, a Artifact) error
}

// DirSink writes artifacts under Dir, one file per target, in the directory
// matching the target's package.
type DirSink struct {
	Dir       string
	Extension string
}

// Path returns the file an artifact for target is written to.
func (s *DirSink) Path(target string) string {
	pkg := common.PackageOf(target)

	return filepath.Join(s.Dir, filepath.FromSlash(common.PackageDir(pkg)), common.SimpleName(target)+s.Extension)
}

// Write writes the artifact atomically: a partially written file is never
// visible under the target path.
func (s *DirSink) Write(ctx context.Context, a Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(a.Target)
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = tmp.WriteString(a.Text); err != nil {
		tmp.Close()

		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// MemorySink keeps artifacts in memory. It refuses to replace a target it
// already holds.
type MemorySink struct {
	mu        sync.Mutex
	artifacts map[string]Artifact
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{artifacts: make(map[string]Artifact)}
}

// Write stores a, failing with DuplicateTarget when a.Target is already held.
func (m *MemorySink) Write(_ context.Context, a Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.artifacts[a.Target]; ok {
		return diagnostic.Errorf(diagnostic.KindDuplicateTarget, a.Target,
			"%s was already generated from %s", a.Target, prev.Template)
	}

	m.artifacts[a.Target] = a

	return nil
}

// Artifacts returns the stored artifacts ordered by target name.
func (m *MemorySink) Artifacts() []Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Artifact, 0, len(m.artifacts))
	for _, a := range m.artifacts {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })

	return out
}

// Get returns the artifact generated for target.
func (m *MemorySink) Get(target string) (Artifact, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.artifacts[target]

	return a, ok
}
