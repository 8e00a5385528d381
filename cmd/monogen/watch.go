package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"monogen/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Generate, then regenerate whenever a template or the directive file changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := loadProject(directivePath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	regenerate := func(ctx context.Context) {
		err := generate(ctx, p, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil && !errors.Is(err, errGenerationFailed) {
			logger.Error("generation failed", zap.Error(err))
		}
	}

	regenerate(ctx)

	directiveAbs, err := filepath.Abs(directivePath)
	if err != nil {
		return err
	}

	output, err := filepath.Abs(p.output)
	if err != nil {
		return err
	}

	match := func(path string) bool {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}

		if abs == directiveAbs {
			return true
		}

		// Generated files share the extension but must never retrigger.
		if strings.HasPrefix(abs, output+string(filepath.Separator)) {
			return false
		}

		return strings.HasSuffix(abs, p.file.Extension)
	}

	onChange := func(ctx context.Context, paths []string) {
		logger.Info("change detected", zap.Strings("paths", paths))

		next, err := loadProject(directivePath, cmd.ErrOrStderr())
		if err != nil {
			logger.Error("reloading directive file", zap.Error(err))
			return
		}

		p = next
		regenerate(ctx)
	}

	roots := []string{p.loader.Root}
	if dir := filepath.Dir(directiveAbs); !within(dir, p.loader.Root) {
		roots = append(roots, dir)
	}

	w, err := watch.New(roots, match, onChange, watch.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	select {
	case <-ctx.Done():
	case <-w.Done():
	}

	return nil
}

// within reports whether dir is root or lies below it.
func within(dir, root string) bool {
	root, err := filepath.Abs(root)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(root, dir)

	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
