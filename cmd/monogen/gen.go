package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"monogen/internal/diagnostic"
	"monogen/internal/directive"
	"monogen/internal/gen"
	"monogen/internal/source"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate every instantiation and write it to the output tree",
	Long: `Generates all templates of the directive file. A failing template or
instantiation does not stop the others; the command exits non-zero after
everything was processed if anything failed.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the directive file and dry-run generation",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print the target name of every instantiation",
	Args:  cobra.NoArgs,
	RunE:  runNames,
}

// errGenerationFailed is returned when at least one instantiation failed.
var errGenerationFailed = errors.New("generation failed")

// skipCodes are validation failures the generator cannot isolate to a
// single instantiation, so the whole template is left out of the run.
// Everything else Validate reports is reported again, per instantiation,
// by the generator itself.
var skipCodes = map[string]bool{
	diagnostic.KindInvalidDirective.String(): true,
	"invalid_target":                         true,
	"duplicate_template":                     true,
}

// project is a loaded and validated directive file with flags applied.
type project struct {
	file      *directive.File
	templates []directive.Template
	skipped   diagnostic.Diagnostics
	output    string
	loader    *source.Loader
	config    gen.GeneratorConfig
}

func loadProject(path string, w io.Writer) (*project, error) {
	f, err := directive.LoadFile(path)
	if err != nil {
		return nil, err
	}

	p := &project{file: f}

	diags := directive.Validate(f)
	skip := map[string]bool{}

	for _, d := range diags.Errors {
		if d.Template == "" {
			printDiagnostics(w, diags)
			return nil, fmt.Errorf("%s: %w", path, diagnostic.KindInvalidDirective)
		}

		if skipCodes[d.Code] {
			skip[d.Template] = true
			p.skipped.Errors = append(p.skipped.Errors, d)
		}
	}

	p.skipped.Warnings = diags.Warnings

	for _, t := range f.Templates {
		if !skip[t.Source] {
			p.templates = append(p.templates, t)
		}
	}

	p.config = gen.ConfigFromFile(f)
	p.config.Concurrency = jobs
	p.config.StrictRules = p.config.StrictRules || strictRules

	p.output = outputDir
	if p.output == "" {
		p.output = f.ResolvePath(f.Output)
	}

	p.loader = &source.Loader{Root: f.ResolvePath(f.SourceRoot), Extension: f.Extension}

	return p, nil
}

func (p *project) run(ctx context.Context, sink gen.Sink) (*gen.Report, error) {
	g := gen.NewGenerator(p.config, gen.WithLogger(logger))

	report, err := g.Run(ctx, p.templates, p.loader, sink)
	if report != nil {
		report.Diagnostics.Merge(p.skipped)
	}

	return report, err
}

func runGen(cmd *cobra.Command, _ []string) error {
	p, err := loadProject(directivePath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return generate(cmd.Context(), p, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func generate(ctx context.Context, p *project, out, errOut io.Writer) error {
	sink := &gen.DirSink{Dir: p.output, Extension: p.file.Extension}

	report, err := p.run(ctx, sink)
	if err != nil {
		return err
	}

	for _, a := range report.Artifacts {
		fmt.Fprintf(out, "generated %s\n", sink.Path(a.Target))
	}

	return finish(report, errOut)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	p, err := loadProject(directivePath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	report, err := p.run(cmd.Context(), gen.NewMemorySink())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d templates, %d instantiations, %d generated, %d failed\n",
		report.Templates, report.Instantiations, len(report.Artifacts), report.Failed())

	return finish(report, cmd.ErrOrStderr())
}

func runNames(cmd *cobra.Command, _ []string) error {
	f, err := directive.LoadFile(directivePath)
	if err != nil {
		return err
	}

	for i := range f.Templates {
		t := &f.Templates[i]
		for j := range t.Instantiations {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", t.Source, t.TargetFor(&t.Instantiations[j]))
		}
	}

	return nil
}

func finish(report *gen.Report, w io.Writer) error {
	printDiagnostics(w, &report.Diagnostics)

	if report.Diagnostics.HasErrors() {
		logger.Warn("some instantiations failed",
			zap.Int("failed", report.Failed()),
			zap.Int("errors", len(report.Diagnostics.Errors)))

		return errGenerationFailed
	}

	return nil
}

func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		fmt.Fprintf(w, "error: %s\n", e)
	}

	for _, e := range d.Warnings {
		fmt.Fprintf(w, "warning: %s\n", e)
	}
}
