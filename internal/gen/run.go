package gen

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"monogen/internal/diagnostic"
	"monogen/internal/directive"
	"monogen/internal/source"
)

// SourceLoader supplies template sources to Run.
type SourceLoader interface {
	Load(qualified, hint string, declared []string) (*source.Source, error)
}

// Report summarizes a Run.
type Report struct {
	// Artifacts lists everything written, in directive order.
	Artifacts []Artifact
	// Diagnostics holds every failure, attributed to its template.
	Diagnostics diagnostic.Diagnostics
	// Templates is the number of templates processed.
	Templates int
	// Instantiations is the number of instantiations attempted.
	Instantiations int
}

// Failed returns the number of instantiations that produced no artifact.
func (r *Report) Failed() int {
	return r.Instantiations - len(r.Artifacts)
}

type templateResult struct {
	artifacts []Artifact
	diags     diagnostic.Diagnostics
}

// Run generates every template and writes the artifacts to sink. Templates
// are generated concurrently up to the configured limit, then written in
// directive order, so the first template deriving a target name owns it.
// Failures of one template or instantiation are recorded in the report and
// never stop the others. The returned error is only set when ctx is done
// before all templates were processed.
func (g *Generator) Run(ctx context.Context, templates []directive.Template, loader SourceLoader, sink Sink) (*Report, error) {
	results := make([]templateResult, len(templates))

	eg := &errgroup.Group{}
	eg.SetLimit(g.config.Concurrency)

	for i := range templates {
		i := i
		eg.Go(func() error {
			results[i] = g.generateTemplate(ctx, &templates[i], loader)
			return nil
		})
	}

	_ = eg.Wait()

	report := &Report{Templates: len(templates)}
	owners := make(map[string]string)

	for i := range results {
		tmpl := &templates[i]
		res := &results[i]

		report.Instantiations += len(tmpl.Instantiations)
		report.Diagnostics.Merge(res.diags)

		for _, a := range res.artifacts {
			if owner, ok := owners[a.Target]; ok {
				report.Diagnostics.AddErr(tmpl.Source, diagnostic.Errorf(diagnostic.KindDuplicateTarget, a.Target,
					"%s was already generated from %s", a.Target, owner))

				continue
			}

			owners[a.Target] = a.Template

			if err := sink.Write(ctx, a); err != nil {
				g.log.Error("writing artifact failed", zap.String("target", a.Target), zap.Error(err))
				report.Diagnostics.AddErr(tmpl.Source, err)

				continue
			}

			g.log.Debug("artifact written", zap.String("target", a.Target))
			report.Artifacts = append(report.Artifacts, a)
		}
	}

	g.log.Info("generation finished",
		zap.Int("templates", report.Templates),
		zap.Int("generated", len(report.Artifacts)),
		zap.Int("failed", report.Failed()))

	return report, ctx.Err()
}

func (g *Generator) generateTemplate(ctx context.Context, tmpl *directive.Template, loader SourceLoader) templateResult {
	var res templateResult

	if err := ctx.Err(); err != nil {
		res.diags.AddErr(tmpl.Source, err)
		return res
	}

	src, err := loader.Load(tmpl.Source, tmpl.SourceDir, tmpl.TypeParams)
	if err != nil {
		g.log.Error("loading template failed", zap.String("template", tmpl.Source), zap.Error(err))
		res.diags.AddErr(tmpl.Source, err)

		return res
	}

	res.artifacts, err = g.Generate(tmpl, src)
	res.diags.AddErr(tmpl.Source, err)

	return res
}
