package gen

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"monogen/internal/bind"
	"monogen/internal/common"
	"monogen/internal/diagnostic"
	"monogen/internal/directive"
	"monogen/internal/rewrite"
	"monogen/internal/source"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Framework lists the annotations and imports stripped from every template.
	Framework rewrite.Framework
	// Placeholder is resolved to the template's qualified name on emission.
	Placeholder string
	// StrictRules fails an instantiation whose replacement rule matches nothing.
	StrictRules bool
	// Concurrency bounds how many templates Run processes at once.
	Concurrency int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	f, _ := directive.Parse(nil)
	return ConfigFromFile(f)
}

// ConfigFromFile returns the generator configuration declared by a
// directive file.
func ConfigFromFile(f *directive.File) GeneratorConfig {
	return GeneratorConfig{
		Framework:   f.RewriteFramework(),
		Placeholder: f.Placeholder,
		StrictRules: f.StrictRules,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Generator instantiates templates.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{config: config, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	if g.config.Concurrency <= 0 {
		g.config.Concurrency = 1
	}

	return g
}

// Artifact is one generated source file.
type Artifact struct {
	// Target is the qualified name of the generated type.
	Target string
	// Template is the qualified name of the template it came from.
	Template string
	// Text is the complete generated source.
	Text string
}

// Generate instantiates every instantiation of tmpl. Instantiations fail
// independently: the artifacts of the successful ones are returned along
// with the joined errors of the others. A second instantiation deriving an
// already generated target name fails instead of replacing it.
func (g *Generator) Generate(tmpl *directive.Template, src *source.Source) ([]Artifact, error) {
	g.log.Info("instantiating class templates", zap.String("template", src.QualifiedName))

	if err := bind.CheckInstantiations(src.QualifiedName, len(tmpl.Instantiations)); err != nil {
		return nil, err
	}

	var (
		artifacts []Artifact
		errs      []error
	)

	produced := make(map[string]int, len(tmpl.Instantiations))

	for i := range tmpl.Instantiations {
		inst := &tmpl.Instantiations[i]

		target := tmpl.TargetFor(inst)
		if prev, ok := produced[target]; ok {
			errs = append(errs, fmt.Errorf("instantiation %d: %w", i+1,
				diagnostic.Errorf(diagnostic.KindDuplicateTarget, target,
					"%s was already generated by instantiation %d", target, prev+1)))

			continue
		}

		a, err := g.Instantiate(tmpl, inst, src)
		if err != nil {
			g.log.Error("instantiation failed",
				zap.String("template", src.QualifiedName),
				zap.Int("instantiation", i+1),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("instantiation %d: %w", i+1, err))

			continue
		}

		produced[target] = i
		artifacts = append(artifacts, *a)
	}

	return artifacts, errors.Join(errs...)
}

// Instantiate runs the pipeline for one instantiation. Either the whole
// pipeline succeeds and an artifact is returned, or nothing is.
func (g *Generator) Instantiate(tmpl *directive.Template, inst *directive.Instantiation, src *source.Source) (*Artifact, error) {
	bindings, err := bind.Resolve(src.TypeParameters, inst.Types)
	if err != nil {
		return nil, err
	}

	target := tmpl.TargetFor(inst)
	sourceSimple := common.SimpleName(src.QualifiedName)
	targetSimple := common.SimpleName(target)

	g.log.Info("instantiating",
		zap.String("template", src.QualifiedName),
		zap.Strings("types", bind.SimpleNames(bindings)),
		zap.String("target", target))

	text, counts, err := rewrite.ApplyRules(src.Text, inst.Replace.Rewrite(), g.config.StrictRules)
	if err != nil {
		return nil, err
	}

	for i, n := range counts {
		if n == 0 {
			g.log.Debug("replacement rule matched nothing",
				zap.String("target", target),
				zap.Int("rule", i+1),
				zap.String("from", inst.Replace[i].From))
		}
	}

	text, err = rewrite.Strip(text, g.config.Framework)
	if err != nil {
		return nil, fmt.Errorf("stripping framework annotations: %w", err)
	}

	if len(bindings) > 0 {
		text, err = rewrite.StripTypeParameters(text, sourceSimple, targetSimple)
	} else {
		err = rewrite.RequireDeclaration(text, sourceSimple)
	}

	if err != nil {
		return nil, err
	}

	text = rewrite.SubstituteParams(text, bindings)
	text = rewrite.RenameType(text, sourceSimple, targetSimple)
	text = rewrite.Emit(text, src.QualifiedName, g.config.Placeholder)

	return &Artifact{
		Target:   target,
		Template: src.QualifiedName,
		Text:     text,
	}, nil
}
