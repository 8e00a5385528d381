package directive

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"monogen/internal/bind"
	"monogen/internal/common"
	"monogen/internal/diagnostic"
	"monogen/internal/rewrite"
)

var validate = validator.New()

var templateIndex = regexp.MustCompile(`Templates\[(\d+)\]`)

var identPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// Validate checks a directive file structurally. Checks that need a
// template's text (inferred type parameters, locating the declaration)
// happen during generation.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "directive file is nil", "", "")
		return res
	}

	validateTags(res, f)

	if len(f.Templates) == 0 {
		res.AddError("no_templates", "directive file declares no templates", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range f.Templates {
		t := &f.Templates[i]
		if t.Source == "" {
			continue
		}

		if _, ok := seen[t.Source]; ok {
			res.AddError("duplicate_template", fmt.Sprintf("duplicate template %q", t.Source), t.Source, t.Source)
			continue
		}

		seen[t.Source] = struct{}{}

		validateTemplate(res, t)
	}

	return res
}

func validateTemplate(res *diagnostic.Diagnostics, t *Template) {
	if err := bind.CheckInstantiations(t.Source, len(t.Instantiations)); err != nil {
		res.AddErr(t.Source, err)
		return
	}

	targets := map[string]int{}

	for i := range t.Instantiations {
		inst := &t.Instantiations[i]

		if len(t.TypeParams) > 0 {
			if _, err := bind.Resolve(t.TypeParams, inst.Types); err != nil {
				res.AddErr(t.Source, err)
			}
		}

		if inst.Target != "" && !identPattern.MatchString(inst.Target) {
			res.AddError("invalid_target",
				fmt.Sprintf("instantiation %d: target %q is not a simple identifier", i+1, inst.Target),
				t.Source, inst.Target)
		}

		target := t.TargetFor(inst)
		if prev, ok := targets[target]; ok {
			res.AddErr(t.Source, diagnostic.Errorf(diagnostic.KindDuplicateTarget, target,
				"instantiations %d and %d both generate %s", prev+1, i+1, target))
		} else {
			targets[target] = i
		}

		for j, r := range inst.Replace {
			if r.Mode != rewrite.RuleRegex {
				continue
			}

			if _, err := regexp.Compile(r.From); err != nil {
				res.AddErr(t.Source, diagnostic.Wrap(diagnostic.KindRuleApplicationFailure, r.From, err,
					"instantiation %d, rule %d: invalid pattern", i+1, j+1))
			}
		}
	}

	if common.IsEmpty(t.TypeParams) {
		res.AddInfo("infer_type_params", "type parameters will be read from the declaration", t.Source, "")
	}
}

// validateTags runs struct-tag constraints and turns every violation into
// a diagnostic attributed to its template.
func validateTags(res *diagnostic.Diagnostics, f *File) {
	err := validate.Struct(f)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.AddError("invalid_directive", err.Error(), "", "")
		return
	}

	for _, fe := range verrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}

		res.AddErr(templateOf(f, fe.Namespace()), diagnostic.Errorf(diagnostic.KindInvalidDirective,
			fmt.Sprint(fe.Value()), "%s violates %q", strings.TrimPrefix(fe.Namespace(), "File."), constraint))
	}
}

func templateOf(f *File, namespace string) string {
	m := templateIndex.FindStringSubmatch(namespace)
	if m == nil {
		return ""
	}

	i, err := strconv.Atoi(m[1])
	if err != nil || i >= len(f.Templates) {
		return ""
	}

	return f.Templates[i].Source
}
