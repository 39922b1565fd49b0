package replay

import (
	"fmt"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/internal/match"
	"attribute-mapper/pattern"
)

// Diagnostic codes reported by Lint.
const (
	CodePatternMismatch   = "pattern-type-mismatch"
	CodeParamsNotArray    = "params-pattern-not-array"
	CodeInvalidDefault    = "invalid-default"
	CodeNoApplications    = "no-applications"
	CodeExtraTypeArgument = "extra-type-argument"
	CodeMissingTypeArg    = "missing-type-argument"
	CodeMissingArgument   = "missing-argument"
	CodeTooManyArguments  = "too-many-arguments"
	CodeUnknownNamed      = "unknown-named-argument"
	CodeDuplicateNamed    = "duplicate-named-argument"
)

// Lint reports what replaying the fixture would fail to record, without
// replaying it.
func (r *Replayer) Lint() *diagnostic.Diagnostics {
	ds := &diagnostic.Diagnostics{}

	for _, d := range r.ctors {
		r.lintDeclaration(ds, d)
	}

	for _, d := range r.named {
		r.lintDeclaration(ds, d)
	}

	if len(r.fixture.Applications) == 0 {
		ds.Infof(CodeNoApplications, "", "", "fixture declares no applications")
	}

	for _, app := range r.fixture.Applications {
		r.lintApplication(ds, app)
	}

	return ds
}

func (r *Replayer) lintDeclaration(ds *diagnostic.Diagnostics, d declaration) {
	e, err := pattern.ParseExpression(d.Pattern)
	if err != nil {
		// Validate rejects these before a Replayer exists.
		panic(err)
	}

	if d.Params && e.Elem == nil && e.Kind != pattern.KindObject {
		ds.Warnf(CodeParamsNotArray, "", d.Name, "collected params arrive as an array but the pattern is %s", e)
	}

	if d.declared != nil {
		if res := match.Check(e, d.declared); res.Verdict == match.Incompatible {
			ds.Warnf(CodePatternMismatch, "", d.Name, "pattern %s cannot fit %s: %s", res.Pattern, res.Declared, res.Reason)
		}
	}

	if d.Default != "" {
		if _, err := r.scope.Value(d.Default, d.declared); err != nil {
			ds.Errorf(CodeInvalidDefault, "", d.Name, "default does not evaluate: %v", err)
		}
	}
}

func (r *Replayer) lintApplication(ds *diagnostic.Diagnostics, app Application) {
	declaredTypes := len(r.fixture.TypeParameters)
	for i := declaredTypes; i < len(app.TypeArguments); i++ {
		ds.Warnf(CodeExtraTypeArgument, app.Name, fmt.Sprintf("#%d", i), "no type parameter at this ordinal")
	}

	for i := len(app.TypeArguments); i < declaredTypes; i++ {
		ds.Warnf(CodeMissingTypeArg, app.Name, typeParameterKey(r.fixture, i), "type argument is not supplied")
	}

	collects := len(r.ctors) > 0 && r.ctors[len(r.ctors)-1].Params
	if !collects && len(app.Arguments) > len(r.ctors) {
		ds.Errorf(CodeTooManyArguments, app.Name, "", "%d arguments for %d parameters", len(app.Arguments), len(r.ctors))
	}

	for i, d := range r.ctors {
		if i >= len(app.Arguments) && !d.Optional && !d.Params {
			ds.Errorf(CodeMissingArgument, app.Name, d.Name, "required argument is not supplied")
		}
	}

	comparer := r.mapper.Combined().Comparer()
	declared := r.mapper.Combined().NamedParameters()

	known := make(map[string]string, len(declared))
	for _, name := range declared {
		known[comparer.Key(name)] = name
	}

	seen := make(map[string]string, len(app.Named))
	for _, name := range sortedKeys(app.Named) {
		key := comparer.Key(name)

		if first, ok := seen[key]; ok {
			ds.Errorf(CodeDuplicateNamed, app.Name, name, "collides with %s under %s comparison", first, comparer.Name())
			continue
		}

		seen[key] = name

		if _, ok := known[key]; !ok {
			ds.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.Warning,
				Code:        CodeUnknownNamed,
				Message:     "no named parameter is declared under this name",
				Application: app.Name,
				Parameter:   name,
				Suggestions: match.Names(match.Suggest(name, declared, comparer.Key)),
			})
		}
	}
}
