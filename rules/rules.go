// Package rules compiles automatic resolution rules over merge
// actions.  A rule is a predicate expression plus the side to prefer;
// rule files are YAML:
//
//	- when: kind == "ChangeField" && component == "Transform"
//	  prefer: theirs
//	- when: kind == "DeleteComponent"
//	  prefer: ours
//
// The expression environment per action: kind, node, component, path.
package rules

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/scenekit/scenemerge/debug"
	"github.com/scenekit/scenemerge/merge"
)

type RuleSpec struct {
	When   string `yaml:"when"`
	Prefer string `yaml:"prefer"`
}

type Rule struct {
	spec   RuleSpec
	when   *vm.Program
	prefer merge.Side
}

type Set struct {
	rules []*Rule
}

// Parse compiles a YAML rule document.  Compile errors fail fast.
func Parse(d []byte) (*Set, error) {
	var specs []RuleSpec
	if err := yaml.Unmarshal(d, &specs); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	s := &Set{}
	for i, spec := range specs {
		r, err := compile(spec)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
		s.rules = append(s.rules, r)
	}
	return s, nil
}

func Load(path string) (*Set, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d)
}

func compile(spec RuleSpec) (*Rule, error) {
	if spec.When == "" {
		return nil, fmt.Errorf("rule without a when expression")
	}
	side, err := merge.ParseSide(spec.Prefer)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(spec.When, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &Rule{spec: spec, when: prg, prefer: side}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(actionEnv(nil)),
		expr.AsBool(),
	}
}

func actionEnv(a *merge.Action) map[string]any {
	if a == nil {
		return map[string]any{
			"kind":      "",
			"node":      "",
			"component": "",
			"path":      "",
		}
	}
	return map[string]any{
		"kind":      a.Kind().String(),
		"node":      a.NodeLabel(),
		"component": a.ComponentID(),
		"path":      a.Path(),
	}
}

// Decide returns the side the first matching rule prefers.  The
// signature fits [merge.WithAutoResolve], so a set can auto-resolve
// actions at unit construction time.
func (s *Set) Decide(a *merge.Action) (merge.Side, bool) {
	env := actionEnv(a)
	for _, r := range s.rules {
		res, err := expr.Run(r.when, env)
		if err != nil {
			// a rule that errors on an action simply does not match
			if debug.Rules() {
				debug.Logf("rule %q error: %v\n", r.spec.When, err)
			}
			continue
		}
		if ok, _ := res.(bool); ok {
			if debug.Rules() {
				debug.Logf("rule %q prefers %s for %s\n", r.spec.When, r.prefer, a.Describe())
			}
			return r.prefer, true
		}
	}
	return 0, false
}

// Apply resolves every matching unresolved action of the unit and
// recomputes it.  It returns the number of actions resolved.
func (s *Set) Apply(u *merge.Unit) int {
	n := 0
	for _, a := range u.Actions() {
		if a.Merged() {
			continue
		}
		side, ok := s.Decide(a)
		if !ok {
			continue
		}
		if a.Resolve(side) {
			n++
		}
	}
	if n > 0 {
		u.Recompute()
	}
	return n
}

func (s *Set) Len() int {
	return len(s.rules)
}
