package level

import (
	"fmt"
	"time"

	"github.com/google/cel-go/cel"
)

// Facts are the encounter counters a completion rule is evaluated against
type Facts struct {
	EnemiesDestroyed  int
	PowerupsCollected int
	Elapsed           time.Duration
	Score             int
	Misses            int
	ResponseComplete  bool
}

func (f Facts) activation() map[string]any {
	return map[string]any{
		"enemies_destroyed":  int64(f.EnemiesDestroyed),
		"powerups_collected": int64(f.PowerupsCollected),
		"elapsed_seconds":    f.Elapsed.Seconds(),
		"score":              int64(f.Score),
		"misses":             int64(f.Misses),
		"response_complete":  f.ResponseComplete,
	}
}

// Rule is a compiled boolean completion expression
type Rule struct {
	expr string
	prg  cel.Program
}

func newRuleEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("enemies_destroyed", cel.IntType),
		cel.Variable("powerups_collected", cel.IntType),
		cel.Variable("elapsed_seconds", cel.DoubleType),
		cel.Variable("score", cel.IntType),
		cel.Variable("misses", cel.IntType),
		cel.Variable("response_complete", cel.BoolType),
	)
}

// CompileRule parses and type-checks expr, which must yield a bool
func CompileRule(expr string) (*Rule, error) {
	env, err := newRuleEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("failed to compile rule %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("rule %q yields %s, want bool", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build program for rule %q: %w", expr, err)
	}
	return &Rule{expr: expr, prg: prg}, nil
}

// Eval reports whether the rule holds for the facts
func (r *Rule) Eval(f Facts) (bool, error) {
	out, _, err := r.prg.Eval(f.activation())
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rule %q: %w", r.expr, err)
	}
	v, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("rule %q produced %T", r.expr, out.Value())
	}
	return v, nil
}

func (r *Rule) String() string {
	return r.expr
}
