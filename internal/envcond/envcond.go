// Package envcond evaluates the visibility conditions declared in directory
// metadata against the process environment.
//
// Every environment variable name is a predicate symbol that holds when the
// variable is set. Expressions combine symbols and comparisons with not, and,
// or (also !, &&, ||) and parentheses:
//
//	ONLY_IF_ENV
//	ONLY_IF_ENV=prod
//	DEPLOY_TARGET != "staging" and not DRAFTS
//
// Conditions are rewritten into expr programs over a map of the environment
// and compiled once; evaluation runs the compiled program.
package envcond

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env maps environment variable names to their values.
type Env map[string]string

// Environ returns the current process environment as an Env.
func Environ() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if name != "" {
			env[name] = value
		}
	}
	return env
}

// Evaluate parses expr and evaluates it against env.
func Evaluate(src string, env Env) (bool, error) {
	c, err := Parse(src)
	if err != nil {
		return false, err
	}
	return c.Eval(env), nil
}

// Condition is a compiled expression.
type Condition struct {
	source  string
	program *vm.Program
	symbols []string
}

// String returns the expression as written.
func (c *Condition) String() string {
	return c.source
}

// Eval evaluates the condition against env.
func (c *Condition) Eval(env Env) bool {
	vars := make(map[string]any, len(env))
	for k, v := range env {
		vars[k] = v
	}
	out, err := expr.Run(c.program, map[string]any{"env": vars})
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

// Explain describes which variables the condition depends on and their
// current state in env. Used when logging why a page was excluded.
func (c *Condition) Explain(env Env) string {
	var parts []string
	seen := make(map[string]bool)
	for _, name := range c.symbols {
		if seen[name] {
			continue
		}
		seen[name] = true
		if v, ok := env[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", name, v))
		} else {
			parts = append(parts, name+" unset")
		}
	}
	return strings.Join(parts, ", ")
}

// Parse compiles expr into a Condition.
func Parse(src string) (*Condition, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("envcond: empty condition")
	}
	code, symbols, err := translate(toks)
	if err != nil {
		return nil, fmt.Errorf("envcond: %q: %w", src, err)
	}
	program, err := expr.Compile(code,
		expr.Env(map[string]any{"env": map[string]any{}}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("envcond: %q: %w", src, err)
	}
	return &Condition{source: src, program: program, symbols: symbols}, nil
}
