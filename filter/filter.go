// Package filter selects directives with CEL boolean expressions.
//
// An expression sees the variables kind, argument, args, line and column:
//
//	kind == "change" && line > 10
//	args.exists(a, a.startsWith("db."))
package filter

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/shibukawa/cttt"
)

var (
	ErrEmptyExpression = errors.New("empty filter expression")
	ErrNotBoolean      = errors.New("filter expression must evaluate to bool")
)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.HomogeneousAggregateLiterals(),
		cel.EagerlyValidateDeclarations(true),
		cel.Variable("kind", cel.StringType),
		cel.Variable("argument", cel.StringType),
		cel.Variable("args", cel.ListType(cel.StringType)),
		cel.Variable("line", cel.IntType),
		cel.Variable("column", cel.IntType),
	)
}

// Compile compiles expr into a Filter.
func Compile(expr string) (*Filter, error) {
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compilation error: %w", issues.Err())
	}

	outputType := ast.OutputType()
	if outputType == nil || !(outputType.IsExactType(cel.BoolType) || outputType.IsExactType(cel.DynType)) {
		return nil, fmt.Errorf("%w: %q", ErrNotBoolean, expr)
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program creation error: %w", err)
	}

	return &Filter{expression: expr, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter against d.
func (f *Filter) Match(d cttt.Directive) (bool, error) {
	args := d.Args
	if args == nil {
		args = []string{}
	}

	result, _, err := f.program.Eval(map[string]any{
		"kind":     d.Kind,
		"argument": d.Argument,
		"args":     args,
		"line":     int64(d.Line),
		"column":   int64(d.Column),
	})
	if err != nil {
		return false, fmt.Errorf("CEL evaluation error at line %d: %w", d.Line, err)
	}

	matched, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %s", ErrNotBoolean, result.Type().TypeName())
	}

	return matched, nil
}

// Apply returns the directives that match, preserving order.
func (f *Filter) Apply(directives []cttt.Directive) ([]cttt.Directive, error) {
	result := make([]cttt.Directive, 0, len(directives))

	for _, d := range directives {
		matched, err := f.Match(d)
		if err != nil {
			return nil, err
		}

		if matched {
			result = append(result, d)
		}
	}

	return result, nil
}
