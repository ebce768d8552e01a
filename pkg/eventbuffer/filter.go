package eventbuffer

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// CompileFilter compiles a CEL boolean expression into a filter function
// usable directly as Slice's projection argument. The expression receives
// the entry (decoded to a map[string]any via decode) bound to the variable
// "entry"; it must evaluate to a bool. When true, project turns the decoded
// entry into the FR the caller wants returned; when false (or the
// expression errors), the candidate is rejected like any other filter
// miss — CompileFilter never panics at evaluation time.
//
// This does not change slice's contract (spec §3.2's filter is still "a
// pure projection Entry -> Option<FR>"); it is one more way to build that
// argument, grounded in kernel/cel_dp.go's environment/compile/program
// sequence.
func CompileFilter[E, FR any](expr string, decode func(E) (map[string]any, error), project func(E) FR) (func(E) (FR, bool), error) {
	env, err := cel.NewEnv(cel.Variable("entry", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("eventbuffer: cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues.Err() != nil {
		return nil, fmt.Errorf("eventbuffer: cel compile: %w", issues.Err())
	}

	prog, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("eventbuffer: cel program: %w", err)
	}

	return func(e E) (FR, bool) {
		var zero FR
		decoded, err := decode(e)
		if err != nil {
			return zero, false
		}
		val, _, err := prog.Eval(map[string]any{"entry": decoded})
		if err != nil {
			return zero, false
		}
		matched, ok := val.Value().(bool)
		if !ok || !matched {
			return zero, false
		}
		return project(e), true
	}, nil
}
