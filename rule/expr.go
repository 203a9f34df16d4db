package rule

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/debug"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// Pred compiles src into a boolean predicate over nodes. The expression
// sees the environment:
//
//	name    variant tag
//	argc    argument vector length
//	leaf    whether the node has no children
//	line    origin line
//	object  origin object name
//	arg(s)  printed form of the named argument, "" when absent
//
// A run-time evaluation failure counts as no match and is traced under
// REMORPH_DEBUG_RULE.
func Pred(src string) (func(ir.Node) bool, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(n ir.Node) bool {
		return evalPredicate(prg, src, n)
	}, nil
}

// Expr pairs a Pred-compiled predicate with fn.
func Expr(src string, fn func(ir.Node) ir.Node) (ir.Rule, error) {
	p, err := Pred(src)
	if err != nil {
		return nil, err
	}
	return When(p, fn), nil
}

func evalPredicate(prg *vm.Program, src string, n ir.Node) bool {
	res, err := expr.Run(prg, exprEnv(n))
	if err != nil {
		if debug.Rule() {
			debug.Logf("rule expr %q failed on %s: %v\n", src, n.Name(), err)
		}
		return false
	}
	b, _ := res.(bool)
	return b
}

func exprEnv(n ir.Node) map[string]any {
	return map[string]any{
		"name":   n.Name(),
		"argc":   len(n.Args()),
		"leaf":   len(ir.Children(n)) == 0,
		"line":   n.Origin().Line,
		"object": n.Origin().ObjectName,
		"arg": func(name string) string {
			for _, a := range n.Args() {
				if a.Name == name {
					if s, ok := (ir.Describe{}).ArgValueString(a); ok {
						return s
					}
					return ""
				}
			}
			return ""
		},
	}
}
