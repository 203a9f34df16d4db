package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/plan"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/rule"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/treediff"
)

type namedRewrite struct {
	pred func(ir.Node) bool
	fn   func(ir.Node) ir.Node
}

func builtinRewrites() map[string]namedRewrite {
	return map[string]namedRewrite{
		"upper-tables": {
			pred: func(n ir.Node) bool {
				_, ok := n.(*plan.NamedTable)
				return ok
			},
			fn: func(n ir.Node) ir.Node {
				t := n.(*plan.NamedTable)
				return plan.NewNamedTable(strings.ToUpper(t.Table))
			},
		},
		"drop-limit": {
			pred: func(n ir.Node) bool {
				_, ok := n.(*plan.Limit)
				return ok
			},
			fn: func(n ir.Node) ir.Node {
				return n.(*plan.Limit).Input
			},
		},
	}
}

func rewriteNames() []string {
	rws := builtinRewrites()
	names := make([]string, 0, len(rws))
	for name := range rws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rewrite(cfg *RewriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rewrite.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: need a rewrite name (have %v)", cli.ErrUsage, rewriteNames())
	}
	rw, ok := builtinRewrites()[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown rewrite %q (have %v)", cli.ErrUsage, args[0], rewriteNames())
	}
	pred := rw.pred
	if cfg.Match != "" {
		exprPred, err := rule.Pred(cfg.Match)
		if err != nil {
			return fmt.Errorf("%w: bad match expression: %w", cli.ErrUsage, err)
		}
		base := pred
		pred = func(n ir.Node) bool {
			return base(n) && exprPred(n)
		}
	}
	r := rule.When(pred, rw.fn)

	plans := args[1:]
	if len(plans) == 0 {
		plans = sampleNames()
	}
	for i, name := range plans {
		before, err := samplePlan(name)
		if err != nil {
			return err
		}
		after, err := applyRewrite(before, r, cfg.Up)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "-- %s\n", name)
		if ir.FastEqual(before, after) {
			fmt.Fprintln(cc.Out, "(unchanged)")
		} else {
			fmt.Fprint(cc.Out, treediff.Text(before, after))
		}
		if i < len(plans)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

func applyRewrite(p ir.Node, r ir.Rule, up bool) (ir.Node, error) {
	if up {
		return ir.TransformUp(p, r)
	}
	return ir.TransformDown(p, r)
}
