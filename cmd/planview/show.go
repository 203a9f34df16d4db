package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/render"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = sampleNames()
	}
	for i, name := range args {
		p, err := samplePlan(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "-- %s\n", name)
		if err := showPlan(cfg.MainConfig, cc.Out, p); err != nil {
			return err
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

func samplePlan(name string) (ir.Node, error) {
	p, ok := samplePlans()[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown plan %q (have %v)", cli.ErrUsage, name, sampleNames())
	}
	return p, nil
}

func showPlan(cfg *MainConfig, w io.Writer, p ir.Node) error {
	if cfg.YAML {
		y, err := render.YAMLString(p)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, y)
		return err
	}
	opts := cfg.renderOpts()
	if cfg.Numbered {
		_, err := io.WriteString(w, opts.NumberedTreeString(p))
		return err
	}
	_, err := io.WriteString(w, opts.TreeString(p))
	return err
}
