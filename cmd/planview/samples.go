package main

import (
	"sort"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/origin"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/plan"
)

// samplePlans are built under synthetic origins so origin propagation is
// visible in the yaml dump.
func samplePlans() map[string]ir.Node {
	at := func(line int, name string, f func() ir.Node) ir.Node {
		return origin.Apply(origin.Origin{
			Line:       line,
			ObjectType: "sample",
			ObjectName: name,
		}, f)
	}
	return map[string]ir.Node{
		"catalog": at(1, "catalog", func() ir.Node {
			return plan.NewProject(
				plan.NewFilter(
					plan.NewNamedTable("catalog_sales"),
					plan.NewBinary(">", plan.NewColumn("cs_quantity"), plan.NewLiteral(10)),
				),
				[]ir.Node{plan.NewColumn("cs_item_sk"), plan.NewColumn("cs_quantity")},
			)
		}),
		"join": at(2, "join", func() ir.Node {
			return plan.NewLimit(
				plan.NewJoin(
					plan.NewNamedTable("store_sales"),
					plan.NewNamedTable("item"),
					plan.NewBinary("=", plan.NewColumn("ss_item_sk"), plan.NewColumn("i_item_sk")),
					plan.InnerJoin,
				),
				plan.NewLiteral(100),
			)
		}),
		"union": at(3, "union", func() ir.Node {
			return plan.NewUnion([]ir.Node{
				plan.NewNamedTable("returns_2023"),
				plan.NewNamedTable("returns_2024"),
			}, true)
		}),
		"exists": at(4, "exists", func() ir.Node {
			return plan.NewFilter(
				plan.NewNamedTable("customer"),
				plan.NewExistsSubquery(
					plan.NewFilter(
						plan.NewNamedTable("orders"),
						plan.NewBinary("=", plan.NewColumn("o_custkey"), plan.NewColumn("c_custkey")),
					),
				),
			)
		}),
	}
}

func sampleNames() []string {
	plans := samplePlans()
	names := make([]string, 0, len(plans))
	for name := range plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
