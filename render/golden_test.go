package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/plan"
)

func TestTreeStringGolden(t *testing.T) {
	p := plan.NewProject(
		plan.NewFilter(
			plan.NewJoin(
				plan.NewNamedTable("store_sales"),
				plan.NewJoin(plan.NewNamedTable("item"), plan.NewNamedTable("promotion"), nil, plan.CrossJoin),
				plan.NewBinary("=", plan.NewColumn("ss_item_sk"), plan.NewColumn("i_item_sk")),
				plan.InnerJoin,
			),
			plan.NewBinary(">", plan.NewColumn("ss_quantity"), plan.NewLiteral(5)),
		),
		[]ir.Node{
			plan.NewColumn("ss_item_sk"),
			plan.NewAlias(plan.NewColumn("ss_quantity"), "qty"),
		},
	)
	g := goldie.New(t)
	g.Assert(t, "project_join", []byte(TreeString(p)))
}

func TestNumberedTreeStringGolden(t *testing.T) {
	p := plan.NewUnion([]ir.Node{
		plan.NewNamedTable("a"),
		plan.NewLimit(plan.NewNamedTable("b"), plan.NewLiteral(10)),
	}, true)
	g := goldie.New(t)
	g.Assert(t, "union_numbered", []byte(NumberedTreeString(p)))
}
