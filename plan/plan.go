package plan

import (
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// NamedTable is a leaf plan reading one table.
type NamedTable struct {
	ir.Base
	Table string
}

func NewNamedTable(table string) *NamedTable {
	return &NamedTable{Base: ir.NewBase(), Table: table}
}

func (t *NamedTable) Name() string { return "NamedTable" }

func (t *NamedTable) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "table", Role: ir.Opaque, Value: t.Table},
	}
}

func (t *NamedTable) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("NamedTable", args, 1); err != nil {
		return nil, err
	}
	table, err := ir.Value[string]("NamedTable", args, 0)
	if err != nil {
		return nil, err
	}
	return NewNamedTable(table), nil
}

// Filter keeps the input rows satisfying Condition.
type Filter struct {
	ir.Base
	Input     ir.Node
	Condition ir.Node
}

func NewFilter(input, condition ir.Node) *Filter {
	return &Filter{Base: ir.NewBase(), Input: input, Condition: condition}
}

func (f *Filter) Name() string { return "Filter" }

func (f *Filter) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "input", Role: ir.Child, Value: f.Input},
		{Name: "condition", Role: ir.Opaque, Value: f.Condition},
	}
}

func (f *Filter) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Filter", args, 2); err != nil {
		return nil, err
	}
	input, err := ir.NodeValue("Filter", args, 0)
	if err != nil {
		return nil, err
	}
	cond, err := ir.NodeValue("Filter", args, 1)
	if err != nil {
		return nil, err
	}
	return NewFilter(input, cond), nil
}

// Project evaluates Columns over the input rows.
type Project struct {
	ir.Base
	Input   ir.Node
	Columns []ir.Node
}

func NewProject(input ir.Node, columns []ir.Node) *Project {
	return &Project{Base: ir.NewBase(), Input: input, Columns: columns}
}

func (p *Project) Name() string { return "Project" }

func (p *Project) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "input", Role: ir.Child, Value: p.Input},
		{Name: "columns", Role: ir.Opaque, Value: p.Columns},
	}
}

func (p *Project) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Project", args, 2); err != nil {
		return nil, err
	}
	input, err := ir.NodeValue("Project", args, 0)
	if err != nil {
		return nil, err
	}
	cols, err := ir.NodesValue("Project", args, 1)
	if err != nil {
		return nil, err
	}
	return NewProject(input, cols), nil
}

// JoinKind selects the join semantics.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

func (k JoinKind) String() string {
	s, ok := map[JoinKind]string{
		InnerJoin: "inner",
		LeftJoin:  "left",
		RightJoin: "right",
		FullJoin:  "full",
		CrossJoin: "cross",
	}[k]
	if ok {
		return s
	}
	return "<unknown join kind>"
}

// Join combines two input plans; On is nil for cross joins.
type Join struct {
	ir.Base
	Left  ir.Node
	Right ir.Node
	On    ir.Node
	Kind  JoinKind
}

func NewJoin(left, right, on ir.Node, kind JoinKind) *Join {
	return &Join{Base: ir.NewBase(), Left: left, Right: right, On: on, Kind: kind}
}

func (j *Join) Name() string { return "Join" }

func (j *Join) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "left", Role: ir.Child, Value: j.Left},
		{Name: "right", Role: ir.Child, Value: j.Right},
		{Name: "on", Role: ir.Opaque, Value: j.On},
		{Name: "kind", Role: ir.Opaque, Value: j.Kind},
	}
}

func (j *Join) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Join", args, 4); err != nil {
		return nil, err
	}
	left, err := ir.NodeValue("Join", args, 0)
	if err != nil {
		return nil, err
	}
	right, err := ir.NodeValue("Join", args, 1)
	if err != nil {
		return nil, err
	}
	// On stays nil for cross joins.
	on := ir.OptionValue(args[2].Value)
	kind, err := ir.Value[JoinKind]("Join", args, 3)
	if err != nil {
		return nil, err
	}
	return NewJoin(left, right, on, kind), nil
}

// Union concatenates its inputs; Distinct deduplicates.
type Union struct {
	ir.Base
	Inputs   []ir.Node
	Distinct bool
}

func NewUnion(inputs []ir.Node, distinct bool) *Union {
	return &Union{Base: ir.NewBase(), Inputs: inputs, Distinct: distinct}
}

func (u *Union) Name() string { return "Union" }

func (u *Union) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "inputs", Role: ir.ChildSlice, Value: u.Inputs},
		{Name: "distinct", Role: ir.Opaque, Value: u.Distinct},
	}
}

func (u *Union) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Union", args, 2); err != nil {
		return nil, err
	}
	inputs, err := ir.NodesValue("Union", args, 0)
	if err != nil {
		return nil, err
	}
	distinct, err := ir.Value[bool]("Union", args, 1)
	if err != nil {
		return nil, err
	}
	return NewUnion(inputs, distinct), nil
}

// Limit caps the number of input rows at Count (an expression, normally a
// literal).
type Limit struct {
	ir.Base
	Input ir.Node
	Count ir.Node
}

func NewLimit(input, count ir.Node) *Limit {
	return &Limit{Base: ir.NewBase(), Input: input, Count: count}
}

func (l *Limit) Name() string { return "Limit" }

func (l *Limit) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "input", Role: ir.Child, Value: l.Input},
		{Name: "count", Role: ir.Opaque, Value: l.Count},
	}
}

func (l *Limit) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Limit", args, 2); err != nil {
		return nil, err
	}
	input, err := ir.NodeValue("Limit", args, 0)
	if err != nil {
		return nil, err
	}
	count, err := ir.NodeValue("Limit", args, 1)
	if err != nil {
		return nil, err
	}
	return NewLimit(input, count), nil
}
