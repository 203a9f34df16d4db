package plan

import (
	"fmt"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// exprString renders an expression for one-line plan descriptions.
func exprString(n ir.Node) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return ir.SimpleString(n, ir.DefaultMaxFields)
}

// Column references a column by name.
type Column struct {
	ir.Base
	Ident string
}

func NewColumn(ident string) *Column {
	return &Column{Base: ir.NewBase(), Ident: ident}
}

func (c *Column) Name() string { return "Column" }

func (c *Column) String() string { return c.Ident }

func (c *Column) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "ident", Role: ir.Opaque, Value: c.Ident},
	}
}

func (c *Column) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Column", args, 1); err != nil {
		return nil, err
	}
	ident, err := ir.Value[string]("Column", args, 0)
	if err != nil {
		return nil, err
	}
	return NewColumn(ident), nil
}

// Literal is a constant value.
type Literal struct {
	ir.Base
	Value any
}

func NewLiteral(v any) *Literal {
	return &Literal{Base: ir.NewBase(), Value: v}
}

func (l *Literal) Name() string { return "Literal" }

func (l *Literal) String() string {
	if s, ok := l.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", l.Value)
}

func (l *Literal) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "value", Role: ir.Opaque, Value: l.Value},
	}
}

func (l *Literal) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Literal", args, 1); err != nil {
		return nil, err
	}
	return NewLiteral(args[0].Value), nil
}

// Alias names its child expression.
type Alias struct {
	ir.Base
	Expr ir.Node
	As   string
}

func NewAlias(expr ir.Node, as string) *Alias {
	return &Alias{Base: ir.NewBase(), Expr: expr, As: as}
}

func (a *Alias) Name() string { return "Alias" }

func (a *Alias) String() string {
	return exprString(a.Expr) + " AS " + a.As
}

func (a *Alias) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "expr", Role: ir.Child, Value: a.Expr},
		{Name: "as", Role: ir.Opaque, Value: a.As},
	}
}

func (a *Alias) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Alias", args, 2); err != nil {
		return nil, err
	}
	expr, err := ir.NodeValue("Alias", args, 0)
	if err != nil {
		return nil, err
	}
	as, err := ir.Value[string]("Alias", args, 1)
	if err != nil {
		return nil, err
	}
	return NewAlias(expr, as), nil
}

// Binary applies an infix operator to two child expressions.
type Binary struct {
	ir.Base
	Op    string
	Left  ir.Node
	Right ir.Node
}

func NewBinary(op string, left, right ir.Node) *Binary {
	return &Binary{Base: ir.NewBase(), Op: op, Left: left, Right: right}
}

func (b *Binary) Name() string { return "Binary" }

func (b *Binary) String() string {
	return exprString(b.Left) + " " + b.Op + " " + exprString(b.Right)
}

func (b *Binary) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "op", Role: ir.Opaque, Value: b.Op},
		{Name: "operands", Role: ir.ChildPair, Value: [2]ir.Node{b.Left, b.Right}},
	}
}

func (b *Binary) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Binary", args, 2); err != nil {
		return nil, err
	}
	op, err := ir.Value[string]("Binary", args, 0)
	if err != nil {
		return nil, err
	}
	operands, err := ir.Value[[2]ir.Node]("Binary", args, 1)
	if err != nil {
		return nil, err
	}
	return NewBinary(op, operands[0], operands[1]), nil
}

// Not negates its child expression.
type Not struct {
	ir.Base
	Expr ir.Node
}

func NewNot(expr ir.Node) *Not {
	return &Not{Base: ir.NewBase(), Expr: expr}
}

func (n *Not) Name() string { return "Not" }

func (n *Not) String() string { return "NOT " + exprString(n.Expr) }

func (n *Not) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "expr", Role: ir.Child, Value: n.Expr},
	}
}

func (n *Not) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("Not", args, 1); err != nil {
		return nil, err
	}
	expr, err := ir.NodeValue("Not", args, 0)
	if err != nil {
		return nil, err
	}
	return NewNot(expr), nil
}

// ExistsSubquery tests whether Plan yields any row. The plan belongs to
// the other node family: it renders as an inner child of the expression
// but is never touched by expression transformations.
type ExistsSubquery struct {
	ir.Base
	Plan ir.Node
}

func NewExistsSubquery(p ir.Node) *ExistsSubquery {
	return &ExistsSubquery{Base: ir.NewBase(), Plan: p}
}

func (e *ExistsSubquery) Name() string { return "ExistsSubquery" }

func (e *ExistsSubquery) String() string { return "exists(...)" }

func (e *ExistsSubquery) Args() []ir.Arg {
	return []ir.Arg{
		{Name: "plan", Role: ir.Opaque, Value: e.Plan},
	}
}

func (e *ExistsSubquery) InnerChildren() []ir.Node {
	return []ir.Node{e.Plan}
}

func (e *ExistsSubquery) Make(args []ir.Arg) (ir.Node, error) {
	if err := ir.CheckArity("ExistsSubquery", args, 1); err != nil {
		return nil, err
	}
	p, err := ir.NodeValue("ExistsSubquery", args, 0)
	if err != nil {
		return nil, err
	}
	return NewExistsSubquery(p), nil
}
