package ir

// Test variants covering every argument role.

type leaf struct {
	Base
	id string
}

func newLeaf(id string) *leaf {
	return &leaf{Base: NewBase(), id: id}
}

func (l *leaf) Name() string { return "Leaf" }

func (l *leaf) Args() []Arg {
	return []Arg{{Name: "id", Role: Opaque, Value: l.id}}
}

func (l *leaf) Make(args []Arg) (Node, error) {
	if err := CheckArity("Leaf", args, 1); err != nil {
		return nil, err
	}
	id, err := Value[string]("Leaf", args, 0)
	if err != nil {
		return nil, err
	}
	return newLeaf(id), nil
}

type box struct {
	Base
	kid  Node
	note string
}

func newBox(kid Node, note string) *box {
	return &box{Base: NewBase(), kid: kid, note: note}
}

func (b *box) Name() string { return "Box" }

func (b *box) Args() []Arg {
	return []Arg{
		{Name: "kid", Role: Child, Value: b.kid},
		{Name: "note", Role: Opaque, Value: b.note},
	}
}

func (b *box) Make(args []Arg) (Node, error) {
	if err := CheckArity("Box", args, 2); err != nil {
		return nil, err
	}
	kid, err := NodeValue("Box", args, 0)
	if err != nil {
		return nil, err
	}
	note, err := Value[string]("Box", args, 1)
	if err != nil {
		return nil, err
	}
	return newBox(kid, note), nil
}

type branch struct {
	Base
	kids []Node
}

func newBranch(kids ...Node) *branch {
	return &branch{Base: NewBase(), kids: kids}
}

func (b *branch) Name() string { return "Branch" }

func (b *branch) Args() []Arg {
	return []Arg{{Name: "kids", Role: ChildSlice, Value: b.kids}}
}

func (b *branch) Make(args []Arg) (Node, error) {
	if err := CheckArity("Branch", args, 1); err != nil {
		return nil, err
	}
	kids, err := NodesValue("Branch", args, 0)
	if err != nil {
		return nil, err
	}
	return newBranch(kids...), nil
}

type pair struct {
	Base
	kids [2]Node
}

func newPair(a, b Node) *pair {
	return &pair{Base: NewBase(), kids: [2]Node{a, b}}
}

func (p *pair) Name() string { return "Pair" }

func (p *pair) Args() []Arg {
	return []Arg{{Name: "kids", Role: ChildPair, Value: p.kids}}
}

func (p *pair) Make(args []Arg) (Node, error) {
	if err := CheckArity("Pair", args, 1); err != nil {
		return nil, err
	}
	kids, err := Value[[2]Node]("Pair", args, 0)
	if err != nil {
		return nil, err
	}
	return newPair(kids[0], kids[1]), nil
}

type opt struct {
	Base
	kid Node // nil when absent
}

func newOpt(kid Node) *opt {
	return &opt{Base: NewBase(), kid: kid}
}

func (o *opt) Name() string { return "Opt" }

func (o *opt) Args() []Arg {
	var v any
	if o.kid != nil {
		v = o.kid
	}
	return []Arg{{Name: "kid", Role: ChildOption, Value: v}}
}

func (o *opt) Make(args []Arg) (Node, error) {
	if err := CheckArity("Opt", args, 1); err != nil {
		return nil, err
	}
	return newOpt(OptionValue(args[0].Value)), nil
}

// tagged holds a pointer-valued opaque slot, for the hash/equality
// consistency checks.
type tagged struct {
	Base
	ref *int
}

func newTagged(ref *int) *tagged {
	return &tagged{Base: NewBase(), ref: ref}
}

func (t *tagged) Name() string { return "Tagged" }

func (t *tagged) Args() []Arg {
	return []Arg{{Name: "ref", Role: Opaque, Value: t.ref}}
}

func (t *tagged) Make(args []Arg) (Node, error) {
	if err := CheckArity("Tagged", args, 1); err != nil {
		return nil, err
	}
	ref, err := Value[*int]("Tagged", args, 0)
	if err != nil {
		return nil, err
	}
	return newTagged(ref), nil
}

// brittle refuses reconstruction, for exercising the error boundary.
type brittle struct {
	Base
	kid Node
}

func newBrittle(kid Node) *brittle {
	return &brittle{Base: NewBase(), kid: kid}
}

func (b *brittle) Name() string { return "Brittle" }

func (b *brittle) Args() []Arg {
	return []Arg{{Name: "kid", Role: Child, Value: b.kid}}
}

func (b *brittle) Make(args []Arg) (Node, error) {
	return nil, &ReconstructError{Variant: "Brittle", Arity: len(args)}
}
