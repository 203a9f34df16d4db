package ir

import (
	"fmt"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/origin"
)

// Role classifies one slot of a variant's argument vector.
type Role uint8

const (
	// Opaque marks auxiliary data that is copied as-is by the
	// reconstruction machinery.
	Opaque Role = iota
	// Child marks a slot holding exactly one child node.
	Child
	// ChildOption marks a slot holding a child node or nil.
	ChildOption
	// ChildPair marks a slot holding a [2]Node of children.
	ChildPair
	// ChildSlice marks a slot holding a []Node of children.
	ChildSlice
)

func (r Role) String() string {
	s, ok := map[Role]string{
		Opaque:      "opaque",
		Child:       "child",
		ChildOption: "child-option",
		ChildPair:   "child-pair",
		ChildSlice:  "children",
	}[r]
	if ok {
		return s
	}
	return "<unknown role>"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(d []byte) error {
	rr, ok := map[string]Role{
		"opaque":       Opaque,
		"child":        Child,
		"child-option": ChildOption,
		"child-pair":   ChildPair,
		"children":     ChildSlice,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized role %q", d)
	}
	*r = rr
	return nil
}

// IsChild reports whether the role routes through child nodes.
func (r Role) IsChild() bool {
	return r != Opaque
}

// Arg is one slot of a variant's argument vector.
type Arg struct {
	Name  string
	Role  Role
	Value any
}

// Node is the contract every tree variant satisfies. Implementations must
// be pointer-shaped (constructed by a New* function returning a pointer)
// so that interface identity is reference identity.
type Node interface {
	// Name returns the variant tag, e.g. "Filter".
	Name() string
	// Args returns the ordered argument vector, children included.
	Args() []Arg
	// Make builds a new instance of the same variant from a same-arity
	// argument vector. It reports a ReconstructError when the vector
	// cannot produce an instance.
	Make(args []Arg) (Node, error)
	// Origin returns the provenance captured at construction.
	Origin() origin.Origin
}

// Inner is implemented by variants carrying nested trees that are not part
// of the primary children relationship (e.g. embedded subqueries). Inner
// children participate in rendering and numbering only, never in
// transformation.
type Inner interface {
	Node
	InnerChildren() []Node
}

// Base carries the per-node state every variant embeds: the origin
// captured at construction and the lazily cached structural hash.
type Base struct {
	org    origin.Origin
	hash   uint64
	hashed bool
}

// NewBase captures the ambient origin. Every variant constructor starts
// with it.
func NewBase() Base {
	return Base{org: origin.Get()}
}

func (b *Base) Origin() origin.Origin {
	return b.org
}

func (b *Base) base() *Base { return b }

type hasBase interface {
	base() *Base
}

// Children returns the ordered direct children of n, derived from the
// child-role slots of its argument vector.
func Children(n Node) []Node {
	var kids []Node
	for _, a := range n.Args() {
		switch a.Role {
		case Child:
			kids = append(kids, a.Value.(Node))
		case ChildOption:
			if c := OptionValue(a.Value); c != nil {
				kids = append(kids, c)
			}
		case ChildPair:
			p := a.Value.([2]Node)
			kids = append(kids, p[0], p[1])
		case ChildSlice:
			kids = append(kids, a.Value.([]Node)...)
		}
	}
	return kids
}

// OptionValue unwraps a ChildOption slot value: nil, or the node it holds.
func OptionValue(v any) Node {
	if v == nil {
		return nil
	}
	n, ok := v.(Node)
	if !ok || n == nil {
		return nil
	}
	return n
}

// InnerChildrenOf returns n's inner children, nil for variants without
// them.
func InnerChildrenOf(n Node) []Node {
	if in, ok := n.(Inner); ok {
		return in.InnerChildren()
	}
	return nil
}

// ContainsChild reports whether c is one of n's direct children, by
// reference.
func ContainsChild(n, c Node) bool {
	for _, k := range Children(n) {
		if k == c {
			return true
		}
	}
	return false
}

// AllChildren returns children plus inner children. Rendering uses the set
// to suppress argument entries already shown as part of the tree layout.
func AllChildren(n Node) []Node {
	return append(Children(n), InnerChildrenOf(n)...)
}

func allChildSet(n Node) map[Node]bool {
	all := AllChildren(n)
	if len(all) == 0 {
		return nil
	}
	set := make(map[Node]bool, len(all))
	for _, c := range all {
		set[c] = true
	}
	return set
}
