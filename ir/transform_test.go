package ir

import (
	"errors"
	"strings"
	"testing"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/origin"
)

func renameLeaf(from, to string) Rule {
	return func(n Node) (Node, bool) {
		l, ok := n.(*leaf)
		if !ok || l.id != from {
			return nil, false
		}
		return newLeaf(to), true
	}
}

func TestTransformNoOpIdentity(t *testing.T) {
	n, _, _ := walkTree()
	never := func(Node) (Node, bool) { return nil, false }

	down, err := TransformDown(n, never)
	if err != nil {
		t.Fatal(err)
	}
	if down != n {
		t.Error("TransformDown with no matches did not return the original reference")
	}
	up, err := TransformUp(n, never)
	if err != nil {
		t.Fatal(err)
	}
	if up != n {
		t.Error("TransformUp with no matches did not return the original reference")
	}
}

func TestTransformEqualResultKeepsIdentity(t *testing.T) {
	n, _, _ := walkTree()
	// The rule rebuilds every leaf identically; fast-equals must detect
	// the no-op and keep the original tree.
	rebuild := func(m Node) (Node, bool) {
		l, ok := m.(*leaf)
		if !ok {
			return nil, false
		}
		return newLeaf(l.id), true
	}
	down, err := TransformDown(n, rebuild)
	if err != nil {
		t.Fatal(err)
	}
	if down != n {
		t.Error("structurally equal rule output did not preserve identity")
	}
}

func TestTransformRewritesAndShares(t *testing.T) {
	a, b := newLeaf("a"), newLeaf("b")
	inner := newBox(a, "x")
	root := newBranch(inner, b)

	out, err := TransformUp(root, renameLeaf("a", "A"))
	if err != nil {
		t.Fatal(err)
	}
	if out == root {
		t.Fatal("matched transform returned the original reference")
	}
	got := out.(*branch)
	// The path to the rewritten leaf is new...
	if got.kids[0] == inner {
		t.Error("parent of rewritten leaf was not rebuilt")
	}
	if got.kids[0].(*box).kid.(*leaf).id != "A" {
		t.Error("leaf not rewritten")
	}
	// ...while the untouched subtree is shared by reference.
	if got.kids[1] != b {
		t.Error("untouched subtree was copied")
	}
}

func TestTransformOrdering(t *testing.T) {
	// Match Box only when its child has already been rewritten to "A":
	// observable under TransformUp, invisible under TransformDown.
	dependent := func(n Node) (Node, bool) {
		bx, ok := n.(*box)
		if !ok {
			return nil, false
		}
		l, ok := bx.kid.(*leaf)
		if !ok || l.id != "A" {
			return nil, false
		}
		return newBox(bx.kid, "saw-A"), true
	}
	both := Chain2(renameLeaf("a", "A"), dependent)

	mk := func() Node { return newBox(newLeaf("a"), "x") }

	up, err := TransformUp(mk(), both)
	if err != nil {
		t.Fatal(err)
	}
	if up.(*box).note != "saw-A" {
		t.Errorf("TransformUp: dependent rule did not see rewritten child, note = %q", up.(*box).note)
	}

	down, err := TransformDown(mk(), both)
	if err != nil {
		t.Fatal(err)
	}
	if down.(*box).note != "x" {
		t.Errorf("TransformDown: dependent rule matched before child rewrite, note = %q", down.(*box).note)
	}
	if down.(*box).kid.(*leaf).id != "A" {
		t.Error("TransformDown: leaf not rewritten")
	}
}

// Chain2 is a tiny first-match-wins combinator for tests; the rule
// package provides the exported equivalent.
func Chain2(a, b Rule) Rule {
	return func(n Node) (Node, bool) {
		if out, ok := a(n); ok {
			return out, true
		}
		return b(n)
	}
}

func TestWithNewChildrenArity(t *testing.T) {
	n := newBranch(newLeaf("a"), newLeaf("b"))
	defer func() {
		if recover() == nil {
			t.Error("arity mismatch did not panic")
		}
	}()
	WithNewChildren(n, []Node{newLeaf("a")})
}

func TestWithNewChildrenIdentity(t *testing.T) {
	a, b := newLeaf("a"), newLeaf("b")
	n := newBranch(a, b)
	out, err := WithNewChildren(n, []Node{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if out != n {
		t.Error("unchanged children did not preserve identity")
	}
	// Structurally equal replacements keep the original references too.
	out, err = WithNewChildren(n, []Node{newLeaf("a"), newLeaf("b")})
	if err != nil {
		t.Fatal(err)
	}
	if out != n {
		t.Error("fast-equal replacements did not preserve identity")
	}
}

func TestWithNewChildrenRoutesContainers(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"pair", newPair(newLeaf("a"), newLeaf("b"))},
		{"option", newOpt(newLeaf("a"))},
		{"slice", newBranch(newLeaf("a"), newLeaf("b"), newLeaf("c"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kids := Children(tt.node)
			repl := make([]Node, len(kids))
			for i := range kids {
				repl[i] = newLeaf("r")
			}
			out, err := WithNewChildren(tt.node, repl)
			if err != nil {
				t.Fatal(err)
			}
			got := Children(out)
			if len(got) != len(kids) {
				t.Fatalf("child count changed: %d -> %d", len(kids), len(got))
			}
			for i, c := range got {
				if c != repl[i] {
					t.Errorf("child %d not routed to replacement", i)
				}
			}
		})
	}
}

func TestOptionWithoutChildUnaffected(t *testing.T) {
	n := newOpt(nil)
	out, err := WithNewChildren(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != n {
		t.Error("empty option node rebuilt for no reason")
	}
}

func TestClone(t *testing.T) {
	n, _, _ := walkTree()
	c, err := Clone(n)
	if err != nil {
		t.Fatal(err)
	}
	if c == n {
		t.Fatal("clone returned the original")
	}
	if !Equal(c, n) {
		t.Fatal("clone not structurally equal")
	}
	// Forced copy: no shared nodes along the children relationship.
	seen := map[Node]bool{}
	Foreach(n, func(m Node) { seen[m] = true })
	Foreach(c, func(m Node) {
		if seen[m] {
			t.Errorf("clone shares node %s", m.Name())
		}
	})
}

func TestMakeCopyWrapsReconstructError(t *testing.T) {
	n := newBrittle(newLeaf("a"))
	_, err := TransformDown(n, renameLeaf("a", "A"))
	if err == nil {
		t.Fatal("expected reconstruction failure")
	}
	var te *TreeError
	if !errors.As(err, &te) {
		t.Fatalf("error %T is not a TreeError", err)
	}
	if !errors.Is(err, ErrReconstruct) {
		t.Error("TreeError does not wrap ErrReconstruct")
	}
	if !strings.Contains(te.Tree, "Brittle") {
		t.Errorf("TreeError tree %q does not render the offending node", te.Tree)
	}
}

func TestTransformPropagatesOrigin(t *testing.T) {
	o := origin.Origin{Line: 7, StartColumn: 3, ObjectName: "q1"}
	n := origin.Apply(o, func() Node {
		return newBox(newLeaf("a"), "x")
	})
	out, err := TransformDown(n, renameLeaf("a", "A"))
	if err != nil {
		t.Fatal(err)
	}
	// The replacement leaf was constructed inside the rule with no
	// explicit origin; it inherits the origin of the node it replaced.
	got := out.(*box).kid.Origin()
	if got.Line != 7 || got.ObjectName != "q1" {
		t.Errorf("replacement origin = %+v, want line=7 object=q1", got)
	}
	if origin.Get() != (origin.Origin{}) {
		t.Error("ambient origin leaked out of the transform")
	}
}

func TestAttachTree(t *testing.T) {
	n := newLeaf("a")
	cause := errors.New("rule exploded")
	err := AttachTree(n, "applying rule", func() error { return cause })
	var te *TreeError
	if !errors.As(err, &te) {
		t.Fatalf("error %T is not a TreeError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not preserved")
	}
	if !strings.Contains(te.Tree, "Leaf") {
		t.Errorf("tree %q missing node rendering", te.Tree)
	}
	if AttachTree(n, "fine", func() error { return nil }) != nil {
		t.Error("AttachTree wrapped a nil error")
	}
}
