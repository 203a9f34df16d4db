package ir

import (
	"fmt"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/debug"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/origin"
)

// Rule is a conditional rewrite: a partial mapping from a node to a
// replacement node of the same family. ok=false means the rule declines to
// match and the node passes through unchanged.
type Rule func(Node) (Node, bool)

// MakeCopy rebuilds n as a new instance of the same variant from a full
// replacement argument vector. The ambient origin is set to n's origin for
// the duration, so the new instance inherits n's provenance. Failures are
// wrapped as a TreeError carrying n's rendered description; this is the
// only boundary where the engine wraps errors.
func MakeCopy(n Node, args []Arg) (Node, error) {
	type res struct {
		node Node
		err  error
	}
	r := origin.Apply(n.Origin(), func() res {
		out, err := n.Make(args)
		return res{node: out, err: err}
	})
	if r.err != nil {
		return nil, &TreeError{
			Tree: SimpleString(n, DefaultMaxFields),
			Msg:  "make copy failed",
			Err:  r.err,
		}
	}
	return r.node, nil
}

// WithNewChildren returns n with its children replaced positionally by
// newChildren, which must have exactly len(Children(n)) elements; a
// mismatch is a programmer error in the calling pass and panics. A
// replacement that is fast-equal to the child it replaces keeps the
// original reference; when no position changes, n itself is returned, so
// callers can detect a no-op by identity.
func WithNewChildren(n Node, newChildren []Node) (Node, error) {
	if want := len(Children(n)); len(newChildren) != want {
		panic(fmt.Sprintf("ir: WithNewChildren(%s): %d replacements for %d children",
			n.Name(), len(newChildren), want))
	}
	args, changed := substituteChildren(n, newChildren, false)
	if !changed {
		return n, nil
	}
	return MakeCopy(n, args)
}

// substituteChildren routes repl through the child-role slots of n's
// argument vector, in order, leaving opaque slots untouched. With force
// set, replacements are taken even when fast-equal to the original.
func substituteChildren(n Node, repl []Node, force bool) ([]Arg, bool) {
	changed := force
	next := 0
	take := func(old Node) Node {
		c := repl[next]
		next++
		if !force && FastEqual(old, c) {
			return old
		}
		if c != old {
			changed = true
		}
		return c
	}
	args := n.Args()
	out := make([]Arg, len(args))
	for i, a := range args {
		na := a
		switch a.Role {
		case Child:
			na.Value = take(a.Value.(Node))
		case ChildOption:
			if c := OptionValue(a.Value); c != nil {
				na.Value = take(c)
			}
		case ChildPair:
			p := a.Value.([2]Node)
			na.Value = [2]Node{take(p[0]), take(p[1])}
		case ChildSlice:
			s := a.Value.([]Node)
			ns := make([]Node, len(s))
			for j, c := range s {
				ns[j] = take(c)
			}
			na.Value = ns
		}
		out[i] = na
	}
	return out, changed
}

// MapChildren replaces each child with f(child), preserving identity when
// nothing changes.
func MapChildren(n Node, f func(Node) (Node, error)) (Node, error) {
	kids := Children(n)
	if len(kids) == 0 {
		return n, nil
	}
	newKids := make([]Node, len(kids))
	for i, c := range kids {
		nc, err := f(c)
		if err != nil {
			return nil, err
		}
		newKids[i] = nc
	}
	return WithNewChildren(n, newKids)
}

// TransformDown applies rule to n first, then recurses into the children
// of the result (of the original when the rule declined or was a no-op).
// When neither the rule nor recursion changes anything, n itself is
// returned.
func TransformDown(n Node, rule Rule) (Node, error) {
	after := applyRule(n, rule)
	if FastEqual(n, after) {
		// Unchanged by the rule (possibly a fresh but equal node):
		// keep the original so a no-op pass preserves identity.
		after = n
	} else if debug.Transform() {
		debug.Logf("transform down: %s => %s\n", n.Name(), after.Name())
	}
	return MapChildren(after, func(c Node) (Node, error) {
		return TransformDown(c, rule)
	})
}

// TransformUp transforms children first, then applies rule to the node
// with its children already rewritten, so the rule sees the final shape of
// its subtree. When neither recursion nor the rule changes anything, n
// itself is returned.
func TransformUp(n Node, rule Rule) (Node, error) {
	withKids, err := MapChildren(n, func(c Node) (Node, error) {
		return TransformUp(c, rule)
	})
	if err != nil {
		return nil, err
	}
	after := applyRule(withKids, rule)
	if FastEqual(withKids, after) {
		return withKids, nil
	}
	if debug.Transform() {
		debug.Logf("transform up: %s => %s\n", withKids.Name(), after.Name())
	}
	return after, nil
}

// applyRule runs the rule with the ambient origin set to the node's own,
// so nodes freshly constructed by the rule inherit a sensible source tag.
func applyRule(n Node, rule Rule) Node {
	return origin.Apply(n.Origin(), func() Node {
		if out, ok := rule(n); ok && out != nil {
			return out
		}
		return n
	})
}

// Clone returns a forced deep copy of n: every node in the primary
// children relationship is physically duplicated even though structurally
// unchanged. Opaque argument slots are carried over as-is.
func Clone(n Node) (Node, error) {
	kids := Children(n)
	newKids := make([]Node, len(kids))
	for i, c := range kids {
		cc, err := Clone(c)
		if err != nil {
			return nil, err
		}
		newKids[i] = cc
	}
	args, _ := substituteChildren(n, newKids, true)
	return MakeCopy(n, args)
}
