package ir

import (
	"reflect"
)

// FastEqual reports equality with an identity shortcut: the same object is
// equal to itself without structural comparison. Transformation passes use
// it pervasively to detect no-op rule results cheaply.
func FastEqual(a, b Node) bool {
	if a == b {
		return true
	}
	return Equal(a, b)
}

// Equal reports structural equality: same variant tag and recursively
// equal argument vectors. It is order-sensitive and consistent with Hash.
func Equal(a, b Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name() != b.Name() {
		return false
	}
	aArgs, bArgs := a.Args(), b.Args()
	if len(aArgs) != len(bArgs) {
		return false
	}
	for i := range aArgs {
		if !argEqual(aArgs[i], bArgs[i]) {
			return false
		}
	}
	return true
}

func argEqual(a, b Arg) bool {
	if a.Role != b.Role {
		return false
	}
	switch a.Role {
	case Child:
		return Equal(a.Value.(Node), b.Value.(Node))
	case ChildOption:
		an, bn := OptionValue(a.Value), OptionValue(b.Value)
		if an == nil || bn == nil {
			return an == nil && bn == nil
		}
		return Equal(an, bn)
	case ChildPair:
		ap, bp := a.Value.([2]Node), b.Value.([2]Node)
		return Equal(ap[0], bp[0]) && Equal(ap[1], bp[1])
	case ChildSlice:
		as, bs := a.Value.([]Node), b.Value.([]Node)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	default:
		return opaqueEqual(a.Value, b.Value)
	}
}

// opaqueEqual compares auxiliary slot values. Nodes of another family may
// appear here (e.g. expressions held by a plan); they compare structurally
// so that independently built vectors are equal regardless of origins or
// cached state.
func opaqueEqual(a, b any) bool {
	switch av := a.(type) {
	case Node:
		bv, ok := b.(Node)
		return ok && Equal(av, bv)
	case []Node:
		bv, ok := b.([]Node)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
