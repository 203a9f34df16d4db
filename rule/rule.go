// Package rule builds ir.Rule values: predicate/transform pairs,
// first-match composition, and predicates compiled from expression-language
// source for interactive use.
package rule

import (
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// When pairs a structural predicate with a transform.
func When(pred func(ir.Node) bool, fn func(ir.Node) ir.Node) ir.Rule {
	return func(n ir.Node) (ir.Node, bool) {
		if !pred(n) {
			return nil, false
		}
		return fn(n), true
	}
}

// Named restricts fn to nodes of one variant.
func Named(variant string, fn func(ir.Node) ir.Node) ir.Rule {
	return When(func(n ir.Node) bool { return n.Name() == variant }, fn)
}

// Chain composes rules first-match-wins: the first rule that matches a
// node supplies the replacement, the rest are not consulted for it.
func Chain(rules ...ir.Rule) ir.Rule {
	return func(n ir.Node) (ir.Node, bool) {
		for _, r := range rules {
			if out, ok := r(n); ok {
				return out, true
			}
		}
		return nil, false
	}
}
