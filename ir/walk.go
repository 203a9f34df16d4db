package ir

// Traversal is pre-order unless noted: the node itself first, then its
// children left to right. All walks are total over finite trees; cyclic
// child graphs are disallowed by the ownership invariant.

// Find returns the first node satisfying pred, or nil, false.
func Find(n Node, pred func(Node) bool) (Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, c := range Children(n) {
		if found, ok := Find(c, pred); ok {
			return found, true
		}
	}
	return nil, false
}

// Foreach visits every node exactly once, pre-order.
func Foreach(n Node, f func(Node)) {
	f(n)
	for _, c := range Children(n) {
		Foreach(c, f)
	}
}

// ForeachUp visits every node exactly once, post-order.
func ForeachUp(n Node, f func(Node)) {
	for _, c := range Children(n) {
		ForeachUp(c, f)
	}
	f(n)
}

// Map applies f to every node, pre-order, collecting the results.
func Map[T any](n Node, f func(Node) T) []T {
	var out []T
	Foreach(n, func(m Node) {
		out = append(out, f(m))
	})
	return out
}

// FlatMap applies f to every node, pre-order, concatenating the results.
func FlatMap[T any](n Node, f func(Node) []T) []T {
	var out []T
	Foreach(n, func(m Node) {
		out = append(out, f(m)...)
	})
	return out
}

// Collect applies a partial function to every node, pre-order; nodes it
// declines (ok=false) contribute nothing.
func Collect[T any](n Node, f func(Node) (T, bool)) []T {
	var out []T
	Foreach(n, func(m Node) {
		if v, ok := f(m); ok {
			out = append(out, v)
		}
	})
	return out
}

// CollectFirst returns the result of the partial function on the first
// node it matches, pre-order.
func CollectFirst[T any](n Node, f func(Node) (T, bool)) (T, bool) {
	if v, ok := f(n); ok {
		return v, true
	}
	for _, c := range Children(n) {
		if v, ok := CollectFirst(c, f); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Leaves returns every node without children, pre-order.
func Leaves(n Node) []Node {
	return Collect(n, func(m Node) (Node, bool) {
		return m, len(Children(m)) == 0
	})
}
