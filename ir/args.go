package ir

// Helpers for writing Make implementations. They turn shape and type
// mismatches into ReconstructError values rather than panics, so the
// reconstruction boundary can wrap them with tree context.

// CheckArity reports a ReconstructError when the argument vector does not
// have exactly want slots.
func CheckArity(variant string, args []Arg, want int) error {
	if len(args) != want {
		return &ReconstructError{Variant: variant, Arity: len(args)}
	}
	return nil
}

// NodeValue extracts the node held by slot i.
func NodeValue(variant string, args []Arg, i int) (Node, error) {
	n, ok := args[i].Value.(Node)
	if !ok || n == nil {
		return nil, &ReconstructError{
			Variant: variant,
			Arity:   len(args),
			Reason:  "arg " + args[i].Name + " is not a node",
		}
	}
	return n, nil
}

// NodesValue extracts the node slice held by slot i.
func NodesValue(variant string, args []Arg, i int) ([]Node, error) {
	ns, ok := args[i].Value.([]Node)
	if !ok {
		return nil, &ReconstructError{
			Variant: variant,
			Arity:   len(args),
			Reason:  "arg " + args[i].Name + " is not a node sequence",
		}
	}
	return ns, nil
}

// Value extracts the T held by slot i.
func Value[T any](variant string, args []Arg, i int) (T, error) {
	v, ok := args[i].Value.(T)
	if !ok {
		var zero T
		return zero, &ReconstructError{
			Variant: variant,
			Arity:   len(args),
			Reason:  "arg " + args[i].Name + " has the wrong type",
		}
	}
	return v, nil
}
