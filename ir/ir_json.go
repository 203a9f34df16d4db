package ir

import (
	"encoding/json"
)

// jsonNode is the generic JSON form of a node: the variant tag and the
// argument vector, with child slots recursed. The form is self-describing
// and independent of any concrete variant catalog, which makes it useful
// for structural diffing and debug dumps in contexts without the variant
// types at hand.
type jsonNode struct {
	Name   string    `json:"name"`
	Origin string    `json:"origin,omitempty"`
	Args   []jsonArg `json:"args,omitempty"`
}

type jsonArg struct {
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role"`
	Value any    `json:"value,omitempty"`
}

// JSONForm returns the generic marshalable form of n.
func JSONForm(n Node) any {
	if n == nil {
		return nil
	}
	jn := jsonNode{Name: n.Name()}
	if o := n.Origin(); !o.IsZero() {
		jn.Origin = o.String()
	}
	for _, a := range n.Args() {
		ja := jsonArg{Name: a.Name, Role: a.Role}
		switch a.Role {
		case Child:
			ja.Value = JSONForm(a.Value.(Node))
		case ChildOption:
			if c := OptionValue(a.Value); c != nil {
				ja.Value = JSONForm(c)
			}
		case ChildPair:
			p := a.Value.([2]Node)
			ja.Value = []any{JSONForm(p[0]), JSONForm(p[1])}
		case ChildSlice:
			ja.Value = jsonForms(a.Value.([]Node))
		default:
			ja.Value = jsonOpaque(a.Value)
		}
		jn.Args = append(jn.Args, ja)
	}
	return jn
}

func jsonForms(ns []Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = JSONForm(n)
	}
	return out
}

func jsonOpaque(v any) any {
	switch vv := v.(type) {
	case Node:
		return JSONForm(vv)
	case []Node:
		return jsonForms(vv)
	}
	if _, err := json.Marshal(v); err != nil {
		// Unmarshalable auxiliary data degrades to its printed form.
		return Describe{}.valueString(v)
	}
	return v
}

// MarshalJSON marshals the generic JSON form of n.
func MarshalJSON(n Node) ([]byte, error) {
	return json.Marshal(JSONForm(n))
}
