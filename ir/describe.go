package ir

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFields bounds how many elements of a sequence-valued argument
// are rendered before truncation.
const DefaultMaxFields = 25

// Redacted replaces values of security-sensitive keys in rendered maps.
const Redacted = "*********(redacted)"

// Describe renders one-line node descriptions.
type Describe struct {
	// MaxFields caps rendered sequence elements; DefaultMaxFields when 0.
	MaxFields int
	// Redact matches map keys whose values must not be printed.
	Redact *regexp.Regexp
}

// SimpleString is Describe{MaxFields: maxFields}.Simple.
func SimpleString(n Node, maxFields int) string {
	return Describe{MaxFields: maxFields}.Simple(n)
}

// Simple returns the one-line description: variant name plus the argument
// string.
func (d Describe) Simple(n Node) string {
	as := d.ArgString(n)
	if as == "" {
		return n.Name()
	}
	return n.Name() + " " + as
}

// ArgString renders the non-child entries of the argument vector. Entries
// that are children, or collections wholly composed of children and inner
// children, are omitted: the tree layout already shows them.
func (d Describe) ArgString(n Node) string {
	if d.MaxFields == 0 {
		d.MaxFields = DefaultMaxFields
	}
	set := allChildSet(n)
	var parts []string
	for _, a := range n.Args() {
		if a.Role.IsChild() {
			continue
		}
		if s, ok := d.opaqueString(a.Value, set); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// ArgValueString renders one argument slot's value in isolation, with no
// child suppression. ok=false for values that render as nothing.
func (d Describe) ArgValueString(a Arg) (string, bool) {
	if d.MaxFields == 0 {
		d.MaxFields = DefaultMaxFields
	}
	return d.opaqueString(a.Value, nil)
}

func (d Describe) opaqueString(v any, children map[Node]bool) (string, bool) {
	switch vv := v.(type) {
	case nil:
		return "", false
	case Node:
		if children[vv] {
			return "", false
		}
		return d.valueString(vv), true
	case []Node:
		all := true
		for _, c := range vv {
			if !children[c] {
				all = false
				break
			}
		}
		if all {
			return "", false
		}
		elems := make([]string, len(vv))
		for i, c := range vv {
			elems[i] = d.valueString(c)
		}
		return d.truncated(elems), true
	case string:
		return vv, true
	case fmt.Stringer:
		return vv.String(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// Typed nils and empty collections are omitted, like untyped nil.
		if rv.Len() == 0 {
			return "", false
		}
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = d.valueString(rv.Index(i).Interface())
		}
		return d.truncated(elems), true
	case reflect.Map:
		if rv.Len() == 0 {
			return "", false
		}
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := d.valueString(iter.Key().Interface())
			val := d.valueString(iter.Value().Interface())
			if d.Redact != nil && d.Redact.MatchString(k) {
				val = Redacted
			}
			keys = append(keys, k)
			byKey[k] = val
		}
		sort.Strings(keys)
		elems := make([]string, len(keys))
		for i, k := range keys {
			elems[i] = k + "=" + byKey[k]
		}
		return "{" + strings.Join(d.truncate(elems), ", ") + "}", true
	}
	return d.valueString(v), true
}

func (d Describe) valueString(v any) string {
	switch vv := v.(type) {
	case Node:
		if s, ok := vv.(fmt.Stringer); ok {
			return s.String()
		}
		return d.Simple(vv)
	case string:
		return vv
	case fmt.Stringer:
		return vv.String()
	}
	return fmt.Sprintf("%v", v)
}

func (d Describe) truncated(elems []string) string {
	return "[" + strings.Join(d.truncate(elems), ", ") + "]"
}

func (d Describe) truncate(elems []string) []string {
	max := d.MaxFields
	if max == 0 {
		max = DefaultMaxFields
	}
	if len(elems) <= max {
		return elems
	}
	rest := len(elems) - max
	out := append([]string{}, elems[:max]...)
	return append(out, fmt.Sprintf("... %d more fields", rest))
}
