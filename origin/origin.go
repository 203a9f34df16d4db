// Package origin tracks the source provenance of tree nodes.
//
// Producers (parsers) set the ambient origin before constructing nodes, and
// every node captures the ambient value at construction time. The ambient
// value is scoped with With or Apply, which restore the previous value on
// every exit path, including panics.
//
// The ambient origin is process state owned by a single logical traversal;
// it is not synchronized. See the ir package docs for the concurrency model.
package origin

import (
	"fmt"
	"strconv"
)

// Origin describes where a node came from in the source text.
type Origin struct {
	Line        int
	StartColumn int
	ByteStart   int
	ByteEnd     int
	Text        string
	ObjectType  string
	ObjectName  string
}

func (o Origin) IsZero() bool {
	return o == Origin{}
}

func (o Origin) String() string {
	if o.IsZero() {
		return "<unknown origin>"
	}
	s := fmt.Sprintf("line=%d, col=%d", o.Line, o.StartColumn)
	if o.Text != "" {
		sample := strconv.Quote(o.Text)
		sample = sample[1 : len(sample)-1]
		s = "`" + sample + "` at " + s
	}
	if o.ObjectName != "" {
		s += ", " + o.ObjectType + " " + o.ObjectName
	}
	return s
}

var current Origin

// Get returns the ambient origin, the zero Origin when none is set.
func Get() Origin {
	return current
}

// With runs f with the ambient origin set to o, restoring the previous
// value when f returns or panics.
func With(o Origin, f func()) {
	prev := current
	current = o
	defer func() {
		current = prev
	}()
	f()
}

// Apply is With for functions that return a value.
func Apply[T any](o Origin, f func() T) T {
	prev := current
	current = o
	defer func() {
		current = prev
	}()
	return f()
}

// SetPosition updates only the position fields of the ambient origin,
// leaving the rest untouched. Parsers use this to annotate positions
// incrementally while scanning.
func SetPosition(line, startColumn int) {
	current.Line = line
	current.StartColumn = startColumn
}
