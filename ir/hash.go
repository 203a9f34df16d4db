package ir

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"reflect"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of n: a pure function of the
// variant tag and the argument vector, order-sensitive and recursive,
// consistent with Equal. The value is cached on the node's Base, so each
// node pays for hashing at most once.
func Hash(n Node) uint64 {
	if n == nil {
		return 0
	}
	if hb, ok := n.(hasBase); ok {
		b := hb.base()
		if b.hashed {
			return b.hash
		}
		b.hash = computeHash(n)
		b.hashed = true
		return b.hash
	}
	return computeHash(n)
}

func computeHash(n Node) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(n.Name())
	var b [8]byte
	for _, a := range n.Args() {
		h.WriteByte(byte(a.Role))
		switch a.Role {
		case Child:
			writeHash(&h, b[:], Hash(a.Value.(Node)))
		case ChildOption:
			writeHash(&h, b[:], Hash(OptionValue(a.Value)))
		case ChildPair:
			p := a.Value.([2]Node)
			writeHash(&h, b[:], Hash(p[0]))
			writeHash(&h, b[:], Hash(p[1]))
		case ChildSlice:
			for _, c := range a.Value.([]Node) {
				writeHash(&h, b[:], Hash(c))
			}
		default:
			hashOpaque(&h, b[:], a.Value)
		}
	}
	return h.Sum64()
}

func writeHash(h *maphash.Hash, b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
	h.Write(b)
}

func hashOpaque(h *maphash.Hash, b []byte, v any) {
	switch vv := v.(type) {
	case Node:
		writeHash(h, b, Hash(vv))
	case []Node:
		for _, n := range vv {
			writeHash(h, b, Hash(n))
		}
	default:
		// Opaque scalars hash through their printed form. Pointers are
		// dereferenced first so deep-equal vectors hash alike; opaque
		// data must be value-shaped below the top level for the
		// hash/equality consistency to hold.
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer && !rv.IsNil() {
			rv = rv.Elem()
		}
		if !rv.IsValid() {
			return
		}
		fmt.Fprintf(h, "%#v", rv.Interface())
	}
}
