package value

import (
	"bytes"
	"cmp"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values order first by variant in the Type declaration order
// (Null < Int < Uint < Real < String < Bool < Array < Object), then
// within a variant: numbers numerically, strings by length then
// bytes, arrays by length then element-wise, objects by size then by
// the (key, value) sequence in insertion order.  Comments and spans
// do not participate.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.typ != b.typ {
		return cmp.Compare(a.typ, b.typ)
	}
	switch a.typ {
	case NullType:
		return 0
	case IntType:
		return cmp.Compare(a.i, b.i)
	case UintType:
		return cmp.Compare(a.u, b.u)
	case RealType:
		return cmp.Compare(a.f, b.f)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case StringType:
		return compareBytes(a.s, b.s)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

func (v *Value) Compare(other *Value) int {
	return Compare(v, other)
}

func (v *Value) Equal(other *Value) bool {
	return Compare(v, other) == 0
}

func compareBytes(a, b []byte) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return bytes.Compare(a, b)
}

func compareArrays(a, b *Value) int {
	if len(a.vals) != len(b.vals) {
		return cmp.Compare(len(a.vals), len(b.vals))
	}
	for i := range a.vals {
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareObjects(a, b *Value) int {
	if len(a.vals) != len(b.vals) {
		return cmp.Compare(len(a.vals), len(b.vals))
	}
	for i := range a.keys {
		if c := compareKeys(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return 0
}
