package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the value.  Equal values
// hash equally within a process; comments and spans are excluded, so
// the hash is consistent with Compare.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("value: Hash called on nil value")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	v.hashTo(&h)
	return h.Sum64()
}

func (v *Value) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(v.typ))
	var b [8]byte
	switch v.typ {
	case NullType:
	case BoolType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.i))
		h.Write(b[:])
	case UintType:
		binary.LittleEndian.PutUint64(b[:], v.u)
		h.Write(b[:])
	case RealType:
		f := v.f
		switch {
		case f == 0:
			f = 0 // -0 compares equal to 0
		case math.IsNaN(f):
			f = math.NaN() // all NaNs compare equal
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType:
		h.Write(v.s)
	case ArrayType:
		for _, c := range v.vals {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for i := range v.keys {
			h.Write(v.keys[i].Bytes())
			binary.LittleEndian.PutUint64(b[:], v.vals[i].Hash())
			h.Write(b[:])
		}
	}
}
