package value

import (
	"bytes"
	"strconv"
)

// ObjectKey is an object member key: a byte sequence, optionally
// marked static (the bytes have program lifetime and are not copied),
// or a synthetic numeric index produced by the numeric-key dialect.
type ObjectKey struct {
	raw     []byte
	static  bool
	index   uint64
	numeric bool
}

func Key(s string) ObjectKey {
	return ObjectKey{raw: []byte(s)}
}

// BytesKey copies b.
func BytesKey(b []byte) ObjectKey {
	return ObjectKey{raw: bytes.Clone(b)}
}

// StaticKey aliases b without copying; b must outlive every Value the
// key is inserted into.
func StaticKey(b []byte) ObjectKey {
	return ObjectKey{raw: b, static: true}
}

func IndexKey(u uint64) ObjectKey {
	return ObjectKey{index: u, numeric: true}
}

func (k ObjectKey) IsNumeric() bool { return k.numeric }
func (k ObjectKey) IsStatic() bool  { return k.static }

func (k ObjectKey) Index() uint64 { return k.index }

// Bytes returns the key's byte rendering; numeric keys render in
// decimal.
func (k ObjectKey) Bytes() []byte {
	if k.numeric {
		return strconv.AppendUint(nil, k.index, 10)
	}
	return k.raw
}

func (k ObjectKey) String() string {
	if k.numeric {
		return strconv.FormatUint(k.index, 10)
	}
	return string(k.raw)
}

// compareKeys orders keys by length of their byte rendering, then
// lexicographically.  The static flag is not part of key identity.
func compareKeys(a, b ObjectKey) int {
	ab, bb := a.Bytes(), b.Bytes()
	if len(ab) != len(bb) {
		if len(ab) < len(bb) {
			return -1
		}
		return 1
	}
	return bytes.Compare(ab, bb)
}

func keysEqual(a, b ObjectKey) bool {
	return compareKeys(a, b) == 0
}

// clone returns an owned copy; static keys convert to owned.
func (k ObjectKey) clone() ObjectKey {
	if k.numeric {
		return k
	}
	return ObjectKey{raw: bytes.Clone(k.raw)}
}
