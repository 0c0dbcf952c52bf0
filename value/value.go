package value

import (
	"bytes"
)

// Value is a JSON document node: a tagged union over the seven JSON
// variants (null, signed and unsigned whole numbers, reals, strings,
// bools, arrays, objects).  Exactly one variant is active.  A string
// payload is an opaque byte sequence and need not be UTF-8.  Objects
// preserve key insertion order; the order is observable through
// MemberNames, Compare and serialization.
//
// A Value additionally carries up to three comments (one per
// Placement) and the byte span (start, limit) of the source text it
// was parsed from; programmatically built values have a zero span.
//
// A Value owns its children.  Sharing a Value for reading across
// goroutines is safe only while no goroutine mutates it.
type Value struct {
	typ Type

	i int64
	u uint64
	f float64
	b bool

	s      []byte
	static bool

	keys []ObjectKey
	vals []*Value

	comments [numPlacements]string

	start, limit int
}

// Null returns a new null value.  The zero Value is also null.
func Null() *Value {
	return &Value{}
}

func FromInt(i int64) *Value {
	return &Value{typ: IntType, i: i}
}

func FromUint(u uint64) *Value {
	return &Value{typ: UintType, u: u}
}

func FromFloat(f float64) *Value {
	return &Value{typ: RealType, f: f}
}

func FromBool(b bool) *Value {
	return &Value{typ: BoolType, b: b}
}

func FromString(s string) *Value {
	return &Value{typ: StringType, s: []byte(s)}
}

// FromBytes copies b into a string value.
func FromBytes(b []byte) *Value {
	return &Value{typ: StringType, s: bytes.Clone(b)}
}

// StaticString aliases b without copying.  b must outlive the value;
// Clone and SwapPayload convert the payload to an owned copy.
func StaticString(b []byte) *Value {
	return &Value{typ: StringType, s: b, static: true}
}

// TakeBytes takes ownership of b without copying; the caller must
// not reuse b.
func TakeBytes(b []byte) *Value {
	return &Value{typ: StringType, s: b}
}

func NewArray() *Value {
	return &Value{typ: ArrayType}
}

func NewObject() *Value {
	return &Value{typ: ObjectType}
}

// New returns the zero of the given variant: null, 0, 0.0, false, "",
// [] or {}.
func New(t Type) *Value {
	switch t {
	case NullType:
		return Null()
	case IntType:
		return FromInt(0)
	case UintType:
		return FromUint(0)
	case RealType:
		return FromFloat(0)
	case StringType:
		return FromString("")
	case BoolType:
		return FromBool(false)
	case ArrayType:
		return NewArray()
	case ObjectType:
		return NewObject()
	}
	logicErrorf("value: New: bad type %d", int(t))
	return nil
}

func FromSlice(vs []*Value) *Value {
	res := NewArray()
	res.vals = append(res.vals, vs...)
	return res
}

type KeyVal struct {
	Key ObjectKey
	Val *Value
}

func FromKeyVals(kvs []KeyVal) *Value {
	res := NewObject()
	for i := range kvs {
		res.SetMemberKey(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func (v *Value) Type() Type {
	return v.typ
}

// Size returns the element count of an array or the member count of
// an object; scalars and null have size 0.
func (v *Value) Size() int {
	switch v.typ {
	case ArrayType, ObjectType:
		return len(v.vals)
	default:
		return 0
	}
}

func (v *Value) Empty() bool {
	switch v.typ {
	case NullType, ArrayType, ObjectType:
		return v.Size() == 0
	default:
		return false
	}
}

// Clear removes all children of an array or object; null is a no-op.
func (v *Value) Clear() {
	switch v.typ {
	case NullType:
	case ArrayType, ObjectType:
		v.keys = nil
		v.vals = nil
	default:
		logicErrorf("value: Clear on %s", v.typ)
	}
}

// Resize grows an array with nulls or truncates it.  A null value
// becomes an array first.
func (v *Value) Resize(n int) {
	switch v.typ {
	case NullType:
		v.typ = ArrayType
	case ArrayType:
	default:
		logicErrorf("value: Resize on %s", v.typ)
	}
	if n < 0 {
		logicErrorf("value: Resize to %d", n)
	}
	for len(v.vals) < n {
		v.vals = append(v.vals, Null())
	}
	v.vals = v.vals[:n]
}

// At returns the i'th array element, or nil when i is out of range.
func (v *Value) At(i int) *Value {
	if v.typ != ArrayType {
		logicErrorf("value: At on %s", v.typ)
	}
	if i < 0 || i >= len(v.vals) {
		return nil
	}
	return v.vals[i]
}

// Index returns a mutable slot for the i'th element, growing the
// array with nulls up to i.  A null value becomes an array first.
func (v *Value) Index(i int) *Value {
	switch v.typ {
	case NullType:
		v.typ = ArrayType
	case ArrayType:
	default:
		logicErrorf("value: Index on %s", v.typ)
	}
	if i < 0 {
		logicErrorf("value: Index %d", i)
	}
	for len(v.vals) <= i {
		v.vals = append(v.vals, Null())
	}
	return v.vals[i]
}

// Append appends e to an array and returns e.  A null value becomes
// an array first.
func (v *Value) Append(e *Value) *Value {
	switch v.typ {
	case NullType:
		v.typ = ArrayType
	case ArrayType:
	default:
		logicErrorf("value: Append on %s", v.typ)
	}
	v.vals = append(v.vals, e)
	return e
}

// RemoveIndex removes the i'th element, shifting later elements down,
// and returns the removed child.  It reports false when i is out of
// range.
func (v *Value) RemoveIndex(i int) (*Value, bool) {
	if v.typ != ArrayType {
		logicErrorf("value: RemoveIndex on %s", v.typ)
	}
	if i < 0 || i >= len(v.vals) {
		return nil, false
	}
	removed := v.vals[i]
	v.vals = append(v.vals[:i], v.vals[i+1:]...)
	return removed, true
}

// MemberNames returns object keys in insertion order.
func (v *Value) MemberNames() []string {
	if v.typ != ObjectType {
		logicErrorf("value: MemberNames on %s", v.typ)
	}
	names := make([]string, len(v.keys))
	for i, k := range v.keys {
		names[i] = k.String()
	}
	return names
}

// Keys returns object keys in insertion order.
func (v *Value) Keys() []ObjectKey {
	if v.typ != ObjectType {
		logicErrorf("value: Keys on %s", v.typ)
	}
	return v.keys
}

func (v *Value) IsMember(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Lookup returns the member for key without inserting.
func (v *Value) Lookup(key string) (*Value, bool) {
	switch v.typ {
	case NullType:
		return nil, false
	case ObjectType:
	default:
		logicErrorf("value: Lookup on %s", v.typ)
	}
	i := v.findKey(Key(key))
	if i < 0 {
		return nil, false
	}
	return v.vals[i], true
}

// LookupKey is Lookup with an explicit ObjectKey.
func (v *Value) LookupKey(k ObjectKey) (*Value, bool) {
	switch v.typ {
	case NullType:
		return nil, false
	case ObjectType:
	default:
		logicErrorf("value: Lookup on %s", v.typ)
	}
	i := v.findKey(k)
	if i < 0 {
		return nil, false
	}
	return v.vals[i], true
}

// Get returns the member for key, or def when absent.
func (v *Value) Get(key string, def *Value) *Value {
	if m, ok := v.Lookup(key); ok {
		return m
	}
	return def
}

// Member returns a mutable slot for key, inserting a null member when
// absent.  A null value becomes an object first.
func (v *Value) Member(key string) *Value {
	return v.MemberKey(Key(key))
}

// MemberKey is Member with an explicit ObjectKey, used for static and
// numeric keys.
func (v *Value) MemberKey(k ObjectKey) *Value {
	switch v.typ {
	case NullType:
		v.typ = ObjectType
	case ObjectType:
	default:
		logicErrorf("value: Member on %s", v.typ)
	}
	if i := v.findKey(k); i >= 0 {
		return v.vals[i]
	}
	m := Null()
	v.keys = append(v.keys, k)
	v.vals = append(v.vals, m)
	return m
}

// SetMemberKey inserts or replaces the member for k and returns e.
// Replacing retains the key's original insertion position.
func (v *Value) SetMemberKey(k ObjectKey, e *Value) *Value {
	switch v.typ {
	case NullType:
		v.typ = ObjectType
	case ObjectType:
	default:
		logicErrorf("value: SetMember on %s", v.typ)
	}
	if i := v.findKey(k); i >= 0 {
		v.vals[i] = e
		return e
	}
	v.keys = append(v.keys, k)
	v.vals = append(v.vals, e)
	return e
}

func (v *Value) SetMember(key string, e *Value) *Value {
	return v.SetMemberKey(Key(key), e)
}

// RemoveMember removes the member for key and returns the removed
// child; it reports false when absent.
func (v *Value) RemoveMember(key string) (*Value, bool) {
	switch v.typ {
	case NullType:
		return nil, false
	case ObjectType:
	default:
		logicErrorf("value: RemoveMember on %s", v.typ)
	}
	i := v.findKey(Key(key))
	if i < 0 {
		return nil, false
	}
	removed := v.vals[i]
	v.keys = append(v.keys[:i], v.keys[i+1:]...)
	v.vals = append(v.vals[:i], v.vals[i+1:]...)
	return removed, true
}

func (v *Value) findKey(k ObjectKey) int {
	for i := range v.keys {
		if keysEqual(v.keys[i], k) {
			return i
		}
	}
	return -1
}

// OffsetStart returns the byte offset of the value's first source
// byte.
func (v *Value) OffsetStart() int { return v.start }

// OffsetLimit returns the byte offset one past the value's last
// source byte.
func (v *Value) OffsetLimit() int { return v.limit }

func (v *Value) SetOffsetStart(off int) { v.start = off }
func (v *Value) SetOffsetLimit(off int) { v.limit = off }

// Assign replaces v's payload and comments with deep copies of src's.
// The span is replaced as well; use SwapPayload to keep it.
func (v *Value) Assign(src *Value) {
	src.CloneTo(v)
}

// SwapPayload exchanges the variant payloads and comments of v and
// other, leaving both spans in place.
func (v *Value) SwapPayload(other *Value) {
	vs, vl := v.start, v.limit
	os, ol := other.start, other.limit
	*v, *other = *other, *v
	v.start, v.limit = vs, vl
	other.start, other.limit = os, ol
	v.ownStrings()
	other.ownStrings()
}

// Swap exchanges payloads, comments and spans.
func (v *Value) Swap(other *Value) {
	*v, *other = *other, *v
	v.ownStrings()
	other.ownStrings()
}

func (v *Value) ownStrings() {
	if v.typ == StringType && v.static {
		v.s = bytes.Clone(v.s)
		v.static = false
	}
	for i := range v.keys {
		if v.keys[i].static {
			v.keys[i] = v.keys[i].clone()
		}
	}
}

// Clone deep-copies v; static strings and keys become owned copies.
func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.typ = v.typ
	dst.i = v.i
	dst.u = v.u
	dst.f = v.f
	dst.b = v.b
	dst.s = bytes.Clone(v.s)
	dst.static = false
	dst.comments = v.comments
	dst.start = v.start
	dst.limit = v.limit
	dst.keys = nil
	dst.vals = nil
	if len(v.keys) > 0 {
		dst.keys = make([]ObjectKey, len(v.keys))
		for i := range v.keys {
			dst.keys[i] = v.keys[i].clone()
		}
	}
	if len(v.vals) > 0 {
		dst.vals = make([]*Value, len(v.vals))
		for i := range v.vals {
			dst.vals[i] = v.vals[i].Clone()
		}
	}
	return dst
}

// Visit walks the tree preorder and postorder; f's dive result gates
// descent into children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range v.vals {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(v, true)
	return err
}
