package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func expectLogicError(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected LogicError panic")
		}
		var le *LogicError
		err, ok := r.(error)
		if !ok || !errors.As(err, &le) {
			t.Fatalf("panic is not a *LogicError: %v", r)
		}
	}()
	f()
}

func TestNewZeroOfVariant(t *testing.T) {
	tests := []struct {
		typ  Type
		want *Value
	}{
		{NullType, Null()},
		{IntType, FromInt(0)},
		{UintType, FromUint(0)},
		{RealType, FromFloat(0)},
		{StringType, FromString("")},
		{BoolType, FromBool(false)},
		{ArrayType, NewArray()},
		{ObjectType, NewObject()},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := New(tt.typ)
			if got.Type() != tt.typ {
				t.Errorf("New(%s).Type() = %s", tt.typ, got.Type())
			}
			if !got.Equal(tt.want) {
				t.Errorf("New(%s) != zero of variant", tt.typ)
			}
		})
	}
}

func TestObjectInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.SetMember("z", FromInt(1))
	obj.SetMember("a", FromInt(2))
	obj.SetMember("m", FromInt(3))
	// replace retains position
	obj.SetMember("a", FromInt(20))
	if diff := cmp.Diff([]string{"z", "a", "m"}, obj.MemberNames()); diff != "" {
		t.Errorf("member order (-want +got):\n%s", diff)
	}
	if got, _ := obj.Lookup("a"); got.AsInt64() != 20 {
		t.Errorf("replaced member = %d, want 20", got.AsInt64())
	}
}

func TestMemberInsertsNullOnMiss(t *testing.T) {
	obj := NewObject()
	m := obj.Member("missing")
	if !m.IsNull() {
		t.Errorf("Member on miss is %s, want Null", m.Type())
	}
	if !obj.IsMember("missing") {
		t.Errorf("miss not inserted")
	}
	// null promotes to object
	n := Null()
	n.Member("k")
	if !n.IsObject() {
		t.Errorf("null did not promote to object")
	}
}

func TestRemoveMember(t *testing.T) {
	obj := NewObject()
	obj.SetMember("a", FromInt(1))
	obj.SetMember("b", FromInt(2))
	removed, ok := obj.RemoveMember("a")
	if !ok || removed.AsInt64() != 1 {
		t.Fatalf("RemoveMember = %v, %v", removed, ok)
	}
	if obj.IsMember("a") || obj.Size() != 1 {
		t.Errorf("member not removed")
	}
	if _, ok := obj.RemoveMember("a"); ok {
		t.Errorf("second removal succeeded")
	}
}

func TestArrayOps(t *testing.T) {
	arr := NewArray()
	arr.Append(FromInt(1))
	arr.Append(FromInt(2))
	arr.Append(FromInt(3))
	removed, ok := arr.RemoveIndex(1)
	if !ok || removed.AsInt64() != 2 {
		t.Fatalf("RemoveIndex = %v, %v", removed, ok)
	}
	if arr.Size() != 2 || arr.At(1).AsInt64() != 3 {
		t.Errorf("elements did not shift")
	}
	// mutable index grows with nulls
	arr.Index(4).Assign(FromBool(true))
	if arr.Size() != 5 {
		t.Fatalf("Index did not grow: size %d", arr.Size())
	}
	if !arr.At(3).IsNull() {
		t.Errorf("gap element not null")
	}
	if !arr.At(4).AsBool() {
		t.Errorf("assigned element lost")
	}
}

func TestResize(t *testing.T) {
	arr := NewArray()
	arr.Resize(3)
	if arr.Size() != 3 || !arr.At(2).IsNull() {
		t.Fatalf("grow failed")
	}
	arr.At(0).Assign(FromInt(7))
	arr.Resize(1)
	if arr.Size() != 1 || arr.At(0).AsInt64() != 7 {
		t.Errorf("shrink failed")
	}
	expectLogicError(t, func() { FromString("x").Resize(1) })
}

func TestSpans(t *testing.T) {
	v := FromInt(1)
	if v.OffsetStart() != 0 || v.OffsetLimit() != 0 {
		t.Errorf("programmatic value has nonzero span")
	}
	v.SetOffsetStart(3)
	v.SetOffsetLimit(9)
	if v.OffsetStart() != 3 || v.OffsetLimit() != 9 {
		t.Errorf("span set/get broken")
	}
}

func TestSwapPayloadKeepsSpans(t *testing.T) {
	a := FromInt(1)
	a.SetOffsetStart(10)
	a.SetOffsetLimit(20)
	a.SetComment("// a", CommentBefore)
	b := FromString("s")
	b.SetOffsetStart(30)
	b.SetOffsetLimit(40)
	a.SwapPayload(b)
	if a.Type() != StringType || b.Type() != IntType {
		t.Fatalf("payloads not swapped")
	}
	if a.OffsetStart() != 10 || a.OffsetLimit() != 20 {
		t.Errorf("a's span moved: %d..%d", a.OffsetStart(), a.OffsetLimit())
	}
	if b.OffsetStart() != 30 || b.OffsetLimit() != 40 {
		t.Errorf("b's span moved")
	}
	// comments travel with the payload
	if a.HasComment(CommentBefore) {
		t.Errorf("a kept its comment")
	}
	if !b.HasComment(CommentBefore) || b.GetComment(CommentBefore) != "// a" {
		t.Errorf("comment did not travel")
	}
}

func TestAssignReplacesComments(t *testing.T) {
	dst := FromInt(1)
	dst.SetComment("// old", CommentBefore)
	src := FromInt(2)
	dst.Assign(src)
	if dst.HasComment(CommentBefore) {
		t.Errorf("comment inherited across assignment")
	}
	if dst.AsInt64() != 2 {
		t.Errorf("payload not assigned")
	}
}

func TestCloneDeep(t *testing.T) {
	obj := NewObject()
	obj.Member("xs").Append(FromInt(1))
	cl := obj.Clone()
	cl.Member("xs").Append(FromInt(2))
	if xs, _ := obj.Lookup("xs"); xs.Size() != 1 {
		t.Errorf("clone shares children")
	}
	if !obj.Equal(obj.Clone()) {
		t.Errorf("clone not equal")
	}
}

func TestStaticStringOwnership(t *testing.T) {
	backing := []byte("static")
	v := StaticString(backing)
	cl := v.Clone()
	backing[0] = 'X'
	if cl.AsString() != "static" {
		t.Errorf("clone aliases static backing: %q", cl.AsString())
	}
	if v.AsString() != "Xtatic" {
		t.Errorf("static value does not alias backing: %q", v.AsString())
	}
}

func TestStringBytesNotUTF8(t *testing.T) {
	raw := []byte{'a', 0x00, 0xFF, 'b'}
	v := FromBytes(raw)
	got := v.AsBytes()
	if len(got) != 4 || got[1] != 0 || got[2] != 0xFF {
		t.Errorf("byte payload mangled: %v", got)
	}
}

func TestCommentPlacements(t *testing.T) {
	v := FromInt(1)
	v.SetComment("// before", CommentBefore)
	v.SetComment("// same", CommentAfterOnSameLine)
	v.SetComment("/* after */", CommentAfter)
	if v.GetComment(CommentBefore) != "// before" {
		t.Errorf("before = %q", v.GetComment(CommentBefore))
	}
	if v.GetComment(CommentAfterOnSameLine) != "// same" {
		t.Errorf("same = %q", v.GetComment(CommentAfterOnSameLine))
	}
	if v.GetComment(CommentAfter) != "/* after */" {
		t.Errorf("after = %q", v.GetComment(CommentAfter))
	}
	expectLogicError(t, func() { v.SetComment("not a comment", CommentBefore) })
}

func TestContainerOpsOnWrongVariant(t *testing.T) {
	expectLogicError(t, func() { FromString("x").Member("k") })
	expectLogicError(t, func() { FromInt(1).Append(Null()) })
	expectLogicError(t, func() { FromBool(true).MemberNames() })
	expectLogicError(t, func() { NewObject().At(0) })
}

func TestClear(t *testing.T) {
	arr := FromSlice([]*Value{FromInt(1)})
	arr.Clear()
	if arr.Size() != 0 || !arr.IsArray() {
		t.Errorf("Clear broke array")
	}
	expectLogicError(t, func() { FromInt(1).Clear() })
}
