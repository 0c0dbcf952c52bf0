package value

import (
	"math"
	"testing"
)

func TestConvertibilityMatrix(t *testing.T) {
	y, n := true, false
	// columns follow Types() order:
	// null, int, uint, real, string, bool, array, object
	tests := []struct {
		name string
		v    *Value
		want [8]bool
	}{
		{"null", Null(), [8]bool{y, y, y, y, y, y, y, y}},
		{"bool false", FromBool(false), [8]bool{y, y, y, y, y, y, n, n}},
		{"bool true", FromBool(true), [8]bool{n, y, y, y, y, y, n, n}},
		{"int zero", FromInt(0), [8]bool{y, y, y, y, y, y, n, n}},
		{"int negative", FromInt(-5), [8]bool{n, y, n, y, y, y, n, n}},
		{"int positive", FromInt(5), [8]bool{n, y, y, y, y, y, n, n}},
		{"uint zero", FromUint(0), [8]bool{y, y, y, y, y, y, n, n}},
		{"uint small", FromUint(7), [8]bool{n, y, y, y, y, y, n, n}},
		{"uint beyond int64", FromUint(math.MaxInt64 + 1), [8]bool{n, n, y, y, y, y, n, n}},
		{"real zero", FromFloat(0), [8]bool{y, y, y, y, y, y, n, n}},
		{"real in i32", FromFloat(-1.5), [8]bool{n, y, n, y, y, y, n, n}},
		{"real beyond i32", FromFloat(1 << 40), [8]bool{n, n, n, y, y, y, n, n}},
		{"real in u32 only", FromFloat(3e9), [8]bool{n, n, y, y, y, y, n, n}},
		{"string empty", FromString(""), [8]bool{y, n, n, n, y, n, n, n}},
		{"string nonempty", FromString("x"), [8]bool{n, n, n, n, y, n, n, n}},
		{"array empty", NewArray(), [8]bool{y, n, n, n, n, n, y, n}},
		{"array nonempty", FromSlice([]*Value{Null()}), [8]bool{n, n, n, n, n, n, y, n}},
		{"object empty", NewObject(), [8]bool{y, n, n, n, n, n, n, y}},
		{"object nonempty", FromKeyVals([]KeyVal{{Key: Key("k"), Val: Null()}}),
			[8]bool{n, n, n, n, n, n, n, y}},
	}
	cols := Types()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, target := range cols {
				if got := tt.v.IsConvertibleTo(target); got != tt.want[i] {
					t.Errorf("IsConvertibleTo(%s) = %v, want %v",
						target, got, tt.want[i])
				}
			}
		})
	}
}

func TestBoundaryClassification(t *testing.T) {
	tests := []struct {
		name                             string
		v                                *Value
		isInt, isUint, isInt64, isUint64 bool
	}{
		{"i32 max", FromInt(math.MaxInt32), true, true, true, true},
		{"i32 min", FromInt(math.MinInt32), true, false, true, false},
		{"u32 max", FromInt(math.MaxUint32), false, true, true, true},
		{"i64 max", FromInt(math.MaxInt64), false, false, true, true},
		{"i64 min", FromInt(math.MinInt64), false, false, true, false},
		{"u64 max", FromUint(math.MaxUint64), false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsInt(); got != tt.isInt {
				t.Errorf("IsInt() = %v, want %v", got, tt.isInt)
			}
			if got := tt.v.IsUint(); got != tt.isUint {
				t.Errorf("IsUint() = %v, want %v", got, tt.isUint)
			}
			if got := tt.v.IsInt64(); got != tt.isInt64 {
				t.Errorf("IsInt64() = %v, want %v", got, tt.isInt64)
			}
			if got := tt.v.IsUint64(); got != tt.isUint64 {
				t.Errorf("IsUint64() = %v, want %v", got, tt.isUint64)
			}
			if !tt.v.IsIntegral() || !tt.v.IsNumeric() {
				t.Errorf("boundary value not integral/numeric")
			}
		})
	}
}

func TestCoercionTruncatesTowardZero(t *testing.T) {
	if got := FromFloat(2.9).AsInt(); got != 2 {
		t.Errorf("AsInt(2.9) = %d", got)
	}
	if got := FromFloat(-2.9).AsInt(); got != -2 {
		t.Errorf("AsInt(-2.9) = %d", got)
	}
	if got := FromFloat(2.9).AsUint64(); got != 2 {
		t.Errorf("AsUint64(2.9) = %d", got)
	}
}

func TestCoercionFailures(t *testing.T) {
	expectLogicError(t, func() { FromFloat(1e10).AsInt() })
	expectLogicError(t, func() { FromInt(-1).AsUint() })
	expectLogicError(t, func() { FromUint(math.MaxUint64).AsInt64() })
	expectLogicError(t, func() { FromString("x").AsInt() })
	expectLogicError(t, func() { NewArray().AsString() })
	expectLogicError(t, func() { NewObject().AsString() })
	expectLogicError(t, func() { NewArray().AsBool() })
}

func TestAsString(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"null is empty", Null(), ""},
		{"string", FromString("hi"), "hi"},
		{"bool", FromBool(true), "true"},
		{"int", FromInt(-42), "-42"},
		{"uint", FromUint(42), "42"},
		{"real", FromFloat(1.5), "1.5"},
		{"nan", FromFloat(math.NaN()), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsString(); got != tt.want {
				t.Errorf("AsString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumericCrossCoercion(t *testing.T) {
	if got := FromUint(7).AsInt64(); got != 7 {
		t.Errorf("uint->int64 = %d", got)
	}
	if got := FromInt(7).AsUint(); got != 7 {
		t.Errorf("int->uint = %d", got)
	}
	if got := FromInt(7).AsDouble(); got != 7 {
		t.Errorf("int->double = %g", got)
	}
	if got := FromBool(true).AsInt(); got != 1 {
		t.Errorf("bool->int = %d", got)
	}
	if got := Null().AsInt64(); got != 0 {
		t.Errorf("null->int64 = %d", got)
	}
	if got := FromFloat(0.5).AsFloat(); got != 0.5 {
		t.Errorf("real->float = %g", got)
	}
}
