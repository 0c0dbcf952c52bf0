package value

import (
	"math"

	"github.com/signadot/jsontree/token"
)

const (
	maxUint64AsReal = float64(math.MaxUint64) // 2^64; rounds up
	maxInt64AsReal  = float64(math.MaxInt64)  // 2^63; rounds up
	minInt64AsReal  = float64(math.MinInt64)
)

func (v *Value) IsNull() bool   { return v.typ == NullType }
func (v *Value) IsBool() bool   { return v.typ == BoolType }
func (v *Value) IsString() bool { return v.typ == StringType }
func (v *Value) IsArray() bool  { return v.typ == ArrayType }
func (v *Value) IsObject() bool { return v.typ == ObjectType }

// IsInt reports whether the value is a whole number representable as
// an int32, whatever its variant.
func (v *Value) IsInt() bool {
	switch v.typ {
	case IntType:
		return v.i >= math.MinInt32 && v.i <= math.MaxInt32
	case UintType:
		return v.u <= math.MaxInt32
	case RealType:
		return v.f >= math.MinInt32 && v.f <= math.MaxInt32 && isIntegral(v.f)
	}
	return false
}

func (v *Value) IsUint() bool {
	switch v.typ {
	case IntType:
		return v.i >= 0 && uint64(v.i) <= math.MaxUint32
	case UintType:
		return v.u <= math.MaxUint32
	case RealType:
		return v.f >= 0 && v.f <= math.MaxUint32 && isIntegral(v.f)
	}
	return false
}

func (v *Value) IsInt64() bool {
	switch v.typ {
	case IntType:
		return true
	case UintType:
		return v.u <= math.MaxInt64
	case RealType:
		// A double cannot hold MaxInt64 exactly, hence the open
		// bound.
		return v.f >= minInt64AsReal && v.f < maxInt64AsReal && isIntegral(v.f)
	}
	return false
}

func (v *Value) IsUint64() bool {
	switch v.typ {
	case IntType:
		return v.i >= 0
	case UintType:
		return true
	case RealType:
		return v.f >= 0 && v.f < maxUint64AsReal && isIntegral(v.f)
	}
	return false
}

func (v *Value) IsIntegral() bool {
	switch v.typ {
	case IntType, UintType:
		return true
	case RealType:
		return v.f >= minInt64AsReal && v.f < maxUint64AsReal && isIntegral(v.f)
	}
	return false
}

func (v *Value) IsDouble() bool {
	return v.typ == RealType || v.IsIntegral()
}

func (v *Value) IsNumeric() bool {
	switch v.typ {
	case IntType, UintType, RealType:
		return true
	}
	return false
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f)
}

// IsConvertibleTo reports whether the active variant can be coerced
// to t without violating a coercion precondition.
func (v *Value) IsConvertibleTo(t Type) bool {
	switch t {
	case NullType:
		switch v.typ {
		case NullType:
			return true
		case BoolType:
			return !v.b
		case IntType:
			return v.i == 0
		case UintType:
			return v.u == 0
		case RealType:
			return v.f == 0
		case StringType:
			return len(v.s) == 0
		case ArrayType, ObjectType:
			return len(v.vals) == 0
		}
	case BoolType:
		switch v.typ {
		case NullType, BoolType, IntType, UintType, RealType:
			return true
		}
	case IntType:
		switch v.typ {
		case NullType, BoolType, IntType:
			return true
		case UintType:
			return v.u <= math.MaxInt64
		case RealType:
			return v.f >= math.MinInt32 && v.f <= math.MaxInt32
		}
	case UintType:
		switch v.typ {
		case NullType, BoolType, UintType:
			return true
		case IntType:
			return v.i >= 0
		case RealType:
			return v.f >= 0 && v.f <= math.MaxUint32
		}
	case RealType:
		switch v.typ {
		case NullType, BoolType, IntType, UintType, RealType:
			return true
		}
	case StringType:
		switch v.typ {
		case NullType, BoolType, IntType, UintType, RealType, StringType:
			return true
		}
	case ArrayType:
		switch v.typ {
		case ArrayType:
			return true
		case NullType:
			return true
		}
	case ObjectType:
		switch v.typ {
		case ObjectType, NullType:
			return true
		}
	}
	return false
}

func (v *Value) AsBool() bool {
	switch v.typ {
	case NullType:
		return false
	case BoolType:
		return v.b
	case IntType:
		return v.i != 0
	case UintType:
		return v.u != 0
	case RealType:
		return v.f != 0
	}
	logicErrorf("value: %s is not convertible to bool", v.typ)
	return false
}

func (v *Value) AsInt() int32 {
	switch v.typ {
	case NullType:
		return 0
	case BoolType:
		return boolInt[int32](v.b)
	case IntType:
		if v.i < math.MinInt32 || v.i > math.MaxInt32 {
			logicErrorf("value: %d out of Int range", v.i)
		}
		return int32(v.i)
	case UintType:
		if v.u > math.MaxInt32 {
			logicErrorf("value: %d out of Int range", v.u)
		}
		return int32(v.u)
	case RealType:
		if v.f < math.MinInt32 || v.f > math.MaxInt32 {
			logicErrorf("value: %g out of Int range", v.f)
		}
		return int32(math.Trunc(v.f))
	}
	logicErrorf("value: %s is not convertible to Int", v.typ)
	return 0
}

func (v *Value) AsUint() uint32 {
	switch v.typ {
	case NullType:
		return 0
	case BoolType:
		return boolInt[uint32](v.b)
	case IntType:
		if v.i < 0 || v.i > math.MaxUint32 {
			logicErrorf("value: %d out of UInt range", v.i)
		}
		return uint32(v.i)
	case UintType:
		if v.u > math.MaxUint32 {
			logicErrorf("value: %d out of UInt range", v.u)
		}
		return uint32(v.u)
	case RealType:
		if v.f < 0 || v.f > math.MaxUint32 {
			logicErrorf("value: %g out of UInt range", v.f)
		}
		return uint32(math.Trunc(v.f))
	}
	logicErrorf("value: %s is not convertible to UInt", v.typ)
	return 0
}

func (v *Value) AsInt64() int64 {
	switch v.typ {
	case NullType:
		return 0
	case BoolType:
		return boolInt[int64](v.b)
	case IntType:
		return v.i
	case UintType:
		if v.u > math.MaxInt64 {
			logicErrorf("value: %d out of Int64 range", v.u)
		}
		return int64(v.u)
	case RealType:
		if v.f < minInt64AsReal || v.f >= maxInt64AsReal {
			logicErrorf("value: %g out of Int64 range", v.f)
		}
		return int64(math.Trunc(v.f))
	}
	logicErrorf("value: %s is not convertible to Int64", v.typ)
	return 0
}

func (v *Value) AsUint64() uint64 {
	switch v.typ {
	case NullType:
		return 0
	case BoolType:
		return boolInt[uint64](v.b)
	case IntType:
		if v.i < 0 {
			logicErrorf("value: %d out of UInt64 range", v.i)
		}
		return uint64(v.i)
	case UintType:
		return v.u
	case RealType:
		if v.f < 0 || v.f >= maxUint64AsReal {
			logicErrorf("value: %g out of UInt64 range", v.f)
		}
		return uint64(math.Trunc(v.f))
	}
	logicErrorf("value: %s is not convertible to UInt64", v.typ)
	return 0
}

func (v *Value) AsLargestInt() int64 {
	return v.AsInt64()
}

func (v *Value) AsLargestUint() uint64 {
	return v.AsUint64()
}

func (v *Value) AsDouble() float64 {
	switch v.typ {
	case NullType:
		return 0
	case BoolType:
		return float64(boolInt[int64](v.b))
	case IntType:
		return float64(v.i)
	case UintType:
		return float64(v.u)
	case RealType:
		return v.f
	}
	logicErrorf("value: %s is not convertible to double", v.typ)
	return 0
}

func (v *Value) AsFloat() float32 {
	return float32(v.AsDouble())
}

// AsString renders the value as a string: strings verbatim, numbers
// in the writer's canonical formatting, null as "".
func (v *Value) AsString() string {
	switch v.typ {
	case NullType:
		return ""
	case StringType:
		return string(v.s)
	case BoolType:
		if v.b {
			return "true"
		}
		return "false"
	case IntType:
		return token.FormatInt(v.i)
	case UintType:
		return token.FormatUint(v.u)
	case RealType:
		return token.FormatReal(v.f)
	}
	logicErrorf("value: %s is not convertible to string", v.typ)
	return ""
}

// AsBytes returns a string value's raw payload without copying.
func (v *Value) AsBytes() []byte {
	if v.typ != StringType {
		logicErrorf("value: AsBytes on %s", v.typ)
	}
	return v.s
}

func boolInt[T int32 | uint32 | int64 | uint64](b bool) T {
	if b {
		return 1
	}
	return 0
}
