// Package query evaluates expressions against value trees.  The
// document's members are the expression environment, so
// `config.servers[0].port > 1024` reads naturally against an object
// root.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/jsontree/value"
)

// Program is a compiled query.
type Program struct {
	prg *vm.Program
}

func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	return &Program{prg: prg}, nil
}

// Eval runs the program against doc, which must be an object (its
// members become the environment), and converts the result back into
// a value tree.
func (p *Program) Eval(doc *value.Value) (*value.Value, error) {
	if !doc.IsObject() {
		return nil, fmt.Errorf("query: document root is %s, not Object", doc.Type())
	}
	env, ok := ToNative(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("query: bad environment")
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	return FromNative(res)
}

// Eval compiles and runs src against doc.
func Eval(doc *value.Value, src string) (*value.Value, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Eval(doc)
}

// ToNative converts a value tree to native Go values: nil, int64,
// uint64, float64, string, bool, []any and map[string]any.  Object
// key order and comments are not observable on the native side.
func ToNative(v *value.Value) any {
	switch v.Type() {
	case value.NullType:
		return nil
	case value.IntType:
		return v.AsInt64()
	case value.UintType:
		return v.AsUint64()
	case value.RealType:
		return v.AsDouble()
	case value.StringType:
		return v.AsString()
	case value.BoolType:
		return v.AsBool()
	case value.ArrayType:
		res := make([]any, v.Size())
		for i := 0; i < v.Size(); i++ {
			res[i] = ToNative(v.At(i))
		}
		return res
	case value.ObjectType:
		res := make(map[string]any, v.Size())
		for _, name := range v.MemberNames() {
			m, _ := v.Lookup(name)
			res[name] = ToNative(m)
		}
		return res
	}
	return nil
}

// FromNative converts a native Go value into a value tree.
func FromNative(x any) (*value.Value, error) {
	switch t := x.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(t), nil
	case string:
		return value.FromString(t), nil
	case int:
		return value.FromInt(int64(t)), nil
	case int32:
		return value.FromInt(int64(t)), nil
	case int64:
		return value.FromInt(t), nil
	case uint:
		return value.FromUint(uint64(t)), nil
	case uint32:
		return value.FromUint(uint64(t)), nil
	case uint64:
		return value.FromUint(t), nil
	case float32:
		return value.FromFloat(float64(t)), nil
	case float64:
		return value.FromFloat(t), nil
	case []any:
		arr := value.NewArray()
		for _, e := range t {
			ev, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			arr.Append(ev)
		}
		return arr, nil
	case map[string]any:
		obj := value.NewObject()
		for k, e := range t {
			ev, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			obj.SetMember(k, ev)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("query: cannot convert %T to a value", x)
	}
}
