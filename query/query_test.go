package query

import (
	"testing"

	"github.com/signadot/jsontree/parse"
	"github.com/signadot/jsontree/value"
)

func doc(t *testing.T, in string) *value.Value {
	t.Helper()
	v, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return v
}

func TestEval(t *testing.T) {
	d := doc(t, `{"config":{"port":8080,"host":"db"},"replicas":[1,2,3]}`)
	tests := []struct {
		name string
		expr string
		want *value.Value
	}{
		{"member access", `config.host`, value.FromString("db")},
		{"comparison", `config.port > 1024`, value.FromBool(true)},
		{"arithmetic", `config.port + 1`, value.FromInt(8081)},
		{"array index", `replicas[2]`, value.FromInt(3)},
		{"len", `len(replicas)`, value.FromInt(3)},
		{"undefined is nil", `missing`, value.Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(d, tt.expr)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Eval(%q) = %v (%s), want %v (%s)",
					tt.expr, got, got.Type(), tt.want, tt.want.Type())
			}
		})
	}
}

func TestEvalNonObjectRoot(t *testing.T) {
	if _, err := Eval(doc(t, `[1]`), `x`); err == nil {
		t.Errorf("non-object root accepted")
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`1 +`); err == nil {
		t.Errorf("bad expression compiled")
	}
}

func TestNativeRoundTrip(t *testing.T) {
	d := doc(t, `{"a":1,"b":[true,null,"s"],"c":{"d":1.5}}`)
	back, err := FromNative(ToNative(d))
	if err != nil {
		t.Fatal(err)
	}
	// key order is not preserved through native maps; compare
	// member-wise
	for _, name := range d.MemberNames() {
		want, _ := d.Lookup(name)
		got, ok := back.Lookup(name)
		if !ok {
			t.Fatalf("member %q lost", name)
		}
		if name == "c" {
			cd, _ := got.Lookup("d")
			if cd.AsDouble() != 1.5 {
				t.Errorf("c.d = %v", cd)
			}
			continue
		}
		if !got.Equal(want) {
			t.Errorf("member %q = %v, want %v", name, got, want)
		}
	}
}
