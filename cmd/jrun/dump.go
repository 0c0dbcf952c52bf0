package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/signadot/jsontree/token"
	"github.com/signadot/jsontree/value"
)

// dumpTree renders the tree in the path=value form used by the
// .actual files:
//
//	.={}
//	.property="value"
func dumpTree(root *value.Value) string {
	b := &strings.Builder{}
	dumpValue(b, root, ".")
	return b.String()
}

func dumpValue(b *strings.Builder, v *value.Value, path string) {
	switch v.Type() {
	case value.NullType:
		fmt.Fprintf(b, "%s=null\n", path)
	case value.IntType:
		fmt.Fprintf(b, "%s=%s\n", path, token.FormatInt(v.AsInt64()))
	case value.UintType:
		fmt.Fprintf(b, "%s=%s\n", path, token.FormatUint(v.AsUint64()))
	case value.RealType:
		fmt.Fprintf(b, "%s=%s\n", path, token.FormatReal(v.AsDouble()))
	case value.StringType:
		fmt.Fprintf(b, "%s=%s\n", path, token.Quote(v.AsBytes()))
	case value.BoolType:
		fmt.Fprintf(b, "%s=%v\n", path, v.AsBool())
	case value.ArrayType:
		fmt.Fprintf(b, "%s=[]\n", path)
		for i := 0; i < v.Size(); i++ {
			dumpValue(b, v.At(i), fmt.Sprintf("%s[%d]", path, i))
		}
	case value.ObjectType:
		fmt.Fprintf(b, "%s={}\n", path)
		names := v.MemberNames()
		sort.Strings(names)
		sep := "."
		if strings.HasSuffix(path, ".") {
			sep = ""
		}
		for _, name := range names {
			m, _ := v.Lookup(name)
			dumpValue(b, m, path+sep+name)
		}
	}
}
