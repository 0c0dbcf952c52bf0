package encode

import (
	"bytes"
	"io"

	"github.com/signadot/jsontree/token"
	"github.com/signadot/jsontree/value"
)

// Compact renders node on a single line with no whitespace.  The
// YAMLCompatibility and DropNullPlaceholders options apply; comment
// and indentation options are ignored.
func Compact(node *value.Value, opts ...Option) string {
	buf := &bytes.Buffer{}
	_ = WriteCompact(node, buf, opts...)
	return buf.String()
}

func WriteCompact(node *value.Value, w io.Writer, opts ...Option) error {
	es := newEncState(w, opts)
	cw := &compactWriter{
		w:         w,
		colon:     ":",
		dropNulls: es.dropNulls,
	}
	if es.yamlCompat {
		cw.colon = ": "
	}
	return cw.writeValue(node)
}

type compactWriter struct {
	w         io.Writer
	colon     string
	dropNulls bool
}

func (cw *compactWriter) writeValue(node *value.Value) error {
	switch node.Type() {
	case value.NullType:
		// a dropped placeholder: the enclosing container
		// emitted any separators already
		if cw.dropNulls {
			return nil
		}
		return cw.writeString("null")
	case value.IntType:
		return cw.writeString(token.FormatInt(node.AsInt64()))
	case value.UintType:
		return cw.writeString(token.FormatUint(node.AsUint64()))
	case value.RealType:
		return cw.writeString(token.FormatReal(node.AsDouble()))
	case value.StringType:
		return cw.writeString(token.Quote(node.AsBytes()))
	case value.BoolType:
		if node.AsBool() {
			return cw.writeString("true")
		}
		return cw.writeString("false")
	case value.ArrayType:
		if err := cw.writeString("["); err != nil {
			return err
		}
		for i := 0; i < node.Size(); i++ {
			if i > 0 {
				if err := cw.writeString(","); err != nil {
					return err
				}
			}
			if err := cw.writeValue(node.At(i)); err != nil {
				return err
			}
		}
		return cw.writeString("]")
	case value.ObjectType:
		if err := cw.writeString("{"); err != nil {
			return err
		}
		first := true
		for _, k := range node.Keys() {
			child, _ := node.LookupKey(k)
			// dropped null members lose the key and the comma
			if cw.dropNulls && child.IsNull() {
				continue
			}
			if !first {
				if err := cw.writeString(","); err != nil {
					return err
				}
			}
			first = false
			if err := cw.writeString(token.Quote(k.Bytes())); err != nil {
				return err
			}
			if err := cw.writeString(cw.colon); err != nil {
				return err
			}
			if err := cw.writeValue(child); err != nil {
				return err
			}
		}
		return cw.writeString("}")
	}
	return nil
}

func (cw *compactWriter) writeString(s string) error {
	_, err := io.WriteString(cw.w, s)
	return err
}
