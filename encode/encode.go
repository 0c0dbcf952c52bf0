package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/jsontree/debug"
	"github.com/signadot/jsontree/token"
	"github.com/signadot/jsontree/value"
)

type encState struct {
	w io.Writer

	indentation string
	cs          CommentStyle
	yamlCompat  bool
	dropNulls   bool
	colors      *Colors
	rightMargin int

	colon      string
	nullSymbol string

	indentString   string
	childValues    []string
	addChildValues bool
	indented       bool
}

func newEncState(w io.Writer, opts []Option) *encState {
	es := &encState{
		w:           w,
		indentation: "\t",
		rightMargin: DefaultRightMargin,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.yamlCompat:
		es.colon = ": "
	case es.indentation == "":
		es.colon = ":"
	default:
		es.colon = " : "
	}
	es.nullSymbol = "null"
	if es.dropNulls {
		es.nullSymbol = ""
	}
	return es
}

// Write renders node styled into w: indented, one member per line,
// arrays inline when they fit the line budget, comments preserved.
func Write(node *value.Value, w io.Writer, opts ...Option) error {
	es := newEncState(w, opts)
	es.indented = true
	if err := es.writeCommentBeforeValue(node); err != nil {
		return err
	}
	if !es.indented {
		if err := es.writeIndent(); err != nil {
			return err
		}
	}
	es.indented = true
	if err := es.writeValue(node); err != nil {
		return err
	}
	return es.writeCommentAfterValueOnSameLine(node)
}

// String renders node styled into a string.
func String(node *value.Value, opts ...Option) string {
	buf := &bytes.Buffer{}
	// a buffer sink cannot fail
	_ = Write(node, buf, opts...)
	return buf.String()
}

func (es *encState) writeValue(node *value.Value) error {
	switch node.Type() {
	case value.NullType:
		return es.pushValue(value.NullType, es.nullSymbol)
	case value.IntType:
		return es.pushValue(value.IntType, token.FormatInt(node.AsInt64()))
	case value.UintType:
		return es.pushValue(value.UintType, token.FormatUint(node.AsUint64()))
	case value.RealType:
		return es.pushValue(value.RealType, token.FormatReal(node.AsDouble()))
	case value.StringType:
		return es.pushValue(value.StringType, token.Quote(node.AsBytes()))
	case value.BoolType:
		if node.AsBool() {
			return es.pushValue(value.BoolType, "true")
		}
		return es.pushValue(value.BoolType, "false")
	case value.ArrayType:
		return es.writeArrayValue(node)
	case value.ObjectType:
		return es.writeObjectValue(node)
	}
	return nil
}

func (es *encState) writeObjectValue(node *value.Value) error {
	keys := node.Keys()
	if len(keys) == 0 {
		return es.pushValue(value.ObjectType, "{}")
	}
	if err := es.writeWithIndent(es.color(value.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.indent()
	for i, k := range keys {
		child, _ := node.LookupKey(k)
		if err := es.writeCommentBeforeValue(child); err != nil {
			return err
		}
		key := es.color(value.ObjectType, FieldColor, token.Quote(k.Bytes()))
		if err := es.writeWithIndent(key); err != nil {
			return err
		}
		if err := es.writeString(es.colon); err != nil {
			return err
		}
		if err := es.writeValue(child); err != nil {
			return err
		}
		if i < len(keys)-1 {
			if err := es.writeString(","); err != nil {
				return err
			}
		}
		if err := es.writeCommentAfterValueOnSameLine(child); err != nil {
			return err
		}
	}
	es.unindent()
	return es.writeWithIndent(es.color(value.ObjectType, SepColor, "}"))
}

func (es *encState) writeArrayValue(node *value.Value) error {
	n := node.Size()
	if n == 0 {
		return es.pushValue(value.ArrayType, "[]")
	}
	multiLine, err := es.isMultilineArray(node)
	if err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encode: array size=%d multiline=%v\n", n, multiLine)
	}
	hasChildValue := len(es.childValues) != 0
	childValues := es.childValues
	es.childValues = nil
	if !multiLine {
		// all children are scalars or empty containers,
		// buffered by isMultilineArray
		if err := es.writeString("["); err != nil {
			return err
		}
		if es.indentation != "" {
			if err := es.writeString(" "); err != nil {
				return err
			}
		}
		for i, cv := range childValues {
			if i > 0 {
				if err := es.writeString(", "); err != nil {
					return err
				}
			}
			if err := es.writeString(cv); err != nil {
				return err
			}
		}
		if es.indentation != "" {
			if err := es.writeString(" "); err != nil {
				return err
			}
		}
		return es.writeString("]")
	}
	if err := es.writeWithIndent(es.color(value.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.indent()
	for i := 0; i < n; i++ {
		child := node.At(i)
		if err := es.writeCommentBeforeValue(child); err != nil {
			return err
		}
		if hasChildValue {
			if err := es.writeWithIndent(childValues[i]); err != nil {
				return err
			}
		} else {
			if !es.indented {
				if err := es.writeIndent(); err != nil {
					return err
				}
			}
			es.indented = true
			if err := es.writeValue(child); err != nil {
				return err
			}
			es.indented = false
		}
		if i < n-1 {
			if err := es.writeString(","); err != nil {
				return err
			}
		}
		if err := es.writeCommentAfterValueOnSameLine(child); err != nil {
			return err
		}
	}
	es.unindent()
	return es.writeWithIndent(es.color(value.ArrayType, SepColor, "]"))
}

// isMultilineArray decides the array layout.  An array renders
// inline only when it has no non-empty container children, none of
// its children carries a comment, and the projected single-line
// rendering fits the right margin.  As a side effect the inline case
// leaves the rendered children in es.childValues.
func (es *encState) isMultilineArray(node *value.Value) (bool, error) {
	n := node.Size()
	multiLine := n*3 >= es.rightMargin
	es.childValues = nil
	for i := 0; i < n && !multiLine; i++ {
		child := node.At(i)
		multiLine = (child.IsArray() || child.IsObject()) && child.Size() > 0
	}
	if multiLine {
		return true, nil
	}
	es.childValues = make([]string, 0, n)
	es.addChildValues = true
	lineLength := 4 + (n-1)*2 // '[ ' + ', '*(n-1) + ' ]'
	var err error
	for i := 0; i < n; i++ {
		child := node.At(i)
		if hasCommentForValue(child) {
			multiLine = true
		}
		if err = es.writeValue(child); err != nil {
			break
		}
		lineLength += len(es.childValues[i])
	}
	es.addChildValues = false
	if err != nil {
		return false, err
	}
	return multiLine || lineLength >= es.rightMargin, nil
}

func hasCommentForValue(v *value.Value) bool {
	return v.HasComment(value.CommentBefore) ||
		v.HasComment(value.CommentAfterOnSameLine) ||
		v.HasComment(value.CommentAfter)
}

func (es *encState) pushValue(t value.Type, v string) error {
	if es.addChildValues {
		es.childValues = append(es.childValues, v)
		return nil
	}
	return es.writeString(es.color(t, ValueColor, v))
}

func (es *encState) writeIndent() error {
	// with empty indentation line breaks are dropped too
	if es.indentation == "" {
		return nil
	}
	return es.writeString("\n" + es.indentString)
}

func (es *encState) writeWithIndent(v string) error {
	if !es.indented {
		if err := es.writeIndent(); err != nil {
			return err
		}
	}
	es.indented = false
	return es.writeString(v)
}

func (es *encState) indent() {
	es.indentString += es.indentation
}

func (es *encState) unindent() {
	es.indentString = es.indentString[:len(es.indentString)-len(es.indentation)]
}

func (es *encState) writeCommentBeforeValue(node *value.Value) error {
	if es.cs == CommentsNone {
		return nil
	}
	if !node.HasComment(value.CommentBefore) {
		return nil
	}
	if !es.indented {
		if err := es.writeIndent(); err != nil {
			return err
		}
	}
	comment := node.GetComment(value.CommentBefore)
	lines := strings.Split(comment, "\n")
	for i, ln := range lines {
		if err := es.writeString(es.color(node.Type(), CommentColor, ln)); err != nil {
			return err
		}
		if i == len(lines)-1 {
			break
		}
		if err := es.writeString("\n"); err != nil {
			return err
		}
		// keep continuation comment lines at the value's indent
		if strings.HasPrefix(lines[i+1], "/") {
			if err := es.writeString(es.indentString); err != nil {
				return err
			}
		}
	}
	es.indented = false
	return nil
}

func (es *encState) writeCommentAfterValueOnSameLine(node *value.Value) error {
	if es.cs == CommentsNone {
		return nil
	}
	if node.HasComment(value.CommentAfterOnSameLine) {
		c := " " + node.GetComment(value.CommentAfterOnSameLine)
		if err := es.writeString(es.color(node.Type(), CommentColor, c)); err != nil {
			return err
		}
	}
	if node.HasComment(value.CommentAfter) {
		if err := es.writeIndent(); err != nil {
			return err
		}
		c := node.GetComment(value.CommentAfter)
		if err := es.writeString(es.color(node.Type(), CommentColor, c)); err != nil {
			return err
		}
		es.indented = false
	}
	return nil
}

func (es *encState) writeString(s string) error {
	_, err := io.WriteString(es.w, s)
	return err
}

func (es *encState) color(t value.Type, attr ColorAttr, s string) string {
	if es.colors == nil || s == "" {
		return s
	}
	return es.colors.Color(t, attr, s)
}
