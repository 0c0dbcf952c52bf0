package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/jsontree/token"
)

// Error is one reader diagnostic: a message and the byte span of the
// offending input, with an optional detail offset (e.g. the backslash
// of a bad escape).
type Error struct {
	Start   int
	Limit   int
	Message string
	Detail  int // byte offset, -1 when absent
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorList is the error returned by Parse: the accumulated
// diagnostics together with the document needed to render line and
// column numbers.
type ErrorList struct {
	Errors []*Error

	doc *token.PosDoc
}

func (e *ErrorList) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	first := e.Errors[0]
	l, c := e.doc.LineCol(first.Start)
	msg := fmt.Sprintf("Line %d, Column %d: %s", l, c, first.Message)
	if len(e.Errors) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(e.Errors)-1)
	}
	return msg
}

// Formatted renders every diagnostic in the classic multi-line form:
//
//	* Line 1, Column 15
//	  Syntax error: value, object or array expected.
func (e *ErrorList) Formatted() string {
	b := &strings.Builder{}
	for _, err := range e.Errors {
		l, c := e.doc.LineCol(err.Start)
		fmt.Fprintf(b, "* Line %d, Column %d\n  %s\n", l, c, err.Message)
		if err.Detail >= 0 {
			dl, dc := e.doc.LineCol(err.Detail)
			fmt.Fprintf(b, "See Line %d, Column %d for detail.\n", dl, dc)
		}
	}
	return b.String()
}

// FormattedErrorMessages returns the formatted diagnostics of err
// when err came from Parse, and err.Error() otherwise.
func FormattedErrorMessages(err error) string {
	if el, ok := err.(*ErrorList); ok {
		return el.Formatted()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
