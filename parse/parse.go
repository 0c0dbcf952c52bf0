package parse

import (
	"fmt"
	"math"
	"strings"

	"github.com/signadot/jsontree/debug"
	"github.com/signadot/jsontree/token"
	"github.com/signadot/jsontree/value"
)

// Parse reads the byte range d into a value tree.  Every produced
// node carries the byte span of its source text.  On failure the
// returned error is an *ErrorList; the returned root may still hold a
// partial tree and should then be treated as diagnostic only.
func Parse(d []byte, opts ...Option) (*value.Value, error) {
	pol := defaultPolicy()
	for _, o := range opts {
		o(pol)
	}
	r := &reader{d: d, pol: pol}
	root, ok := r.readValue()
	t := r.skipCommentTokens()
	if pol.failIfExtra && ok && t.kind != tokEnd {
		r.addError("Extra non-whitespace after JSON value.", t)
	}
	if root == nil {
		root = value.Null()
	}
	if pol.collectComments && r.commentsBefore != "" {
		root.SetComment(r.commentsBefore, value.CommentAfter)
	}
	if pol.strictRoot && ok && !root.IsArray() && !root.IsObject() {
		r.addError("A valid JSON document must be either an array or an object value.",
			tok{start: root.OffsetStart(), end: root.OffsetLimit()})
	}
	if len(r.errs) > 0 {
		return root, &ErrorList{Errors: r.errs, doc: token.NewPosDoc(d)}
	}
	return root, nil
}

func ParseString(s string, opts ...Option) (*value.Value, error) {
	return Parse([]byte(s), opts...)
}

type tokKind int

const (
	tokEnd tokKind = iota
	tokObjectBegin
	tokObjectEnd
	tokArrayBegin
	tokArrayEnd
	tokString
	tokBadString
	tokNumber
	tokTrue
	tokFalse
	tokNull
	tokNaN
	tokPosInf
	tokNegInf
	tokArraySep
	tokMemberSep
	tokComment
	tokBadComment
	tokError
)

type tok struct {
	kind       tokKind
	start, end int
}

type reader struct {
	d   []byte
	cur int
	pol *policy

	peeked *tok
	depth  int
	errs   []*Error

	commentsBefore string
	lastValue      *value.Value
	lastValueEnd   int
}

func (r *reader) addError(msg string, t tok) {
	r.errs = append(r.errs, &Error{
		Start:   t.start,
		Limit:   t.end,
		Message: msg,
		Detail:  -1,
	})
}

func (r *reader) addErrorDetail(msg string, t tok, detail int) {
	r.errs = append(r.errs, &Error{
		Start:   t.start,
		Limit:   t.end,
		Message: msg,
		Detail:  detail,
	})
}

// recoverFromError skips tokens until endKind (or end of input) so an
// enclosing container can resynchronize; it always reports failure.
func (r *reader) recoverFromError(endKind tokKind) bool {
	if debug.Parse() {
		debug.Logf("parse: recovering at offset %d\n", r.cur)
	}
	for {
		t := r.readToken()
		if t.kind == endKind || t.kind == tokEnd {
			return false
		}
	}
}

func (r *reader) readValue() (*value.Value, bool) {
	t := r.skipCommentTokens()
	switch t.kind {
	case tokObjectBegin:
		return r.readObject(t)
	case tokArrayBegin:
		return r.readArray(t)
	case tokString:
		out, ok := r.decodeStringToken(t)
		if !ok {
			return nil, false
		}
		return r.finishValue(value.TakeBytes(out), t), true
	case tokNumber:
		return r.decodeNumber(t)
	case tokTrue:
		return r.finishValue(value.FromBool(true), t), true
	case tokFalse:
		return r.finishValue(value.FromBool(false), t), true
	case tokNull:
		return r.finishValue(value.Null(), t), true
	case tokNaN:
		return r.finishValue(value.FromFloat(math.NaN()), t), true
	case tokPosInf:
		return r.finishValue(value.FromFloat(math.Inf(1)), t), true
	case tokNegInf:
		return r.finishValue(value.FromFloat(math.Inf(-1)), t), true
	case tokBadString:
		r.addError("Unterminated string.", t)
		return nil, false
	case tokBadComment:
		r.addError("Unterminated comment.", t)
		return nil, false
	case tokArraySep, tokObjectEnd, tokArrayEnd:
		if r.pol.allowDroppedNulls {
			// an empty slot materializes as null; the token
			// belongs to the enclosing container
			r.unread(t)
			v := value.Null()
			v.SetOffsetStart(t.start)
			v.SetOffsetLimit(t.start)
			return v, true
		}
		fallthrough
	default:
		r.addError("Syntax error: value, object or array expected.", t)
		return nil, false
	}
}

// finishValue stamps the span, claims pending before-comments and
// records the value for same-line comment attachment.
func (r *reader) finishValue(v *value.Value, t tok) *value.Value {
	v.SetOffsetStart(t.start)
	v.SetOffsetLimit(t.end)
	if r.commentsBefore != "" {
		v.SetComment(r.commentsBefore, value.CommentBefore)
		r.commentsBefore = ""
	}
	r.lastValue = v
	r.lastValueEnd = t.end
	return v
}

func (r *reader) readObject(begin tok) (*value.Value, bool) {
	obj := value.NewObject()
	obj.SetOffsetStart(begin.start)
	if r.commentsBefore != "" {
		obj.SetComment(r.commentsBefore, value.CommentBefore)
		r.commentsBefore = ""
	}
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.pol.stackLimit {
		r.addError("Exceeded stackLimit in readValue().", begin)
		return obj, false
	}
	var last *value.Value
	for {
		t := r.skipCommentTokens()
		if t.kind == tokObjectEnd && (obj.Size() == 0 || r.pol.allowTrailingCommas) {
			r.closeContainer(obj, last, t)
			return obj, true
		}
		var key value.ObjectKey
		var name string
		switch {
		case t.kind == tokString:
			s, ok := r.decodeStringToken(t)
			if !ok {
				return obj, r.recoverFromError(tokObjectEnd)
			}
			name = string(s)
			key = value.Key(name)
		case t.kind == tokNumber && r.pol.allowNumericKeys:
			u, ok := r.decodeNumericKey(t)
			if !ok {
				return obj, r.recoverFromError(tokObjectEnd)
			}
			key = value.IndexKey(u)
			name = key.String()
		case t.kind == tokEnd:
			r.addError("Missing '}' or object member name", t)
			return obj, false
		default:
			r.addError("Missing '}' or object member name", t)
			return obj, r.recoverFromError(tokObjectEnd)
		}
		colon := r.readToken()
		if colon.kind != tokMemberSep {
			r.addError("Missing ':' after object member name", colon)
			return obj, r.recoverFromError(tokObjectEnd)
		}
		if r.pol.rejectDupKeys {
			if _, exists := obj.LookupKey(key); exists {
				r.addError(fmt.Sprintf("Duplicate key: '%s'", name), t)
				return obj, r.recoverFromError(tokObjectEnd)
			}
		}
		v, ok := r.readValue()
		if v != nil {
			obj.SetMemberKey(key, v)
			last = v
		}
		if !ok {
			return obj, r.recoverFromError(tokObjectEnd)
		}
		sep := r.skipCommentTokens()
		switch sep.kind {
		case tokArraySep:
		case tokObjectEnd:
			r.closeContainer(obj, last, sep)
			return obj, true
		default:
			r.addError("Missing ',' or '}' in object declaration", sep)
			return obj, r.recoverFromError(tokObjectEnd)
		}
	}
}

func (r *reader) decodeNumericKey(t tok) (uint64, bool) {
	num, err := token.ParseNumber(r.d[t.start:t.end])
	switch {
	case err != nil, num.IsReal, !num.IsUnsigned && num.I < 0:
		r.addError("Missing '}' or object member name", t)
		return 0, false
	case num.IsUnsigned:
		return num.U, true
	default:
		return uint64(num.I), true
	}
}

func (r *reader) readArray(begin tok) (*value.Value, bool) {
	arr := value.NewArray()
	arr.SetOffsetStart(begin.start)
	if r.commentsBefore != "" {
		arr.SetComment(r.commentsBefore, value.CommentBefore)
		r.commentsBefore = ""
	}
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.pol.stackLimit {
		r.addError("Exceeded stackLimit in readValue().", begin)
		return arr, false
	}
	var last *value.Value
	for {
		t := r.skipCommentTokens()
		// with dropped nulls a trailing comma denotes a null
		// element, so the trailing-comma close does not apply
		if t.kind == tokArrayEnd &&
			(arr.Size() == 0 || (r.pol.allowTrailingCommas && !r.pol.allowDroppedNulls)) {
			r.closeContainer(arr, last, t)
			return arr, true
		}
		r.unread(t)
		v, ok := r.readValue()
		if v != nil {
			arr.Append(v)
			last = v
		}
		if !ok {
			return arr, r.recoverFromError(tokArrayEnd)
		}
		sep := r.skipCommentTokens()
		switch sep.kind {
		case tokArraySep:
		case tokArrayEnd:
			r.closeContainer(arr, last, sep)
			return arr, true
		default:
			r.addError("Missing ',' or ']' in array declaration", sep)
			return arr, r.recoverFromError(tokArrayEnd)
		}
	}
}

// closeContainer stamps the container's span at its end token and
// hands any comments pending since the last child to that child as
// an After comment.
func (r *reader) closeContainer(c, last *value.Value, end tok) {
	if r.commentsBefore != "" && last != nil {
		last.SetComment(r.commentsBefore, value.CommentAfter)
		r.commentsBefore = ""
	}
	c.SetOffsetLimit(end.end)
	r.lastValue = c
	r.lastValueEnd = end.end
}

func (r *reader) decodeNumber(t tok) (*value.Value, bool) {
	num, err := token.ParseNumber(r.d[t.start:t.end])
	if err != nil {
		r.addError(fmt.Sprintf("'%s' is not a number.", r.d[t.start:t.end]), t)
		return nil, false
	}
	var v *value.Value
	switch {
	case num.IsReal:
		v = value.FromFloat(num.F)
	case num.IsUnsigned:
		v = value.FromUint(num.U)
	default:
		v = value.FromInt(num.I)
	}
	return r.finishValue(v, t), true
}

func (r *reader) decodeStringToken(t tok) ([]byte, bool) {
	body := r.d[t.start+1 : t.end-1]
	out, off, err := token.Unquote(body)
	if err == nil {
		return out, true
	}
	var msg string
	switch err {
	case token.ErrExpectFourHex:
		msg = "Bad unicode escape sequence in string: four digits expected."
	case token.ErrExpectHexDigit:
		msg = "Bad unicode escape sequence in string: hexadecimal digit expected."
	case token.ErrExpectLowPair:
		msg = "additional six characters expected to parse unicode surrogate pair."
	case token.ErrExpectSecondPair:
		msg = "expecting another \\u token to begin the second half of a unicode surrogate pair"
	default:
		msg = "Bad escape sequence in string"
	}
	r.addErrorDetail(msg, t, t.start+1+off)
	return nil, false
}

// token scanning

func (r *reader) unread(t tok) {
	r.peeked = &t
}

func (r *reader) skipCommentTokens() tok {
	for {
		t := r.readToken()
		if t.kind != tokComment {
			return t
		}
		r.processComment(t)
	}
}

func (r *reader) processComment(t tok) {
	if !r.pol.collectComments {
		return
	}
	text := string(r.d[t.start:t.end])
	isLine := strings.HasPrefix(text, "//")
	if r.lastValue != nil &&
		!r.containsNewLine(r.lastValueEnd, t.start) &&
		(isLine || !r.containsNewLine(t.start, t.end)) {
		r.lastValue.SetComment(text, value.CommentAfterOnSameLine)
		return
	}
	if r.commentsBefore != "" {
		r.commentsBefore += "\n"
	}
	r.commentsBefore += text
}

func (r *reader) containsNewLine(begin, end int) bool {
	for i := begin; i < end && i < len(r.d); i++ {
		if r.d[i] == '\n' || r.d[i] == '\r' {
			return true
		}
	}
	return false
}

func (r *reader) skipSpaces() {
	for r.cur < len(r.d) {
		switch r.d[r.cur] {
		case ' ', '\t', '\r', '\n':
			r.cur++
		default:
			return
		}
	}
}

func (r *reader) readToken() tok {
	if r.peeked != nil {
		t := *r.peeked
		r.peeked = nil
		return t
	}
	r.skipSpaces()
	start := r.cur
	if r.cur >= len(r.d) {
		return tok{kind: tokEnd, start: start, end: start}
	}
	c := r.d[r.cur]
	r.cur++
	switch c {
	case '{':
		return tok{kind: tokObjectBegin, start: start, end: r.cur}
	case '}':
		return tok{kind: tokObjectEnd, start: start, end: r.cur}
	case '[':
		return tok{kind: tokArrayBegin, start: start, end: r.cur}
	case ']':
		return tok{kind: tokArrayEnd, start: start, end: r.cur}
	case ',':
		return tok{kind: tokArraySep, start: start, end: r.cur}
	case ':':
		return tok{kind: tokMemberSep, start: start, end: r.cur}
	case '"':
		return r.readStringToken('"', start)
	case '\'':
		if r.pol.allowSingleQuotes {
			return r.readStringToken('\'', start)
		}
		return tok{kind: tokError, start: start, end: r.cur}
	case '/':
		if r.pol.allowComments {
			return r.readCommentToken(start)
		}
		return tok{kind: tokError, start: start, end: r.cur}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		r.cur--
		return r.readNumberToken(start)
	case '-':
		if r.pol.allowSpecialFloats && r.match("Infinity") {
			return tok{kind: tokNegInf, start: start, end: r.cur}
		}
		r.cur--
		return r.readNumberToken(start)
	case 't':
		if r.match("rue") {
			return tok{kind: tokTrue, start: start, end: r.cur}
		}
		return tok{kind: tokError, start: start, end: r.cur}
	case 'f':
		if r.match("alse") {
			return tok{kind: tokFalse, start: start, end: r.cur}
		}
		return tok{kind: tokError, start: start, end: r.cur}
	case 'n':
		if r.match("ull") {
			return tok{kind: tokNull, start: start, end: r.cur}
		}
		return tok{kind: tokError, start: start, end: r.cur}
	case 'N':
		if r.pol.allowSpecialFloats && r.match("aN") {
			return tok{kind: tokNaN, start: start, end: r.cur}
		}
		return tok{kind: tokError, start: start, end: r.cur}
	case 'I':
		if r.pol.allowSpecialFloats && r.match("nfinity") {
			return tok{kind: tokPosInf, start: start, end: r.cur}
		}
		return tok{kind: tokError, start: start, end: r.cur}
	default:
		return tok{kind: tokError, start: start, end: r.cur}
	}
}

func (r *reader) match(pattern string) bool {
	if len(r.d)-r.cur < len(pattern) {
		return false
	}
	if string(r.d[r.cur:r.cur+len(pattern)]) != pattern {
		return false
	}
	r.cur += len(pattern)
	return true
}

func (r *reader) readStringToken(quote byte, start int) tok {
	escaped := false
	for r.cur < len(r.d) {
		c := r.d[r.cur]
		r.cur++
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return tok{kind: tokString, start: start, end: r.cur}
		}
	}
	return tok{kind: tokBadString, start: start, end: r.cur}
}

func (r *reader) readCommentToken(start int) tok {
	if r.cur >= len(r.d) {
		return tok{kind: tokError, start: start, end: r.cur}
	}
	c := r.d[r.cur]
	r.cur++
	switch c {
	case '/':
		for r.cur < len(r.d) && r.d[r.cur] != '\n' {
			if r.d[r.cur] == '\r' {
				break
			}
			r.cur++
		}
		return tok{kind: tokComment, start: start, end: r.cur}
	case '*':
		for r.cur+1 < len(r.d) {
			if r.d[r.cur] == '*' && r.d[r.cur+1] == '/' {
				r.cur += 2
				return tok{kind: tokComment, start: start, end: r.cur}
			}
			r.cur++
		}
		r.cur = len(r.d)
		return tok{kind: tokBadComment, start: start, end: r.cur}
	default:
		return tok{kind: tokError, start: start, end: r.cur}
	}
}

func (r *reader) readNumberToken(start int) tok {
	if r.cur < len(r.d) && r.d[r.cur] == '-' {
		r.cur++
	}
	r.digits()
	if r.cur < len(r.d) && r.d[r.cur] == '.' {
		r.cur++
		r.digits()
	}
	if r.cur < len(r.d) && (r.d[r.cur] == 'e' || r.d[r.cur] == 'E') {
		r.cur++
		if r.cur < len(r.d) && (r.d[r.cur] == '+' || r.d[r.cur] == '-') {
			r.cur++
		}
		r.digits()
	}
	return tok{kind: tokNumber, start: start, end: r.cur}
}

func (r *reader) digits() {
	for r.cur < len(r.d) && r.d[r.cur] >= '0' && r.d[r.cur] <= '9' {
		r.cur++
	}
}
