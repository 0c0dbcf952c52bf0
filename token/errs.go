package token

import "errors"

var (
	ErrBadEscape        = errors.New("bad escape sequence")
	ErrExpectFourHex    = errors.New("four hex digits expected")
	ErrExpectHexDigit   = errors.New("hexadecimal digit expected")
	ErrExpectLowPair    = errors.New("six characters expected for surrogate pair")
	ErrExpectSecondPair = errors.New("expecting second half of surrogate pair")
	ErrUnterminated     = errors.New("unterminated")
	ErrNumber           = errors.New("not a number")
)
