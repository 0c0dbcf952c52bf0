package token

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// FormatInt renders i in base 10 with a sign only when negative.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func FormatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// FormatReal renders f with 17 significant digits in %g style,
// independent of the host locale (the decimal point is always '.').
// Non-finite values map to the fixed spellings NaN -> "null",
// +Inf -> "1e+9999", -Inf -> "-1e+9999".
//
// An integral real prints without a decimal point ("2", not "2.0"),
// so it reparses as an integer; callers needing the real variant
// preserved must keep the tree, not the text.
func FormatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "null"
	case math.IsInf(f, 1):
		return "1e+9999"
	case math.IsInf(f, -1):
		return "-1e+9999"
	}
	return strconv.FormatFloat(f, 'g', 17, 64)
}

// Number is the classification of a decimal literal: a signed whole
// number, an unsigned whole number too large for int64, or a real.
type Number struct {
	IsReal     bool
	IsUnsigned bool
	I          int64
	U          uint64
	F          float64
}

// ParseNumber classifies d.  Whole numbers prefer int64; positive
// values beyond int64 become unsigned; anything with a fraction or
// exponent, or beyond uint64, becomes a real.  Overflowing reals
// saturate to infinity rather than failing, mirroring the writer's
// 1e+9999 spellings.
func ParseNumber(d []byte) (Number, error) {
	if len(d) == 0 {
		return Number{}, ErrNumber
	}
	if !bytes.ContainsAny(d, ".eE") {
		s := string(d)
		if d[0] == '-' {
			i, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				return Number{I: i}, nil
			}
		} else {
			u, err := strconv.ParseUint(s, 10, 64)
			if err == nil {
				if u <= math.MaxInt64 {
					return Number{I: int64(u)}, nil
				}
				return Number{IsUnsigned: true, U: u}, nil
			}
		}
		// whole numbers beyond uint64 fall through to the real
		// parse
	}
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Number{IsReal: true, F: f}, nil
		}
		return Number{}, ErrNumber
	}
	return Number{IsReal: true, F: f}, nil
}
