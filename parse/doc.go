// Package parse provides the relaxed-JSON reader: a recursive
// descent parser over a byte range producing value trees with
// per-node source spans and structured diagnostics.
//
// The grammar is RFC 8259 JSON plus dialect extensions selected
// through Options: // and /* */ comments, single-quoted strings,
// bare-integer object keys, trailing commas, dropped-null
// placeholders and the NaN/Infinity spellings.
package parse
