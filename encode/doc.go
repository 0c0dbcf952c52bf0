// Package encode provides the writers: a styled writer that renders
// indented output with comments and a per-array inline/multi-line
// layout decision, and a compact single-line writer.  Both consume
// value trees and never fail on well-typed input; only sink errors
// propagate.
package encode
