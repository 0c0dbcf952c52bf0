// Package token provides the low-level text codecs shared by the
// reader and writer: string quoting and unquoting, locale-independent
// number formatting and classification, and byte-offset to
// line/column translation.
package token
