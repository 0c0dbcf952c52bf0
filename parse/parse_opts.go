package parse

// DefaultStackLimit bounds nesting depth unless StackLimit overrides
// it.
const DefaultStackLimit = 1000

type policy struct {
	collectComments     bool
	allowComments       bool
	strictRoot          bool
	allowDroppedNulls   bool
	allowNumericKeys    bool
	allowSingleQuotes   bool
	stackLimit          int
	failIfExtra         bool
	rejectDupKeys       bool
	allowTrailingCommas bool
	allowSpecialFloats  bool
}

func defaultPolicy() *policy {
	return &policy{
		allowComments: true,
		stackLimit:    DefaultStackLimit,
	}
}

type Option func(*policy)

// CollectComments attaches source comments to the values they
// precede or follow.
func CollectComments(v bool) Option {
	return func(p *policy) { p.collectComments = v }
}

// AllowComments treats // and /* */ comments as whitespace.  It is on
// by default.
func AllowComments(v bool) Option {
	return func(p *policy) { p.allowComments = v }
}

// StrictRoot requires the document root to be an array or object.
func StrictRoot(v bool) Option {
	return func(p *policy) { p.strictRoot = v }
}

// AllowDroppedNullPlaceholders materializes empty slots between
// commas, and the object form `"k":,`, as nulls.
func AllowDroppedNullPlaceholders(v bool) Option {
	return func(p *policy) { p.allowDroppedNulls = v }
}

// AllowNumericKeys accepts bare unsigned integers as object keys.
func AllowNumericKeys(v bool) Option {
	return func(p *policy) { p.allowNumericKeys = v }
}

// AllowSingleQuotes accepts '…' string literals with the same escape
// rules as "…".
func AllowSingleQuotes(v bool) Option {
	return func(p *policy) { p.allowSingleQuotes = v }
}

// StackLimit caps container nesting depth; n <= 0 restores the
// default.
func StackLimit(n int) Option {
	return func(p *policy) {
		if n <= 0 {
			n = DefaultStackLimit
		}
		p.stackLimit = n
	}
}

// FailIfExtra reports non-whitespace input after the root value as an
// error.
func FailIfExtra(v bool) Option {
	return func(p *policy) { p.failIfExtra = v }
}

// RejectDupKeys reports a duplicate object key as a parse error
// pointing at the duplicate.
func RejectDupKeys(v bool) Option {
	return func(p *policy) { p.rejectDupKeys = v }
}

// AllowTrailingCommas accepts a comma before a closing ] or }.
func AllowTrailingCommas(v bool) Option {
	return func(p *policy) { p.allowTrailingCommas = v }
}

// AllowSpecialFloats accepts the NaN, Infinity and -Infinity
// spellings.
func AllowSpecialFloats(v bool) Option {
	return func(p *policy) { p.allowSpecialFloats = v }
}
