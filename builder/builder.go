// Package builder provides settings-driven construction of readers
// and writers.  A builder holds its settings in a value object, so
// the configuration surface can grow without breaking callers;
// Validate reports keys a builder does not recognize.
package builder

import (
	"fmt"
	"io"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/parse"
	"github.com/signadot/jsontree/value"
)

var readerKeys = map[string]bool{
	"collectComments":              true,
	"allowComments":                true,
	"allowTrailingCommas":          true,
	"strictRoot":                   true,
	"allowDroppedNullPlaceholders": true,
	"allowNumericKeys":             true,
	"allowSingleQuotes":            true,
	"stackLimit":                   true,
	"failIfExtra":                  true,
	"rejectDupKeys":                true,
	"allowSpecialFloats":           true,
}

var writerKeys = map[string]bool{
	"indentation":             true,
	"commentStyle":            true,
	"enableYAMLCompatibility": true,
	"dropNullPlaceholders":    true,
}

// ReaderBuilder configures readers.
//
//	b := builder.NewReaderBuilder()
//	b.Key("rejectDupKeys").Assign(value.FromBool(true))
//	root, err := b.NewReader().Parse(data)
type ReaderBuilder struct {
	Settings *value.Value
}

func NewReaderBuilder() *ReaderBuilder {
	b := &ReaderBuilder{Settings: value.NewObject()}
	ReaderDefaults(b.Settings)
	return b
}

// Key returns the mutable settings slot for k, inserting null when
// absent.
func (b *ReaderBuilder) Key(k string) *value.Value {
	return b.Settings.Member(k)
}

// Validate reports whether every settings key is recognized.  When
// invalid is non-nil the unknown subset is collected into it.
func (b *ReaderBuilder) Validate(invalid *value.Value) bool {
	return validateKeys(b.Settings, readerKeys, invalid)
}

// NewReader snapshots the settings into a Reader.  Unrecognized keys
// are ignored; construction proceeds with defaults for anything
// missing.
func (b *ReaderBuilder) NewReader() *Reader {
	s := b.Settings
	opts := []parse.Option{
		parse.CollectComments(boolKey(s, "collectComments", true)),
		parse.AllowComments(boolKey(s, "allowComments", true)),
		parse.AllowTrailingCommas(boolKey(s, "allowTrailingCommas", false)),
		parse.StrictRoot(boolKey(s, "strictRoot", false)),
		parse.AllowDroppedNullPlaceholders(boolKey(s, "allowDroppedNullPlaceholders", false)),
		parse.AllowNumericKeys(boolKey(s, "allowNumericKeys", false)),
		parse.AllowSingleQuotes(boolKey(s, "allowSingleQuotes", false)),
		parse.StackLimit(intKey(s, "stackLimit", parse.DefaultStackLimit)),
		parse.FailIfExtra(boolKey(s, "failIfExtra", false)),
		parse.RejectDupKeys(boolKey(s, "rejectDupKeys", false)),
		parse.AllowSpecialFloats(boolKey(s, "allowSpecialFloats", false)),
	}
	return &Reader{opts: opts}
}

// ReaderDefaults resets settings to the default reader
// configuration.
func ReaderDefaults(settings *value.Value) {
	settings.SetMember("collectComments", value.FromBool(true))
	settings.SetMember("allowComments", value.FromBool(true))
	settings.SetMember("allowTrailingCommas", value.FromBool(false))
	settings.SetMember("strictRoot", value.FromBool(false))
	settings.SetMember("allowDroppedNullPlaceholders", value.FromBool(false))
	settings.SetMember("allowNumericKeys", value.FromBool(false))
	settings.SetMember("allowSingleQuotes", value.FromBool(false))
	settings.SetMember("stackLimit", value.FromInt(parse.DefaultStackLimit))
	settings.SetMember("failIfExtra", value.FromBool(false))
	settings.SetMember("rejectDupKeys", value.FromBool(false))
	settings.SetMember("allowSpecialFloats", value.FromBool(false))
}

// StrictMode configures settings for strict RFC 8259 parsing:
// comments off, array or object root, duplicate keys and extra input
// rejected.
func StrictMode(settings *value.Value) {
	settings.SetMember("allowComments", value.FromBool(false))
	settings.SetMember("allowTrailingCommas", value.FromBool(false))
	settings.SetMember("strictRoot", value.FromBool(true))
	settings.SetMember("allowDroppedNullPlaceholders", value.FromBool(false))
	settings.SetMember("allowNumericKeys", value.FromBool(false))
	settings.SetMember("allowSingleQuotes", value.FromBool(false))
	settings.SetMember("stackLimit", value.FromInt(parse.DefaultStackLimit))
	settings.SetMember("failIfExtra", value.FromBool(true))
	settings.SetMember("rejectDupKeys", value.FromBool(true))
	settings.SetMember("allowSpecialFloats", value.FromBool(false))
}

// Reader is a parser with a settings snapshot.
type Reader struct {
	opts []parse.Option
}

func (r *Reader) Parse(d []byte) (*value.Value, error) {
	return parse.Parse(d, r.opts...)
}

func (r *Reader) ParseString(s string) (*value.Value, error) {
	return parse.ParseString(s, r.opts...)
}

// WriterBuilder configures writers.
type WriterBuilder struct {
	Settings *value.Value
}

func NewWriterBuilder() *WriterBuilder {
	b := &WriterBuilder{Settings: value.NewObject()}
	WriterDefaults(b.Settings)
	return b
}

func (b *WriterBuilder) Key(k string) *value.Value {
	return b.Settings.Member(k)
}

func (b *WriterBuilder) Validate(invalid *value.Value) bool {
	return validateKeys(b.Settings, writerKeys, invalid)
}

// NewWriter snapshots the settings into a Writer.  It fails only
// when commentStyle is neither "All" nor "None".
func (b *WriterBuilder) NewWriter() (*Writer, error) {
	s := b.Settings
	cs := encode.CommentsAll
	switch stringKey(s, "commentStyle", "All") {
	case "All":
		cs = encode.CommentsAll
	case "None":
		cs = encode.CommentsNone
	default:
		return nil, fmt.Errorf("commentStyle must be 'All' or 'None'")
	}
	opts := []encode.Option{
		encode.Indentation(stringKey(s, "indentation", "\t")),
		encode.Comments(cs),
		encode.YAMLCompatibility(boolKey(s, "enableYAMLCompatibility", false)),
		encode.DropNullPlaceholders(boolKey(s, "dropNullPlaceholders", false)),
	}
	return &Writer{opts: opts}, nil
}

// WriterDefaults resets settings to the default writer
// configuration.
func WriterDefaults(settings *value.Value) {
	settings.SetMember("commentStyle", value.FromString("All"))
	settings.SetMember("indentation", value.FromString("\t"))
	settings.SetMember("enableYAMLCompatibility", value.FromBool(false))
	settings.SetMember("dropNullPlaceholders", value.FromBool(false))
}

// Writer is a styled writer with a settings snapshot.
type Writer struct {
	opts []encode.Option
}

func (w *Writer) Write(node *value.Value, sink io.Writer) error {
	return encode.Write(node, sink, w.opts...)
}

func (w *Writer) String(node *value.Value) string {
	return encode.String(node, w.opts...)
}

// WriteString renders root with a writer built from b.
func WriteString(b *WriterBuilder, root *value.Value) (string, error) {
	w, err := b.NewWriter()
	if err != nil {
		return "", err
	}
	return w.String(root), nil
}

func validateKeys(settings *value.Value, known map[string]bool, invalid *value.Value) bool {
	ok := true
	for _, name := range settings.MemberNames() {
		if known[name] {
			continue
		}
		ok = false
		if invalid != nil {
			invalid.SetMember(name, settings.Get(name, value.Null()).Clone())
		}
	}
	return ok
}

func boolKey(settings *value.Value, k string, def bool) bool {
	v, ok := settings.Lookup(k)
	if !ok || !v.IsConvertibleTo(value.BoolType) {
		return def
	}
	return v.AsBool()
}

func intKey(settings *value.Value, k string, def int) int {
	v, ok := settings.Lookup(k)
	if !ok || !v.IsNumeric() {
		return def
	}
	return int(v.AsInt64())
}

func stringKey(settings *value.Value, k string, def string) string {
	v, ok := settings.Lookup(k)
	if !ok || !v.IsString() {
		return def
	}
	return v.AsString()
}
