package builder

import (
	"strings"
	"testing"

	"github.com/signadot/jsontree/value"
)

func TestReaderDefaults(t *testing.T) {
	b := NewReaderBuilder()
	if !b.Validate(nil) {
		t.Fatalf("default settings do not validate")
	}
	if !b.Key("allowComments").AsBool() {
		t.Errorf("allowComments default = false")
	}
	if b.Key("rejectDupKeys").AsBool() {
		t.Errorf("rejectDupKeys default = true")
	}
	if b.Key("stackLimit").AsInt64() != 1000 {
		t.Errorf("stackLimit default = %d", b.Key("stackLimit").AsInt64())
	}
}

func TestValidateUnknownKeys(t *testing.T) {
	b := NewReaderBuilder()
	b.Key("noSuchSetting").Assign(value.FromBool(true))
	invalid := value.NewObject()
	if b.Validate(invalid) {
		t.Fatalf("unknown key validated")
	}
	if invalid.Size() != 1 || !invalid.IsMember("noSuchSetting") {
		t.Errorf("invalid = %v", invalid.MemberNames())
	}
	// construction still proceeds
	root, err := b.NewReader().ParseString(`{"a":1}`)
	if err != nil {
		t.Fatalf("reader with unknown setting: %v", err)
	}
	if root.Size() != 1 {
		t.Errorf("parse result wrong")
	}
}

func TestReaderSettingsApply(t *testing.T) {
	b := NewReaderBuilder()
	b.Key("rejectDupKeys").Assign(value.FromBool(true))
	if _, err := b.NewReader().ParseString(`{"k":1,"k":2}`); err == nil {
		t.Errorf("duplicate keys accepted")
	}

	b = NewReaderBuilder()
	b.Key("stackLimit").Assign(value.FromInt(2))
	if _, err := b.NewReader().ParseString(`[[[1]]]`); err == nil {
		t.Errorf("stack limit not applied")
	}
}

func TestStrictMode(t *testing.T) {
	b := NewReaderBuilder()
	StrictMode(b.Settings)
	r := b.NewReader()
	if _, err := r.ParseString(`// c` + "\n" + `{}`); err == nil {
		t.Errorf("strict mode accepted comments")
	}
	if _, err := r.ParseString(`"scalar root"`); err == nil {
		t.Errorf("strict mode accepted scalar root")
	}
	if _, err := r.ParseString(`{} extra`); err == nil {
		t.Errorf("strict mode accepted extra input")
	}
	if _, err := r.ParseString(`{"a":1}`); err != nil {
		t.Errorf("strict mode rejected plain object: %v", err)
	}
}

func TestWriterBuilder(t *testing.T) {
	b := NewWriterBuilder()
	if !b.Validate(nil) {
		t.Fatalf("default writer settings do not validate")
	}
	w, err := b.NewWriter()
	if err != nil {
		t.Fatal(err)
	}
	obj := value.NewObject()
	obj.SetMember("k", value.FromInt(1))
	if got := w.String(obj); got != "{\n\t\"k\" : 1\n}" {
		t.Errorf("default writer = %q", got)
	}
}

func TestWriterBuilderSettings(t *testing.T) {
	b := NewWriterBuilder()
	b.Key("enableYAMLCompatibility").Assign(value.FromBool(true))
	b.Key("indentation").Assign(value.FromString("  "))
	w, err := b.NewWriter()
	if err != nil {
		t.Fatal(err)
	}
	obj := value.NewObject()
	obj.SetMember("k", value.FromInt(1))
	if got := w.String(obj); got != "{\n  \"k\": 1\n}" {
		t.Errorf("configured writer = %q", got)
	}
}

func TestWriterBuilderBadCommentStyle(t *testing.T) {
	b := NewWriterBuilder()
	b.Key("commentStyle").Assign(value.FromString("Some"))
	if _, err := b.NewWriter(); err == nil {
		t.Errorf("bad commentStyle accepted")
	}
	if err := func() error {
		_, err := b.NewWriter()
		return err
	}(); err == nil || !strings.Contains(err.Error(), "commentStyle") {
		t.Errorf("error does not mention commentStyle: %v", err)
	}
}

func TestWriteString(t *testing.T) {
	b := NewWriterBuilder()
	out, err := WriteString(b, value.FromString("x"))
	if err != nil {
		t.Fatal(err)
	}
	if out != `"x"` {
		t.Errorf("WriteString = %q", out)
	}
}
