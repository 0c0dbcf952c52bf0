package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsontree/builder"
	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/value"
)

type MainConfig struct {
	Actual    bool `cli:"name=actual desc='write <file>.actual and <file>.actual-rewrite files'"`
	Color     bool `cli:"name=color desc='colorize styled output on a tty'"`
	Batch     bool `cli:"name=batch desc='process input files concurrently'"`
	YAML      bool `cli:"name=yaml desc='yaml compatible member colons'"`
	DropNulls bool `cli:"name=dropnulls desc='drop null placeholders when writing'"`
	Strict    bool `cli:"name=strict desc='strict rfc 8259 parsing'"`

	Writer   string
	Expected string
	Out      string
	CloseOut func() error

	Main  *cli.Command
	Query *cli.Command
	Patch *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) writerOpt(_ *cli.Context, a string) (any, error) {
	cfg.Writer = a
	return nil, nil
}

func (cfg *MainConfig) expectedOpt(_ *cli.Context, a string) (any, error) {
	cfg.Expected = a
	return nil, nil
}

// newReader builds the configured parser.
func (cfg *MainConfig) newReader() *builder.Reader {
	rb := builder.NewReaderBuilder()
	if cfg.Strict {
		builder.StrictMode(rb.Settings)
	}
	return rb.NewReader()
}

// writerFunc resolves the -w name to a rendering function.
func (cfg *MainConfig) writerFunc(colorize bool) (func(*value.Value) string, bool) {
	var styleOpts []encode.Option
	if cfg.YAML {
		styleOpts = append(styleOpts, encode.YAMLCompatibility(true))
	}
	if cfg.DropNulls {
		styleOpts = append(styleOpts, encode.DropNullPlaceholders(true))
	}
	if colorize {
		styleOpts = append(styleOpts, encode.EncodeColors(encode.NewColors()))
	}
	switch cfg.Writer {
	case "", "styled":
		opts := append([]encode.Option{encode.Indentation("   ")}, styleOpts...)
		return func(v *value.Value) string {
			return encode.String(v, opts...)
		}, true
	case "stream":
		return func(v *value.Value) string {
			return encode.String(v, styleOpts...)
		}, true
	case "builder":
		wb := builder.NewWriterBuilder()
		wb.Key("enableYAMLCompatibility").Assign(value.FromBool(cfg.YAML))
		wb.Key("dropNullPlaceholders").Assign(value.FromBool(cfg.DropNulls))
		w, err := wb.NewWriter()
		if err != nil {
			return nil, false
		}
		return w.String, true
	case "compact":
		return func(v *value.Value) string {
			return encode.Compact(v, styleOpts...)
		}, true
	default:
		return nil, false
	}
}

type QueryConfig struct {
	*MainConfig
}

type PatchConfig struct {
	*MainConfig
}
