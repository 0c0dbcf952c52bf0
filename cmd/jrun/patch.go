package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/parse"
	"github.com/signadot/jsontree/patch"
	"github.com/signadot/jsontree/value"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(3)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	pd, err := readInput(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read patch file %q: %v\n", args[0], err)
		return cli.ExitCodeErr(3)
	}
	ops, perr := cfg.newReader().Parse(pd)
	if perr != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse %s:\n%s", args[0],
			parse.FormattedErrorMessages(perr))
		return cli.ExitCodeErr(1)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input file %q: %v\n", file, err)
			return cli.ExitCodeErr(3)
		}
		root, perr := cfg.newReader().Parse(d)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse %s:\n%s", file,
				parse.FormattedErrorMessages(perr))
			return cli.ExitCodeErr(1)
		}
		res, err := applyPatch(root, ops)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return cli.ExitCodeErr(1)
		}
		if _, err := io.WriteString(cc.Out, encode.String(res)+"\n"); err != nil {
			return cli.ExitCodeErr(2)
		}
	}
	return nil
}

// applyPatch treats an array patch as RFC 6902 and an object patch
// as an RFC 7386 merge patch.
func applyPatch(doc, ops *value.Value) (*value.Value, error) {
	if ops.IsArray() {
		return patch.Apply(doc, ops)
	}
	return patch.Merge(doc, ops)
}
