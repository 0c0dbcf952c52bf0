package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/parse"
	"github.com/signadot/jsontree/query"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(3)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression argument", cli.ErrUsage)
	}
	prg, err := query.Compile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return cli.ExitCodeErr(3)
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
		res, err := prg.Eval(root)
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
