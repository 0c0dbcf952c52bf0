package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/sync/errgroup"

	"github.com/signadot/jsontree/parse"
	"github.com/signadot/jsontree/value"
)

func runFiles(cfg *MainConfig, cc *cli.Context, files []string) error {
	colorize := cfg.Color && !cfg.Actual && cfg.Out == "" &&
		isatty.IsTerminal(os.Stdout.Fd())
	wf, ok := cfg.writerFunc(colorize)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown writer: %q\n", cfg.Writer)
		return cli.ExitCodeErr(4)
	}
	if cfg.Batch && len(files) > 1 {
		// per-file outputs only; interleaving on a shared sink
		// would garble them
		if !cfg.Actual {
			err := fmt.Errorf("%w: -batch requires -actual", cli.ErrUsage)
			cfg.Main.Usage(cc, err)
			return cli.ExitCodeErr(3)
		}
		g := &errgroup.Group{}
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, file := range files {
			g.Go(func() error {
				return processFile(cfg, cc, wf, file)
			})
		}
		return g.Wait()
	}
	for _, file := range files {
		if err := processFile(cfg, cc, wf, file); err != nil {
			return err
		}
	}
	return nil
}

func processFile(cfg *MainConfig, cc *cli.Context, wf func(*value.Value) string, file string) error {
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
	rewrite := wf(root)
	if !cfg.Actual {
		if _, err := io.WriteString(cc.Out, rewrite+"\n"); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			return cli.ExitCodeErr(2)
		}
		return nil
	}
	if err := writeActual(file+".actual", dumpTree(root)); err != nil {
		return err
	}
	if err := writeActual(file+".actual-rewrite", rewrite); err != nil {
		return err
	}
	return compareRewrite(cfg, file, rewrite)
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func writeActual(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %q: %v\n", path, err)
		return cli.ExitCodeErr(2)
	}
	return nil
}

// compareRewrite diffs the rewrite against -e, or <file>.expected
// when present.
func compareRewrite(cfg *MainConfig, file, rewrite string) error {
	expPath := cfg.Expected
	if expPath == "" {
		expPath = file + ".expected"
		if _, err := os.Stat(expPath); err != nil {
			return nil
		}
	}
	expected, err := os.ReadFile(expPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read expected file %q: %v\n", expPath, err)
		return cli.ExitCodeErr(3)
	}
	if string(expected) == rewrite {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(expected), rewrite, false)
	fmt.Fprintf(os.Stderr, "%s: rewrite differs from %s:\n", file, expPath)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(os.Stderr, dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprintln(os.Stderr, dmp.DiffToDelta(diffs))
	}
	return cli.ExitCodeErr(1)
}
