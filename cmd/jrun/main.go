// jrun parses JSON documents, dumps the resulting trees and rewrites
// them with a selected writer.  It exits 0 on success, 1 on a parse
// or comparison failure, 2 on an output file error, 3 on a usage
// error and 4 on an unknown writer name.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
