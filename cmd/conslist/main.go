// Conslist reads lists from JSON or YAML documents, applies persistent list
// operations to them and prints the results.
package main

import (
	"os"

	"src.cons.sh/pkg/buildinfo"
	"src.cons.sh/pkg/listcmd"
	"src.cons.sh/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &listcmd.Program{})))
}
