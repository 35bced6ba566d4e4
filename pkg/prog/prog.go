// Package prog provides the entry point of command-line programs: it parses
// flags common to all programs, sets up logging and calls the Program.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.cons.sh/pkg/logutil"
)

// Program represents a command-line program.
type Program interface {
	// RegisterFlags registers the flags specific to the program.
	RegisterFlags(fs *FlagSet)
	// Run runs the program with the remaining non-flag arguments.
	Run(fds [3]*os.File, args []string) error
}

// FlagSet wraps a flag.FlagSet.
type FlagSet struct {
	*flag.FlagSet
}

// Flags keeps the flags common to all programs.
type Flags struct {
	Log  string
	Help bool
}

func newFlagSet(name string, f *Flags) *FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")

	return &FlagSet{fs}
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintf(out, "Usage: %s [flags] [file...]\n", fs.Name())
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Run parses command-line flags and runs the program. args[0] is the name of
// the program. It returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(args[0], f)
	p.RegisterFlags(fs)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h was requested but
			// *not* defined. Handle this by printing the same message as an
			// undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		} else {
			defer logutil.SetOutputFile("")
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Composite returns a Program that registers the flags of all the given
// programs, and runs each of them in turn until one doesn't return
// ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp compositeProgram) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")
