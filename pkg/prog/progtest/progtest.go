// Package progtest contains utilities for testing [prog.Program] instances
// with in-memory stdin and captured stdout and stderr.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.cons.sh/pkg/prog"
)

// Case is a test case for Test. It is created by ThatProgram, and offers
// setters that augment and return itself.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	out, err   output
}

type output struct {
	content  string
	partial  bool
	anything bool
}

func (o output) String() string {
	switch {
	case o.anything:
		return "anything"
	case o.partial:
		return "text containing " + quote(o.content)
	default:
		return quote(o.content)
	}
}

func (o output) matches(s string) bool {
	switch {
	case o.anything:
		return true
	case o.partial:
		return strings.Contains(s, o.content)
	default:
		return s == o.content
	}
}

// ThatProgram returns a Case that runs the program with the given arguments.
// By default, the program is expected to exit with 0 and write nothing.
func ThatProgram(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that feeds the given string to the
// program's stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{content: s, partial: true}
	return c
}

// WritesAnyStderr returns an altered Case that accepts anything written to
// stderr.
func (c Case) WritesAnyStderr() Case {
	c.want.err = output{anything: true}
	return c
}

// Test runs test cases against the given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exitStatus != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !c.want.out.matches(r.out.content) {
				t.Errorf("got stdout %v, want %v", r.out, c.want.out)
			}
			if !c.want.err.matches(r.err.content) {
				t.Errorf("got stderr %v, want %v", r.err, c.want.err)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// status of the program, and what was written to stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r := run(p, args, stdin)
	return r.exitStatus, r.out.content, r.err.content
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := pipe()
	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	r1, w1 := pipe()
	r2, w2 := pipe()
	// Read stdout and stderr concurrently, so that the program doesn't block
	// on a full pipe.
	outCh, errCh := readAllAsync(r1), readAllAsync(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, append([]string{"conslist"}, args...), p)
	r0.Close()
	w1.Close()
	w2.Close()
	return result{exit, output{content: <-outCh}, output{content: <-errCh}}
}

func pipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(r)
		r.Close()
		ch <- string(data)
	}()
	return ch
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\n", `\n`) + "\""
}
