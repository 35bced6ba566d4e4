// Package listcmd implements the conslist program, which loads lists from JSON
// or YAML documents, applies list operations to them and prints the results.
package listcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"src.cons.sh/pkg/errutil"
	"src.cons.sh/pkg/logutil"
	"src.cons.sh/pkg/persistent/list"
	"src.cons.sh/pkg/prog"
	"src.cons.sh/pkg/sys"
)

var logger = logutil.GetLogger("[conslist] ")

// Program is the conslist program. Operations are applied in a fixed order:
// -drop, -take, -slice, -reverse, and finally -index.
type Program struct {
	yamlIn, yamlOut bool

	drop    int
	take    *int
	slice   *bounds
	reverse bool
	index   *int
}

type bounds struct{ from, to int }

// RegisterFlags implements prog.Program.
func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	*p = Program{}
	fs.BoolVar(&p.yamlIn, "yaml", false, "read input as YAML instead of JSON")
	fs.BoolVar(&p.yamlOut, "yaml-out", false, "write output as YAML instead of JSON")
	fs.IntVar(&p.drop, "drop", 0, "drop the first `n` elements")
	fs.Func("take", "keep the first `n` elements", func(s string) error {
		n, err := strconv.Atoi(s)
		p.take = &n
		return err
	})
	fs.Func("slice", "keep the elements from index `from:to`", func(s string) error {
		b, err := parseBounds(s)
		p.slice = b
		return err
	})
	fs.BoolVar(&p.reverse, "reverse", false, "reverse the list")
	fs.Func("index", "print the element at index `i` instead of a list", func(s string) error {
		i, err := strconv.Atoi(s)
		p.index = &i
		return err
	})
}

func parseBounds(s string) (*bounds, error) {
	fromStr, toStr, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("want from:to, got %q", s)
	}
	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := strconv.Atoi(toStr)
	if err != nil {
		return nil, err
	}
	return &bounds{from, to}, nil
}

// Run implements prog.Program. Each argument names an input file; "-" or no
// arguments at all means stdin. Errors from individual inputs do not stop
// the processing of other inputs, and are reported together.
func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var errs []error
	for _, name := range args {
		err := p.process(fds, name)
		if err != nil {
			errs = append(errs, errutil.Named(name, err))
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		fmt.Fprintln(fds[2], err)
		return prog.Exit(1)
	}
	return nil
}

func (p *Program) process(fds [3]*os.File, name string) error {
	data, err := readInput(fds[0], name)
	if err != nil {
		return err
	}
	l, err := p.parse(data)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d elements from %s", l.Len(), name)
	result, err := p.apply(l)
	if err != nil {
		return err
	}
	return p.write(fds[1], result)
}

func readInput(stdin *os.File, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func (p *Program) parse(data []byte) (list.List[any], error) {
	if p.yamlIn {
		return list.ParseYAML[any](data)
	}
	return list.ParseJSON[any](data)
}

func (p *Program) apply(l list.List[any]) (any, error) {
	if p.drop != 0 {
		logger.Printf("drop %d", p.drop)
		l = list.Drop(l, p.drop)
	}
	if p.take != nil {
		logger.Printf("take %d", *p.take)
		l = list.Take(l, *p.take)
	}
	if p.slice != nil {
		logger.Printf("slice %d:%d", p.slice.from, p.slice.to)
		var err error
		l, err = list.Slice(l, p.slice.from, p.slice.to)
		if err != nil {
			return nil, err
		}
	}
	if p.reverse {
		logger.Printf("reverse")
		l = list.Reverse(l)
	}
	if p.index != nil {
		logger.Printf("index %d", *p.index)
		return l.Index(*p.index)
	}
	return l, nil
}

func (p *Program) write(out *os.File, v any) error {
	var data []byte
	var err error
	switch {
	case p.yamlOut:
		data, err = yaml.Marshal(v)
	case sys.IsTerminal(out):
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		data, err = json.Marshal(v)
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
