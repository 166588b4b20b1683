package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "floatkey"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<literal>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<literal>...]
       %[1]s -h|--help
       %[1]s -v|--version

Inspect float literals, as classified into keys with a total order.

The <command> can be one of:
       compare <a> <b>           Print -1, 0 or 1, as a is less than,
                                 equal to, or greater than b, in the
                                 total order -inf < finite < inf < NaN.
       inspect [<literal>...]    Print the kind, display form, JSON
                                 encoding and order-preserving key of
                                 each literal. Literals are read from
                                 stdin, one per line, if none are
                                 provided.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --verbose                 Enable debug logging, to stderr.

Negative literals may be provided after a '--' argument, or via stdin.
`, binName)
)

// Cmd is the floatkey command, with flags populated by mainer, from the
// struct tags.
type Cmd struct {
	// BuildVersion and BuildDate are printed by --version.
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	Verbose bool `flag:"verbose"`

	// set by mainer, args[0] is the command name
	args  []string
	flags map[string]bool
	// resolved by Validate
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

// Validate implements mainer's validation hook, resolving the command, and
// checking the number of literals it was given.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	if cmdName == "compare" && len(c.args[1:]) != 2 {
		return fmt.Errorf("%s: exactly two literals must be provided", cmdName)
	}

	return nil
}

// Main runs the command, args including the program name, as per os.Args.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	// input is processed line by line, and stops early on interrupt
	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command logs its own errors
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds maps the lower-cased name of each command method to the method.
// Valid commands are those that take a context, a mainer.Stdio and a slice of
// strings as input, and return an error as output (e.g. Cmd.Inspect).
func buildCmds(v any) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
