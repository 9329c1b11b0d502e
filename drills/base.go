// Package drills holds the course's example programs: dozens of tiny
// commands, one file each, that demonstrate a single shell-scripting concept.
// Every drill reads its arguments (and sometimes stdin), writes
// human-readable text to stdout and returns an exit status; nothing persists
// between invocations.
package drills

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Drill is a registered example program.
type Drill struct {
	// Name the drill is invoked by.
	Name string
	// Topic is the shell concept the drill demonstrates, e.g. "loops".
	Topic string
	// Short holds a one line description.
	Short string
	// Day is the day the drill first appears in the 10-day plan.
	Day int
	// Proc is the entry point.
	Proc sandbox.ProcessFunc
}

var registry = make(map[string]Drill)

// mustRegister adds a drill to the registry, panicking on programmer error.
func mustRegister(d Drill) {
	if d.Name == "" || d.Proc == nil {
		panic(fmt.Sprintf("invalid drill registration: %+v", d))
	}
	if _, exists := registry[d.Name]; exists {
		panic(fmt.Sprintf("duplicate drill: %s", d.Name))
	}
	registry[d.Name] = d
}

// Lookup finds a drill by name.
func Lookup(name string) (Drill, bool) {
	d, ok := registry[name]
	return d, ok
}

// Resolver adapts the registry to a sandbox.Resolver.
func Resolver(name string) sandbox.ProcessFunc {
	if d, ok := registry[name]; ok {
		return d.Proc
	}
	return nil
}

// All lists every registered drill sorted by name.
func All() []Drill {
	out := make([]Drill, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByTopic lists every registered drill grouped by topic, topics sorted.
func ByTopic() map[string][]Drill {
	out := make(map[string][]Drill)
	for _, d := range All() {
		out[d.Topic] = append(out[d.Topic], d)
	}
	return out
}

// SimpleCommand handles the boilerplate every drill shares: getopt flag
// parsing, a usage line and an implicit -h/--help.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not. If this is non-nil
	// when Run() is called, the default help flag isn't added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on flag errors and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, calling back if flag parsing was successful.
func (s *SimpleCommand) Run(p sandbox.Proc, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(p.Args(), nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(p.Stderr(), "error: %s\n\n", err)
		s.PrintHelp(p.Stderr())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(p.Stdout())
		return 0
	}

	return callback()
}

// RunE is like Run for callbacks that return an error. Errors print as
// "NAME: MESSAGE" on stderr with exit status 1.
func (s *SimpleCommand) RunE(p sandbox.Proc, callback func() error) int {
	return s.Run(p, func() int {
		if err := callback(); err != nil {
			fmt.Fprintf(p.Stderr(), "%s: %v\n", p.Args()[0], err)
			return 1
		}
		return 0
	})
}

// BytesToHuman formats a byte count the way ls -h does: no decimal above
// 10 multiples, one decimal below.
func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// ColorPrinter colorizes output subject to a --color flag and whether the
// process has a PTY.
type ColorPrinter struct {
	value *string
	proc  sandbox.Proc
}

// Init sets up the flag and process used to determine color output.
func (c *ColorPrinter) Init(flags *getopt.Set, p sandbox.Proc) {
	c.proc = p
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case *c.value == colorNever:
		return false
	case *c.value == colorAlways:
		return true
	default:
		return c.proc.GetPTY().IsPTY
	}
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return col.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
