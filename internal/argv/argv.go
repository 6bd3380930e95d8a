// Package argv parses the classic single-dash argument grammar of the
// search tools: clustered one-letter flags (`-rn`), where some flags own
// the free values that follow them (`-p dir1 dir2`), plus a handful of
// `--long[=value]` options.
//
// The grammar is a small state machine over the argument list:
//
//	free        a value is a free argument
//	values(f)   a value belongs to flag f
//	terminated  after "--", everything is a free argument
//
// A flag cluster moves the machine to values(f) when its last flag takes
// values, and back to free otherwise.
package argv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFlag is returned for a flag the program does not declare.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrMissingValues is returned when a value-owning flag is given no values.
	ErrMissingValues = errors.New("flag requires at least one value")
	// ErrHelp is returned when --help is requested.
	ErrHelp = errors.New("help requested")
)

// Flag declares a one-letter flag.
type Flag struct {
	ID          rune
	Description string
	// ValueName is shown in usage; a non-empty ValueName makes the flag own
	// the free values that follow it.
	ValueName string
}

// TakesValues reports whether the flag owns the free values that follow it.
func (f Flag) TakesValues() bool {
	return f.ValueName != ""
}

// LongFlag declares a `--name` or `--name=value` option.
type LongFlag struct {
	Name        string
	Description string
	ValueName   string
}

// Program describes the grammar and usage text of one tool.
type Program struct {
	Name     string
	Flags    []Flag
	Long     []LongFlag
	Examples []string
}

// Parsed is the outcome of parsing an argument list.
type Parsed struct {
	Free   []string
	order  []rune
	values map[rune][]string
	long   map[string]string
}

// Has reports whether flag id was given at least once.
func (p Parsed) Has(id rune) bool {
	_, ok := p.values[id]
	return ok
}

// Values returns the values owned by flag id, across all its occurrences.
func (p Parsed) Values(id rune) []string {
	return p.values[id]
}

// Flags returns the given flags in first-seen order.
func (p Parsed) Flags() []rune {
	return p.order
}

// Long returns the value of a long option and whether it was given.
func (p Parsed) Long(name string) (string, bool) {
	value, ok := p.long[name]
	return value, ok
}

type state int

const (
	stateFree state = iota
	stateValues
	stateTerminated
)

type parser struct {
	program *Program
	state   state
	current Flag
	owned   int
	parsed  Parsed
}

// Parse runs the argument grammar over args (without the program name).
func (p *Program) Parse(args []string) (Parsed, error) {
	ps := &parser{
		program: p,
		parsed: Parsed{
			values: map[rune][]string{},
			long:   map[string]string{},
		},
	}

	for _, arg := range args {
		if err := ps.feed(arg); err != nil {
			return Parsed{}, err
		}
	}

	if err := ps.release(); err != nil {
		return Parsed{}, err
	}

	return ps.parsed, nil
}

func (ps *parser) feed(arg string) error {
	switch {
	case ps.state == stateTerminated:
		ps.parsed.Free = append(ps.parsed.Free, arg)
	case arg == "--":
		if err := ps.release(); err != nil {
			return err
		}

		ps.state = stateTerminated
	case strings.HasPrefix(arg, "--"):
		return ps.longFlag(arg[2:])
	case len(arg) > 1 && arg[0] == '-':
		return ps.cluster(arg[1:])
	case ps.state == stateValues:
		ps.parsed.values[ps.current.ID] = append(ps.parsed.values[ps.current.ID], arg)
		ps.owned++
	default:
		ps.parsed.Free = append(ps.parsed.Free, arg)
	}

	return nil
}

// release leaves the values state, failing when the owning flag got nothing.
func (ps *parser) release() error {
	if ps.state != stateValues {
		return nil
	}

	ps.state = stateFree
	if ps.owned == 0 {
		return fmt.Errorf("%w: -%c", ErrMissingValues, ps.current.ID)
	}

	return nil
}

func (ps *parser) cluster(ids string) error {
	for _, id := range ids {
		if err := ps.release(); err != nil {
			return err
		}

		flag, ok := ps.program.lookup(id)
		if !ok {
			return fmt.Errorf("%w: -%c", ErrUnknownFlag, id)
		}

		if _, seen := ps.parsed.values[id]; !seen {
			ps.parsed.order = append(ps.parsed.order, id)
			ps.parsed.values[id] = nil
		}

		if flag.TakesValues() {
			ps.state = stateValues
			ps.current = flag
			ps.owned = 0
		}
	}

	return nil
}

func (ps *parser) longFlag(spec string) error {
	if err := ps.release(); err != nil {
		return err
	}

	name, value, _ := strings.Cut(spec, "=")
	if name == "help" {
		return ErrHelp
	}

	if _, ok := ps.program.lookupLong(name); !ok {
		return fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
	}

	ps.parsed.long[name] = value

	return nil
}

func (p *Program) lookup(id rune) (Flag, bool) {
	for _, flag := range p.Flags {
		if flag.ID == id {
			return flag, true
		}
	}

	return Flag{}, false
}

func (p *Program) lookupLong(name string) (LongFlag, bool) {
	for _, flag := range p.Long {
		if flag.Name == name {
			return flag, true
		}
	}

	return LongFlag{}, false
}
