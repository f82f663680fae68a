package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/syzasm/assembler"
	"github.com/Urethramancer/syzasm/config"
)

// Exit statuses.
const (
	exitOK    = 0
	exitUsage = 1
)

var kindExit = map[assembler.Kind]int{
	assembler.SyntaxError:        2,
	assembler.UnknownMnemonic:    3,
	assembler.UnknownLabel:       4,
	assembler.RegisterOutOfRange: 5,
	assembler.NegativeOperand:    6,
	assembler.InvalidOperand:     7,
	assembler.IOFailure:          8,
}

// exitCode maps an assembly error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var aerr *assembler.Error
	if errors.As(err, &aerr) {
		if code, ok := kindExit[aerr.Kind]; ok {
			return code
		}
	}
	return kindExit[assembler.IOFailure]
}

func main() {
	opt := arg.New("syzasm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Output file. Defaults to the source name with a .bin extension.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "c", "config", "Comma-separated list of config files resolving $conf keys.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Print labels as they are found.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "d", "dump", "Dump the label table and program to stderr.", false, false, arg.VarBool, nil)
	opt.SetPositional("SOURCE", "Syzygy assembly source (.syz).", "", false, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			os.Exit(exitUsage)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitUsage)
	}

	if opt.GetBool("help") {
		opt.PrintHelp()
		return
	}

	src := opt.GetPosString("SOURCE")
	if src == "" {
		opt.PrintHelp()
		os.Exit(exitUsage)
	}

	r := run{
		source:  src,
		output:  opt.GetString("output"),
		configs: splitList(opt.GetString("config")),
		verbose: opt.GetBool("verbose"),
		dump:    opt.GetBool("dump"),
	}
	if err := r.assemble(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", src, err)
		os.Exit(exitCode(err))
	}
}

type run struct {
	source  string
	output  string
	configs []string
	verbose bool
	dump    bool
}

// assemble loads config, assembles the source and writes the image.
func (r run) assemble() error {
	resolver, err := config.LoadAll(r.configs...)
	if err != nil {
		return &assembler.Error{Kind: assembler.IOFailure, Msg: "loading config", Err: err}
	}

	asm := assembler.New(nil, resolver)
	if r.verbose {
		asm.Trace = func(name string, addr int) {
			fmt.Fprintf(os.Stderr, "Added %q to labels at instruction %d.\n", name, addr)
		}
		asm.TraceConfig = func(key, value string, ok bool) {
			if !ok {
				fmt.Fprintf(os.Stderr, "Fetched %q, and got nothing.\n", key)
				return
			}
			fmt.Fprintf(os.Stderr, "Fetched %q, and got %q.\n", key, value)
		}
	}

	prog, err := asm.AssembleFile(r.source)
	if err != nil {
		return err
	}

	if r.dump {
		pp.Fprintln(os.Stderr, asm.Labels())
		pp.Fprintln(os.Stderr, listing(prog))
	}

	out := r.output
	if out == "" {
		out = assembler.OutputPath(r.source)
	}
	if samePath(out, r.source) {
		return &assembler.Error{Kind: assembler.IOFailure, Msg: fmt.Sprintf("output %s would overwrite the source", out)}
	}
	return prog.WriteFile(out)
}

// listing renders each word as "address: word" in hex.
func listing(prog assembler.Program) []string {
	lines := make([]string, len(prog))
	for i, w := range prog {
		lines[i] = fmt.Sprintf("%04X: %04X", i, w)
	}
	return lines
}

// samePath reports whether a and b name the same file.
func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
