package assembler

import (
	"fmt"
	"os"

	"github.com/Urethramancer/syzasm/config"
	"github.com/Urethramancer/syzasm/isa"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	isa    *isa.Table
	config config.Resolver
	labels Labels

	// Trace, when set, is called for every label bound in pass 1.
	Trace func(name string, addr int)

	// TraceConfig, when set, is called for every config key lookup in pass 2.
	TraceConfig func(key, value string, ok bool)
}

// New creates a new Assembler. A nil table selects isa.Default and a nil
// resolver resolves no config keys.
func New(table *isa.Table, resolver config.Resolver) *Assembler {
	if table == nil {
		table = isa.Default()
	}
	if resolver == nil {
		resolver = config.None
	}
	return &Assembler{
		isa:    table,
		config: resolver,
		labels: make(Labels),
	}
}

// Labels returns the label table of the last run.
func (asm *Assembler) Labels() Labels {
	return asm.labels
}

// Assemble takes Syzygy assembly source and returns the program image.
// It stops at the first failing line.
func (asm *Assembler) Assemble(src string) (Program, error) {
	lines := Split(src)

	labels, count := ScanLabels(lines, asm.Trace)
	asm.labels = labels

	enc := &encoder{isa: asm.isa, config: asm.config, labels: labels, trace: asm.TraceConfig}
	prog := make(Program, 0, count)
	for _, l := range lines {
		if l.Kind != LineInstruction {
			continue
		}
		word, err := enc.encode(l)
		if err != nil {
			return nil, err
		}
		prog = append(prog, word)
	}
	return prog, nil
}

// AssembleFile reads the source at path once and assembles it.
func (asm *Assembler) AssembleFile(path string) (Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: IOFailure, Msg: fmt.Sprintf("reading %s", path), Err: err}
	}
	return asm.Assemble(string(data))
}
