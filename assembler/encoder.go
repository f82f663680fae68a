package assembler

import (
	"strings"

	"github.com/Urethramancer/syzasm/config"
	"github.com/Urethramancer/syzasm/isa"
)

// encoder is pass 2. It turns one instruction line into one word.
type encoder struct {
	isa    *isa.Table
	config config.Resolver
	labels Labels
	trace  func(key, value string, ok bool)
}

// encode assembles a single instruction line, tagging any failure with
// the line number.
func (e *encoder) encode(l SourceLine) (uint16, error) {
	word, err := e.dispatch(l.Text)
	if err != nil {
		err.Line = l.Number
		return 0, err
	}
	return word, nil
}

// dispatch picks the decoder for a trimmed instruction line.
func (e *encoder) dispatch(line string) (uint16, *Error) {
	sep := strings.IndexAny(line, " \t")
	if sep < 0 {
		switch {
		case strings.HasPrefix(line, "j"):
			return e.assembleJump(line)
		case e.isALU(line):
			return e.assembleALU(line)
		}
		return 0, errorf(UnknownMnemonic, "%q is not a valid instruction", line)
	}

	mnemonic := line[:sep]
	operands := strings.TrimLeft(line[sep:], " \t")
	if strings.HasPrefix(mnemonic, "io") {
		return e.assembleIO(mnemonic, operands)
	}

	switch strings.ToLower(mnemonic) {
	case "push":
		return e.assemblePush(operands)
	case "copy":
		return e.assembleCopy(operands)
	case "sys":
		return e.assembleSys(operands)
	}
	return 0, errorf(UnknownMnemonic, "%q is not a valid instruction", mnemonic)
}

// resolveConfig looks up key and decodes the literal it stands for.
func (e *encoder) resolveConfig(key string) (int, *Error) {
	s, ok := e.config.Lookup(key)
	if e.trace != nil {
		e.trace(key, s, ok)
	}
	if !ok {
		return 0, errorf(InvalidOperand, "%q is neither a number nor a known config key", key)
	}
	v, err := decodeShort(strings.TrimSpace(s))
	if err != nil {
		return 0, &Error{Kind: InvalidOperand, Msg: "config key " + key, Err: err}
	}
	return v, nil
}

// resolveIndex parses an I/O index token, falling back to the config
// resolver when it is not a literal.
func (e *encoder) resolveIndex(tok string) (int, *Error) {
	if v, err := parseIndex(tok); err == nil {
		return v, nil
	}
	return e.resolveConfig(tok)
}
