package assembler

import (
	"github.com/Urethramancer/syzasm/isa"
)

// assembleJump handles the zero-operand jumps.
func (e *encoder) assembleJump(mnemonic string) (uint16, *Error) {
	cond, ok := e.isa.Jump[mnemonic]
	if !ok {
		return 0, errorf(UnknownMnemonic, "jump instruction %q is invalid", mnemonic)
	}
	return e.isa.Opcode(isa.ClassJump) | cond, nil
}
