package assembler

import (
	"github.com/Urethramancer/syzasm/isa"
)

func (e *encoder) isALU(mnemonic string) bool {
	_, ok := e.isa.ALU[mnemonic]
	return ok
}

// assembleALU handles the zero-operand ALU operations.
func (e *encoder) assembleALU(mnemonic string) (uint16, *Error) {
	op, ok := e.isa.ALU[mnemonic]
	if !ok {
		return 0, errorf(UnknownMnemonic, "%q is not an ALU operation", mnemonic)
	}
	return e.isa.Opcode(isa.ClassALU) | op, nil
}
