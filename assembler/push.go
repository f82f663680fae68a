package assembler

import (
	"strings"

	"github.com/Urethramancer/syzasm/isa"
)

const labelPrefix = "$lbl."

// assemblePush handles push <literal | $lbl.NAME | config-key>.
func (e *encoder) assemblePush(operand string) (uint16, *Error) {
	operand = strings.TrimSpace(operand)
	if strings.ContainsAny(operand, " \t") {
		return 0, errorf(SyntaxError, "push takes exactly one operand")
	}

	var val int
	if v, err := decodeShort(operand); err == nil {
		if v < 0 {
			return 0, errorf(NegativeOperand, "push cannot be negative (%d)", v)
		}
		val = v
	} else if strings.HasPrefix(operand, labelPrefix) {
		name := operand[len(labelPrefix):]
		addr, ok := e.labels.Lookup(name)
		if !ok {
			return 0, errorf(UnknownLabel, "label %q does not exist", name)
		}
		if addr > isa.PushValueMask {
			return 0, errorf(RegisterOutOfRange, "label %q address %d does not fit in 15 bits", name, addr)
		}
		val = addr
	} else {
		v, rerr := e.resolveConfig(operand)
		if rerr != nil {
			return 0, rerr
		}
		if v < 0 {
			return 0, errorf(NegativeOperand, "push cannot be negative (%s = %d)", operand, v)
		}
		val = v
	}

	return e.isa.Opcode(isa.ClassPush) | uint16(val), nil
}
