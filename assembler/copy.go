package assembler

import (
	"regexp"
	"strconv"

	"github.com/Urethramancer/syzasm/isa"
)

var reCopy = regexp.MustCompile(`^\s*(\d{1,2})\s*,\s*(\d{1,2})\s*$`)

// assembleCopy handles copy SRC,DST.
func (e *encoder) assembleCopy(operands string) (uint16, *Error) {
	m := reCopy.FindStringSubmatch(operands)
	if m == nil {
		return 0, errorf(SyntaxError, "copy expects two registers, e.g. copy 3,9 (got %q)", operands)
	}

	// At most two digits each, so Atoi cannot fail.
	src, _ := strconv.Atoi(m[1])
	dst, _ := strconv.Atoi(m[2])
	if src > isa.MaxRegister {
		return 0, errorf(RegisterOutOfRange, "source register %d must be between 0 and %d", src, isa.MaxRegister)
	}
	if dst > isa.MaxRegister {
		return 0, errorf(RegisterOutOfRange, "destination register %d must be between 0 and %d", dst, isa.MaxRegister)
	}

	word := e.isa.Opcode(isa.ClassCopy)
	word |= uint16(src) << isa.CopySrcShift
	word |= uint16(dst) << isa.CopyDstShift
	return word, nil
}
