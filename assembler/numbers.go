package assembler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decodeShort parses a signed 16-bit literal: an optional sign followed by
// decimal, 0x/0X/# hexadecimal, or 0-prefixed octal digits.
func decodeShort(s string) (int, error) {
	t := s
	neg := false
	switch {
	case strings.HasPrefix(t, "-"):
		neg = true
		t = t[1:]
	case strings.HasPrefix(t, "+"):
		t = t[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(t, "0x"), strings.HasPrefix(t, "0X"):
		base = 16
		t = t[2:]
	case strings.HasPrefix(t, "#"):
		base = 16
		t = t[1:]
	case len(t) > 1 && t[0] == '0':
		base = 8
		t = t[1:]
	}
	if t == "" || t[0] == '-' || t[0] == '+' {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	v, err := strconv.ParseInt(t, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if neg {
		v = -v
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("%q does not fit in 16 bits", s)
	}
	return int(v), nil
}

// parseIndex parses a peripheral or register index: 0x-prefixed hexadecimal
// or plain decimal. Leading zeros are decimal here.
func parseIndex(s string) (int, error) {
	base := 10
	t := s
	if strings.HasPrefix(t, "0x") {
		base = 16
		t = t[2:]
	}
	v, err := strconv.ParseInt(t, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return int(v), nil
}
