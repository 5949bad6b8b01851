package isa

// CondFlag is a set of condition bits. The condition mask in an instruction
// and the CPU's condition code register share this format, so the two can
// be ANDed to predicate an instruction.
type CondFlag int

const (
	COND_M = CondFlag(1) // Minus (negative result)
	COND_Z = CondFlag(2) // Zero
	COND_P = CondFlag(4) // Positive
	COND_V = CondFlag(8) // Overflow (arithmetic fault, e.g. divide by zero)

	COND_NEVER  = CondFlag(0)
	COND_ALWAYS = COND_M | COND_Z | COND_P | COND_V
)

var condBits = []struct {
	flag CondFlag
	name string
}{
	{COND_M, "M"},
	{COND_Z, "Z"},
	{COND_P, "P"},
	{COND_V, "V"},
}

// String returns the exact name when the combination has one, otherwise the
// concatenated names of the set bits, e.g. "ZP" for non-negative.
func (cond CondFlag) String() (out string) {
	switch cond {
	case COND_NEVER:
		return "NEVER"
	case COND_ALWAYS:
		return "ALWAYS"
	}

	for _, bit := range condBits {
		if cond&bit.flag != 0 {
			out += bit.name
		}
	}

	return
}

var condByLetter = map[rune]CondFlag{
	'M': COND_M,
	'N': COND_M, // 'negative' in predicate notation
	'Z': COND_Z,
	'P': COND_P,
	'V': COND_V,
}

// CondFlagOf maps a predicate name to its flag set. The name is either
// "ALWAYS", "NEVER", or a run of condition letters such as "Z" or "NP".
// The lookup is case-insensitive.
func CondFlagOf(name string) (cond CondFlag, err error) {
	folded := foldName(name)

	switch folded {
	case "ALWAYS":
		return COND_ALWAYS, nil
	case "NEVER":
		return COND_NEVER, nil
	case "":
		return COND_NEVER, ErrCondUnknown(name)
	}

	for _, letter := range folded {
		flag, ok := condByLetter[letter]
		if !ok {
			return COND_NEVER, ErrCondUnknown(name)
		}
		cond |= flag
	}

	return
}
