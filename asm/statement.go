package asm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/dm32/isa"
)

// Kind classifies a source line into one of the four statement shapes.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_COMMENT  = Kind(0) // COMMENT
	KIND_FULL     = Kind(1) // FULL
	KIND_DATA     = Kind(2) // DATA
	KIND_SYMBOLIC = Kind(3) // SYMBOLIC
)

// Full is a fully specified instruction, ready to encode.
type Full struct {
	Op        isa.OpCode
	Predicate isa.CondFlag
	Target    int
	Src1      int
	Src2      int
	Offset    int32
}

// Data is a literal word pseudo-instruction.
type Data struct {
	Value uint32
}

// Symbolic is an instruction referencing a label instead of an
// explicit register and offset.
type Symbolic struct {
	Op        string // LOAD, STORE or JUMP
	Predicate isa.CondFlag
	Target    int
	HasTarget bool
	Symbol    string
}

// Statement is one classified source line. Kind selects which of the
// shape fields is meaningful; the others stay at their zero values.
type Statement struct {
	Kind    Kind
	LineNo  int
	Addr    int32  // Assigned by pass one. Comments hold the next address but emit nothing.
	Text    string // Source text after $() expansion.
	Label   string
	Comment string // Includes the leading # or ; marker.

	Full     Full
	Data     Data
	Symbolic Symbolic
}

// The four line shapes, tried in order. First regexp match wins; a
// field error inside a matched shape does not fall through to the
// next one. The predicate may be slashed onto the opcode or stand
// alone as the next word.
var (
	fullPat = regexp.MustCompile(`^\s*` +
		`(?:(?P<label>[a-zA-Z]\w*):)?\s*` +
		`(?P<opcode>[a-zA-Z]+)` +
		`(?:/(?P<predicate>[a-zA-Z]+)|\s+(?P<predword>[a-zA-Z]+))?` +
		`\s+` +
		`(?P<target>[a-zA-Z]\w*),` +
		`(?P<src1>[a-zA-Z]\w*),` +
		`(?P<src2>[a-zA-Z]\w*)` +
		`(?:\[(?P<offset>-?[0-9]+)\])?` +
		`(?:\s*(?P<comment>[#;].*))?` +
		`\s*$`)

	dataPat = regexp.MustCompile(`^\s*` +
		`(?:(?P<label>[a-zA-Z]\w*):)?\s*` +
		`(?i:DATA)` +
		`(?:\s+(?P<value>(?:0[xX][a-fA-F0-9]+)|(?:-?[0-9]+)))?` +
		`(?:\s*(?P<comment>[#;].*))?` +
		`\s*$`)

	commentPat = regexp.MustCompile(`^\s*` +
		`(?:(?P<label>[a-zA-Z]\w*):)?` +
		`\s*(?:(?P<comment>[#;].*))?` +
		`\s*$`)

	symbolicPat = regexp.MustCompile(`^\s*` +
		`(?:(?P<label>[a-zA-Z]\w*):)?\s*` +
		`(?P<opcode>(?i:STORE|LOAD|JUMP))` +
		`(?:/(?P<predicate>[a-zA-Z]+)|\s+(?P<predword>[a-zA-Z]+))?` +
		`\s+` +
		`(?:(?P<target>[a-zA-Z]\w*),)?` +
		`(?P<symbol>[a-zA-Z]\w*)` +
		`(?:\s*(?P<comment>[#;].*))?` +
		`\s*$`)
)

// matchGroups matches line against pat and returns the named groups.
// Unmatched optional groups come back as empty strings.
func matchGroups(pat *regexp.Regexp, line string) (groups map[string]string, ok bool) {
	m := pat.FindStringSubmatch(line)
	if m == nil {
		return
	}
	groups = make(map[string]string, len(m))
	for n, name := range pat.SubexpNames() {
		if name != "" {
			groups[name] = m[n]
		}
	}
	ok = true
	return
}

// predicateOf resolves the slashed or standalone predicate group,
// defaulting to ALWAYS when both are absent.
func predicateOf(groups map[string]string) (cond isa.CondFlag, err error) {
	name := groups["predicate"]
	if name == "" {
		name = groups["predword"]
	}
	if name == "" {
		cond = isa.COND_ALWAYS
		return
	}
	cond, err = isa.CondFlagOf(name)
	return
}

// valueOf returns the word value of a DATA literal.
func valueOf(word string) (value uint32, err error) {
	var v64 int64
	var perr error
	if len(word) > 2 && (word[:2] == "0x" || word[:2] == "0X") {
		v64, perr = strconv.ParseInt(word[2:], 16, 64)
	} else {
		v64, perr = strconv.ParseInt(word, 10, 64)
	}
	if perr != nil || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 {
		value = uint32(0xffffffff + (v64 + 1))
	} else {
		value = uint32(v64)
	}

	return
}

// offsetOf parses a bracketed offset literal.
func offsetOf(word string) (offset int32, err error) {
	v64, perr := strconv.ParseInt(word, 10, 32)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}
	if v64 < int64(isa.OffsetMin) || v64 > int64(isa.OffsetMax) {
		err = isa.ErrOffsetRange(v64)
		return
	}
	offset = int32(v64)
	return
}

func (stmt *Statement) fillComment(groups map[string]string) (err error) {
	stmt.Kind = KIND_COMMENT
	stmt.Label = groups["label"]
	stmt.Comment = groups["comment"]
	return
}

func (stmt *Statement) fillFull(groups map[string]string) (err error) {
	stmt.Kind = KIND_FULL
	stmt.Label = groups["label"]
	stmt.Comment = groups["comment"]

	full := &stmt.Full
	full.Op, err = isa.OpCodeOf(groups["opcode"])
	if err != nil {
		return
	}
	full.Predicate, err = predicateOf(groups)
	if err != nil {
		return
	}
	full.Target, err = isa.RegOf(groups["target"])
	if err != nil {
		return
	}
	full.Src1, err = isa.RegOf(groups["src1"])
	if err != nil {
		return
	}
	full.Src2, err = isa.RegOf(groups["src2"])
	if err != nil {
		return
	}
	if off := groups["offset"]; off != "" {
		full.Offset, err = offsetOf(off)
	}
	return
}

func (stmt *Statement) fillData(groups map[string]string) (err error) {
	stmt.Kind = KIND_DATA
	stmt.Label = groups["label"]
	stmt.Comment = groups["comment"]

	if value := groups["value"]; value != "" {
		stmt.Data.Value, err = valueOf(value)
	}
	return
}

func (stmt *Statement) fillSymbolic(groups map[string]string) (err error) {
	stmt.Kind = KIND_SYMBOLIC
	stmt.Label = groups["label"]
	stmt.Comment = groups["comment"]

	sym := &stmt.Symbolic
	sym.Op = strings.ToUpper(groups["opcode"])
	sym.Predicate, err = predicateOf(groups)
	if err != nil {
		return
	}
	if target := groups["target"]; target != "" {
		sym.Target, err = isa.RegOf(target)
		if err != nil {
			return
		}
		sym.HasTarget = true
	}
	sym.Symbol = groups["symbol"]

	if sym.Op == "JUMP" && sym.HasTarget {
		err = ErrTargetInvalid
	}
	return
}

// render reconstructs source text for a FULL statement.
func (stmt *Statement) render() string {
	full := stmt.Full
	label := ""
	if stmt.Label != "" {
		label = stmt.Label + ": "
	}
	pred := ""
	if full.Predicate != isa.COND_ALWAYS {
		pred = "/" + full.Predicate.String()
	}
	comment := ""
	if stmt.Comment != "" {
		comment = " " + stmt.Comment
	}
	return fmt.Sprintf("%s%s%s r%d,r%d,r%d[%d]%s",
		label, full.Op, pred, full.Target, full.Src1, full.Src2, full.Offset, comment)
}
