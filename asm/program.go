package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strconv"

	"github.com/ezrec/dm32/isa"
)

// Program is an assembled DM32 object image.
type Program struct {
	Lines []Line // One entry per emitted word, in address order.
}

// Line is one emitted word and the statement it came from.
type Line struct {
	Statement
	Word uint32
}

// Debug returns the source line behind addr, for listings and tracing.
func (prog *Program) Debug(addr int32) (line Line, ok bool) {
	for _, l := range prog.Lines {
		if l.Addr == addr {
			line = l
			ok = true
			break
		}
	}
	return
}

// Words yields each (address, word) pair of the image.
func (prog *Program) Words() iter.Seq2[int32, uint32] {
	return func(yield func(addr int32, word uint32) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Addr, line.Word) {
				return
			}
		}
	}
}

// Binary returns the raw words, ready to load at address zero.
func (prog *Program) Binary() (words []uint32) {
	for _, word := range prog.Words() {
		words = append(words, word)
	}
	return
}

// WriteObject writes the image as object text, one hex word per line.
func (prog *Program) WriteObject(output io.Writer) (err error) {
	for _, word := range prog.Words() {
		_, err = fmt.Fprintf(output, "0x%08x\n", word)
		if err != nil {
			return
		}
	}
	return
}

// objectWord matches one line of object text: a single hex word,
// optionally followed by a comment.
var objectWord = regexp.MustCompile(`^\s*(?P<word>0[xX][0-9a-fA-F]{1,8})?\s*(?:[#;].*)?$`)

// ReadObject loads object text produced by WriteObject. Blank lines
// and #/; comments are tolerated. Words that decode as instructions
// come back as FULL statements so listings can show a disassembly;
// the rest come back as DATA.
func ReadObject(input io.Reader) (prog *Program, err error) {
	prog = &Program{}
	scanner := bufio.NewScanner(input)
	lineno := 0
	addr := int32(0)
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		m := objectWord.FindStringSubmatch(text)
		if m == nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrObjectWord}
			return
		}
		if m[1] == "" {
			continue
		}
		v64, perr := strconv.ParseUint(m[1][2:], 16, 32)
		if perr != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrParseNumber(m[1])}
			return
		}
		word := uint32(v64)

		stmt := Statement{
			LineNo: lineno,
			Addr:   addr,
		}
		if instr, derr := isa.Decode(word); derr == nil {
			stmt.Kind = KIND_FULL
			stmt.Full = Full{
				Op:        instr.Op,
				Predicate: instr.Cond,
				Target:    instr.Target,
				Src1:      instr.Src1,
				Src2:      instr.Src2,
				Offset:    instr.Offset,
			}
			stmt.Text = instr.String()
		} else {
			stmt.Kind = KIND_DATA
			stmt.Data = Data{Value: word}
			stmt.Text = fmt.Sprintf("DATA 0x%x", word)
		}

		prog.Lines = append(prog.Lines, Line{
			Statement: stmt,
			Word:      word,
		})
		addr++
	}
	err = scanner.Err()
	return
}
