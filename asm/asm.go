// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/dm32/isa"
)

// DefaultErrorLimit is the recoverable error budget when
// Assembler.Limit is left zero.
const DefaultErrorLimit = 5

// Assembler is the two-pass DM32 assembler. Recoverable errors are
// reported per line and assembly keeps going; once their count exceeds
// the budget the run abandons the input with ErrTooManyErrors.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Limit   int  // Recoverable error budget. DefaultErrorLimit if zero.

	Label map[string]int32 // Map of labels to addresses (pass one).

	predefine map[string]string
	errs      []error
	aborted   bool
}

// Predefine defines a new predefine or redefines an existing one.
// Predefines are visible to $( ... ) expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

func (asm *Assembler) limit() int {
	if asm.Limit <= 0 {
		return DefaultErrorLimit
	}
	return asm.Limit
}

// record notes a recoverable per-line error. It reports false once the
// budget is exhausted and the run must abandon the input.
func (asm *Assembler) record(lineno int, line string, cause error) (ok bool) {
	err := &ErrSyntax{LineNo: lineno, Line: line, Err: cause}
	if asm.Verbose {
		log.Printf("asm: %v", err)
	}
	asm.errs = append(asm.errs, err)
	if len(asm.errs) > asm.limit() {
		asm.errs = append(asm.errs, ErrTooManyErrors)
		asm.aborted = true
		return false
	}
	return true
}

// Errors returns every error recorded during the current run, joined.
func (asm *Assembler) Errors() error {
	return errors.Join(asm.errs...)
}

// ParseLine classifies a single source line. The line is $( ... )
// expanded first, then matched against the four shapes in order; the
// first match wins.
func (asm *Assembler) ParseLine(lineno int, text string) (stmt Statement, err error) {
	line, err := asm.expand(lineno, text)
	if err != nil {
		return
	}

	stmt = Statement{LineNo: lineno, Text: line}
	if groups, ok := matchGroups(fullPat, line); ok {
		err = stmt.fillFull(groups)
		return
	}
	if groups, ok := matchGroups(dataPat, line); ok {
		err = stmt.fillData(groups)
		return
	}
	if groups, ok := matchGroups(commentPat, line); ok {
		err = stmt.fillComment(groups)
		return
	}
	if groups, ok := matchGroups(symbolicPat, line); ok {
		err = stmt.fillSymbolic(groups)
		return
	}

	err = ErrShapeUnknown
	return
}

// parse classifies every source line. Erroring lines yield no
// Statement and are recorded against the budget. The returned error is
// an input failure, not a source one.
func (asm *Assembler) parse(input io.Reader) (stmts []Statement, err error) {
	asm.errs = nil
	asm.aborted = false
	if asm.Label == nil {
		asm.Label = make(map[string]int32, 16)
	}
	clear(asm.Label)

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		stmt, serr := asm.ParseLine(lineno, text)
		if serr != nil {
			if !asm.record(lineno, text, serr) {
				return
			}
			continue
		}
		stmts = append(stmts, stmt)
	}
	err = scanner.Err()

	if asm.Verbose {
		log.Printf("asm: parsed:\n%s", spew.Sdump(stmts))
	}
	return
}

// buildTable is pass one: assign each statement its address and record
// the labels. The first definition of a label is authoritative; a
// redefinition is a recoverable error.
func (asm *Assembler) buildTable(stmts []Statement) {
	addr := int32(0)
	for n := range stmts {
		stmt := &stmts[n]
		stmt.Addr = addr
		if stmt.Label != "" {
			if _, ok := asm.Label[stmt.Label]; ok {
				if !asm.record(stmt.LineNo, stmt.Text, ErrLabelDuplicate(stmt.Label)) {
					return
				}
			} else {
				asm.Label[stmt.Label] = addr
			}
		}
		if stmt.Kind != KIND_COMMENT {
			addr++
		}
	}

	if asm.Verbose {
		log.Printf("asm: labels: %v", asm.Label)
	}
}

// resolveSymbolic rewrites one SYMBOLIC statement into a FULL one. The
// displacement is relative to the referencing instruction's own
// address; the engine reads src2 before the pc increments, so
// src2 + displacement reproduces the label's absolute address.
func (asm *Assembler) resolveSymbolic(stmt Statement) (full Statement, err error) {
	sym := stmt.Symbolic
	if sym.Op != "JUMP" && !sym.HasTarget {
		err = ErrTargetMissing
		return
	}

	addr, ok := asm.Label[sym.Symbol]
	if !ok {
		err = ErrLabelMissing(sym.Symbol)
		return
	}
	disp := addr - stmt.Addr
	if disp < isa.OffsetMin || disp > isa.OffsetMax {
		err = isa.ErrOffsetRange(disp)
		return
	}

	full = stmt
	full.Kind = KIND_FULL
	full.Symbolic = Symbolic{}
	switch sym.Op {
	case "JUMP":
		full.Full = Full{
			Op:        isa.OP_ADD,
			Predicate: sym.Predicate,
			Target:    isa.REG_PC,
			Src1:      isa.REG_ZERO,
			Src2:      isa.REG_PC,
			Offset:    disp,
		}
	default: // LOAD, STORE
		op := isa.OP_LOAD
		if sym.Op == "STORE" {
			op = isa.OP_STORE
		}
		full.Full = Full{
			Op:        op,
			Predicate: sym.Predicate,
			Target:    sym.Target,
			Src1:      isa.REG_ZERO,
			Src2:      isa.REG_PC,
			Offset:    disp,
		}
	}
	full.Text = full.render()
	return
}

// resolve is pass two: rewrite SYMBOLIC statements in place of their
// source order. Erroring lines are recorded and dropped; their
// addresses were already fixed by pass one, so nothing shifts.
func (asm *Assembler) resolve(stmts []Statement) (resolved []Statement) {
	resolved = make([]Statement, 0, len(stmts))
	for _, stmt := range stmts {
		if stmt.Kind != KIND_SYMBOLIC {
			resolved = append(resolved, stmt)
			continue
		}

		full, err := asm.resolveSymbolic(stmt)
		if err != nil {
			if !asm.record(stmt.LineNo, stmt.Text, err) {
				return
			}
			continue
		}
		resolved = append(resolved, full)
	}
	return
}

// encode emits one word per non-comment statement.
func (asm *Assembler) encode(stmts []Statement) (prog *Program) {
	prog = &Program{}
	for _, stmt := range stmts {
		var word uint32
		switch stmt.Kind {
		case KIND_COMMENT:
			continue
		case KIND_DATA:
			word = stmt.Data.Value
		case KIND_FULL:
			instr := isa.Instruction{
				Op:     stmt.Full.Op,
				Cond:   stmt.Full.Predicate,
				Target: stmt.Full.Target,
				Src1:   stmt.Full.Src1,
				Src2:   stmt.Full.Src2,
				Offset: stmt.Full.Offset,
			}
			word = instr.Encode()
		default:
			log.Fatalf("asm: unresolved statement at line %d: %v", stmt.LineNo, stmt.Text)
		}

		prog.Lines = append(prog.Lines, Line{
			Statement: stmt,
			Word:      word,
		})
	}
	return
}

// Assemble runs both passes over the source and encodes the object
// program. Every recorded error comes back joined; an abandoned run
// carries ErrTooManyErrors in the chain. The Program is nil unless
// assembly was clean.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	stmts, err := asm.parse(input)
	if err == nil && !asm.aborted {
		asm.buildTable(stmts)
	}
	var resolved []Statement
	if err == nil && !asm.aborted {
		resolved = asm.resolve(stmts)
	}
	if err == nil && !asm.aborted && len(asm.errs) == 0 {
		prog = asm.encode(resolved)
	}

	err = errors.Join(err, asm.Errors())
	if err != nil {
		prog = nil
	}
	return
}

// Transform resolves the symbolic lines and writes the program text
// back out, line by line in source order. Erroring lines are reported
// but not written.
func (asm *Assembler) Transform(input io.Reader, output io.Writer) (err error) {
	stmts, err := asm.parse(input)
	if err == nil && !asm.aborted {
		asm.buildTable(stmts)
	}
	if err == nil && !asm.aborted {
		for _, stmt := range asm.resolve(stmts) {
			if _, werr := io.WriteString(output, stmt.Text+"\n"); werr != nil {
				err = werr
				break
			}
		}
	}

	err = errors.Join(err, asm.Errors())
	return
}
