package isa

import (
	"fmt"
)

// Offset field range, signed two's complement in 10 bits.
const (
	OffsetMin = -512
	OffsetMax = 511
)

// Instruction is the decoded form of a DM32 memory word. In memory an
// instruction is just a word; before executing one the CPU decodes it into
// this form so that the fields can be interpreted directly. Equality is
// field-wise.
type Instruction struct {
	Op     OpCode
	Cond   CondFlag
	Target int
	Src1   int
	Src2   int
	Offset int32
}

// Decode interprets a memory word as an Instruction. A word whose opcode
// bits select no implemented operation fails with ErrDecode.
func Decode(word uint32) (instr Instruction, err error) {
	op := OpCode(FieldOpCode.Extract(word))
	if !op.Valid() {
		err = ErrDecode(word)
		return
	}

	instr = Instruction{
		Op:     op,
		Cond:   CondFlag(FieldCond.Extract(word)),
		Target: int(FieldTarget.Extract(word)),
		Src1:   int(FieldSrc1.Extract(word)),
		Src2:   int(FieldSrc2.Extract(word)),
		Offset: FieldOffset.ExtractSigned(word),
	}

	return
}

// Encode packs the instruction into a 32-bit memory word. The reserved bit
// is never set. Field values wider than their fields are truncated.
func (instr Instruction) Encode() (word uint32) {
	word = FieldOpCode.Insert(int32(instr.Op), word)
	word = FieldCond.Insert(int32(instr.Cond), word)
	word = FieldTarget.Insert(int32(instr.Target), word)
	word = FieldSrc1.Insert(int32(instr.Src1), word)
	word = FieldSrc2.Insert(int32(instr.Src2), word)
	word = FieldOffset.Insert(instr.Offset, word)
	return
}

// String renders the instruction like a line of assembly code. The
// predicate is omitted when it is ALWAYS, the unconditional default.
func (instr Instruction) String() string {
	cond := ""
	if instr.Cond != COND_ALWAYS {
		cond = "/" + instr.Cond.String()
	}

	return fmt.Sprintf("%s%-4s  r%d,r%d,r%d[%d]",
		instr.Op, cond,
		instr.Target, instr.Src1, instr.Src2, instr.Offset)
}

// MakeInstruction builds an Instruction from symbolic fields, resolving
// the opcode, predicate, and register names through the lookup tables and
// range-checking the offset.
func MakeInstruction(opcode, predicate, target, src1, src2 string, offset int32) (instr Instruction, err error) {
	instr.Op, err = OpCodeOf(opcode)
	if err != nil {
		return
	}

	instr.Cond, err = CondFlagOf(predicate)
	if err != nil {
		return
	}

	instr.Target, err = RegOf(target)
	if err != nil {
		return
	}

	instr.Src1, err = RegOf(src1)
	if err != nil {
		return
	}

	instr.Src2, err = RegOf(src2)
	if err != nil {
		return
	}

	if offset < OffsetMin || offset > OffsetMax {
		err = ErrOffsetRange(offset)
		return
	}
	instr.Offset = offset

	return
}
