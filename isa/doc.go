// Package isa defines the DM32 instruction set architecture: the 32-bit
// instruction word layout, the opcode and condition-flag vocabularies, the
// register naming, and the codec between raw words and decoded instructions.
//
// An instruction word packs six fields, high bits to low: a reserved bit,
// a 5-bit opcode, a 4-bit condition mask, three 4-bit register selectors
// (target, src1, src2), and a 10-bit signed offset. The condition mask in
// an instruction and the CPU's condition code register share one format,
// so a bitwise AND of the two predicates the instruction.
package isa
