// Package cpu implements the DM32 processor: a 32-bit-word machine with
// sixteen registers, predicated execution, and a single flat memory.
//
// Register 0 always reads as zero and register 15 is the program counter.
// Every instruction carries a condition mask that is ANDed with the flags
// of the last executed instruction; a zero intersection skips it. There is
// no branch opcode. Jumps are ADDs whose target is the program counter.
//
// The CPU owns its registers and flags but not the memory, which is an
// attached collaborator shared with the memory-mapped I/O devices.
package cpu
