package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/dm32/isa"
	"github.com/ezrec/dm32/mem"
)

// Cpu is the simulation context for one DM32 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory mem.Memory // The store fetch/load/store go through.

	Bank   *Bank        // Register bank; Bank[15] is the program counter.
	Flags  isa.CondFlag // Condition codes of the last executed instruction.
	Halted bool         // Set by HALT.

	Steps int // Executed instruction counter.

	listeners []func(event StepEvent)
}

// NewCpu creates a CPU attached to a memory. The condition register starts
// as ALWAYS so that the first instruction's predicate can fire.
func NewCpu(memory mem.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: memory,
		Bank:   NewBank(),
		Flags:  isa.COND_ALWAYS,
	}

	return
}

// Reset returns the CPU to its power-on state. Memory is not touched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Bank.Reset()
	cpu.Flags = isa.COND_ALWAYS
	cpu.Halted = false
	cpu.Steps = 0
}

// String returns the current CPU state, four registers per row.
func (cpu *Cpu) String() (text string) {
	for n, reg := range cpu.Bank {
		text += fmt.Sprintf("%4s: %11d", fmt.Sprintf("r%d", n), reg.Get())
		if n%4 == 3 {
			text += "\n"
		}
	}

	text += fmt.Sprintf("flags: %v  halted: %v\n", cpu.Flags, cpu.Halted)

	return
}

// Step executes one fetch/decode/execute cycle:
//   - fetch the word at the program counter and decode it
//   - notify listeners
//   - evaluate the predicate; a false predicate only advances the pc
//   - read the source registers, form operand2 = src2 + offset, then
//     advance the pc, so a jump's own result overwrites the increment
//   - run the ALU, latch its flags, and dispatch on the opcode
//
// A word that does not decode, or a memory fault, stops the cycle with an
// ErrFault wrapping the cause; the CPU does not recover these.
func (cpu *Cpu) Step() (err error) {
	if cpu.Halted {
		return ErrHalted
	}

	pc := cpu.Bank[isa.REG_PC]
	addr := pc.Get()

	defer func() {
		if err != nil {
			err = &ErrFault{Addr: addr, Err: err}
		}
	}()

	word, err := cpu.Memory.Get(addr)
	if err != nil {
		return
	}

	instr, err := isa.Decode(word)
	if err != nil {
		return
	}

	cpu.notify(StepEvent{Addr: addr, Word: word, Instr: instr})

	if cpu.Verbose {
		log.Printf("cpu: %4d: %v", addr, instr)
	}

	if cpu.Flags&instr.Cond == isa.COND_NEVER {
		// Predicate is false; the instruction is skipped whole.
		pc.Put(addr + 1)
		return
	}

	left := cpu.Bank[instr.Src1].Get()
	right := cpu.Bank[instr.Src2].Get() + instr.Offset

	pc.Put(addr + 1)

	result, flags := Alu(instr.Op, left, right)
	cpu.Flags = flags

	target := cpu.Bank[instr.Target]

	switch instr.Op {
	case isa.OP_HALT:
		cpu.Halted = true
	case isa.OP_LOAD:
		var value uint32
		value, err = cpu.Memory.Get(result)
		if err != nil {
			return
		}
		target.Put(int32(value))
	case isa.OP_STORE:
		err = cpu.Memory.Put(result, uint32(target.Get()))
		if err != nil {
			return
		}
	default:
		target.Put(result)
	}

	cpu.Steps++

	return
}

// Gate is consulted between the steps of a Run. Blocking inside the gate
// pauses the run; returning false abandons it.
type Gate func() (resume bool)

// Run sets the program counter to start and steps until the CPU halts.
// A nil gate runs to completion; otherwise the gate is called after every
// step, which is how single-step debugging hooks in.
func (cpu *Cpu) Run(start int32, gate Gate) (err error) {
	cpu.Bank[isa.REG_PC].Put(start)
	cpu.Halted = false

	if cpu.Verbose {
		log.Printf("cpu: run from %d", start)
	}

	for !cpu.Halted {
		err = cpu.Step()
		if err != nil {
			return
		}

		if gate != nil && !gate() {
			return
		}
	}

	return
}
