package cpu

import (
	"github.com/ezrec/dm32/isa"
)

// StepEvent reports an instruction the CPU has fetched and decoded and is
// about to predicate and execute.
type StepEvent struct {
	Addr  int32
	Word  uint32
	Instr isa.Instruction
}

// Subscribe registers a listener for step events. Listeners are called
// synchronously, in subscription order, before each fetched instruction
// executes; they observe state but must not mutate it.
func (cpu *Cpu) Subscribe(listener func(event StepEvent)) {
	cpu.listeners = append(cpu.listeners, listener)
}

func (cpu *Cpu) notify(event StepEvent) {
	for _, listener := range cpu.listeners {
		listener(event)
	}
}
