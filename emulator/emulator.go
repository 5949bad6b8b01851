// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/dm32/asm"
	"github.com/ezrec/dm32/cpu"
	"github.com/ezrec/dm32/device"
	"github.com/ezrec/dm32/internal"
	"github.com/ezrec/dm32/isa"
	"github.com/ezrec/dm32/mem"
)

// DefaultMemWords is the memory size used when Config.MemWords is zero.
const DefaultMemWords = 1024

// Config carries the settings for one emulator instance. The zero value
// selects the defaults.
type Config struct {
	MemWords   int  `toml:"mem_words"`   // Memory size in 32-bit words.
	ErrorLimit int  `toml:"error_limit"` // Assembler error budget.
	TraceCPU   bool `toml:"trace_cpu"`   // Log each executed instruction.
	Verbose    bool `toml:"verbose"`     // Log emulator and assembler activity.
}

// Emulator is a DM32 machine: a CPU, a word-addressed memory with the
// tape device mapped over its top two words, and the program listing
// used to attribute faults back to source lines.
type Emulator struct {
	*cpu.Cpu

	Config  Config
	Program *asm.Program // Listing of the loaded image.
	Tape    device.Tape

	ram *mem.Ram
	mio *mem.MappedIO
}

// NewEmulator wires up a machine per config. The tape's streams start
// unset; assign Tape.Input and Tape.Output before running anything that
// touches the mapped addresses.
func NewEmulator(config Config) (emu *Emulator) {
	size := config.MemWords
	if size <= 0 {
		size = DefaultMemWords
	}

	emu = &Emulator{
		Config:  config,
		Program: &asm.Program{},
		ram:     mem.NewRam(size),
	}

	emu.mio = mem.NewMappedIO(emu.ram)
	emu.mio.MapInput(emu.InputAddr(), emu.Tape.Read)
	emu.mio.MapOutput(emu.OutputAddr(), emu.Tape.Write)

	emu.Cpu = cpu.NewCpu(emu.mio)
	emu.Cpu.Verbose = config.TraceCPU

	return
}

// InputAddr returns the memory address mapped to the input tape.
func (emu *Emulator) InputAddr() int32 {
	return emu.ram.Size() - 2
}

// OutputAddr returns the memory address mapped to the output tape.
func (emu *Emulator) OutputAddr() int32 {
	return emu.ram.Size() - 1
}

// Defines returns the predefines the machine publishes to assembly
// programs, merged with those of its devices.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MEMWORDS":   fmt.Sprintf("%v", emu.ram.Size()),
		"INPUT":      fmt.Sprintf("%v", emu.InputAddr()),
		"OUTPUT":     fmt.Sprintf("%v", emu.OutputAddr()),
		"OFFSET_MIN": fmt.Sprintf("%v", isa.OffsetMin),
		"OFFSET_MAX": fmt.Sprintf("%v", isa.OffsetMax),
	}

	return internal.IterSeq2Concat(maps.All(defines), emu.Tape.Defines())
}

// Assembler returns an assembler primed with the machine's predefines
// and the configured error budget.
func (emu *Emulator) Assembler() (as *asm.Assembler) {
	as = &asm.Assembler{
		Verbose: emu.Config.Verbose,
		Limit:   emu.Config.ErrorLimit,
	}

	for name, value := range emu.Defines() {
		as.Predefine(name, value)
	}

	return
}

// Load installs an assembled program at address zero and keeps its
// listing for fault attribution. The image is written to plain memory,
// not through the mapped addresses.
func (emu *Emulator) Load(prog *asm.Program) (err error) {
	if emu.Config.Verbose {
		log.Printf("emulator: load %d words", len(prog.Lines))
	}

	err = mem.LoadWords(emu.ram, 0, prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Cpu.Reset()
	emu.Cpu.Verbose = emu.Config.TraceCPU

	return
}

// LoadSource assembles source text and installs the image.
func (emu *Emulator) LoadSource(input io.Reader) (err error) {
	prog, err := emu.Assembler().Assemble(input)
	if err != nil {
		return
	}

	err = emu.Load(prog)

	return
}

// LoadObject reads object text and installs the image.
func (emu *Emulator) LoadObject(input io.Reader) (err error) {
	prog, err := asm.ReadObject(input)
	if err != nil {
		return
	}

	err = emu.Load(prog)

	return
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int32 {
	return emu.Cpu.Bank[isa.REG_PC].Get()
}

// LineNo returns the source line behind the program counter, or 0 when
// the pc is outside the loaded listing.
func (emu *Emulator) LineNo() (lineno int) {
	line, ok := emu.Program.Debug(emu.Pc())
	if ok {
		lineno = line.LineNo
	}

	return
}

// Step executes a single instruction. done reports that the machine has
// halted; stepping a halted machine is a no-op, not an error. Faults
// come back as an ErrRuntime naming the source line.
func (emu *Emulator) Step() (done bool, err error) {
	lineno := emu.LineNo()

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run sets the program counter to start and executes until HALT. The
// gate, if not nil, is consulted between steps; returning false pauses
// the run with the machine state intact, so a later Run from Pc()
// resumes it. Runs through Step so faults carry the right source line.
func (emu *Emulator) Run(start int32, gate cpu.Gate) (err error) {
	emu.Cpu.Bank[isa.REG_PC].Put(start)
	emu.Cpu.Halted = false

	if emu.Config.Verbose {
		log.Printf("emulator: run from %d", start)
	}

	for {
		var done bool
		done, err = emu.Step()
		if err != nil || done {
			return
		}

		if gate != nil && !gate() {
			return
		}
	}
}
