// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/dm32/asm"
	"github.com/ezrec/dm32/emulator"
	"github.com/ezrec/dm32/internal/tui"
)

func main() {
	var configFile string
	var input string
	var output string
	var memwords int
	var limit int
	var trace bool
	var step bool
	var verbose bool

	flag.StringVar(&configFile, "config", "", "TOML machine configuration")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.IntVar(&memwords, "m", 0, "Memory size in words")
	flag.IntVar(&limit, "limit", 0, "Assembler error budget")
	flag.BoolVar(&trace, "t", false, "Trace each executed instruction")
	flag.BoolVar(&step, "step", false, "Interactive single-step UI")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Usage: dm32 [options] program.asm|program.obj", os.Args[0])
	}
	program := flag.Arg(0)

	var config emulator.Config
	if len(configFile) != 0 {
		_, err := toml.DecodeFile(configFile, &config)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Explicit flags win over the config file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "m":
			config.MemWords = memwords
		case "limit":
			config.ErrorLimit = limit
		case "t":
			config.TraceCPU = trace
		case "v":
			config.Verbose = verbose
		}
	})

	emu := emulator.NewEmulator(config)

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	prf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	defer prf.Close()

	// Object images end in .obj; anything else assembles as source.
	if strings.HasSuffix(program, ".obj") {
		err = emu.LoadObject(prf)
	} else {
		err = emu.LoadSource(prf)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", program, err)
		if errors.Is(err, asm.ErrTooManyErrors) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	if step {
		err = tui.StartUI(emu)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = emu.Run(0, nil)
	if err != nil {
		log.Fatal(err)
	}
}
