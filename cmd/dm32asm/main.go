// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/dm32/asm"
	"github.com/ezrec/dm32/emulator"
)

func main() {
	var output string
	var memwords int
	var limit int
	var transform bool
	var listing bool
	var verbose bool

	defines := map[string]string{}

	flag.StringVar(&output, "o", "-", "Output file")
	flag.IntVar(&memwords, "m", 0, "Memory size in words, sets the machine predefines")
	flag.IntVar(&limit, "limit", 0, "Error budget")
	flag.BoolVar(&transform, "S", false, "Emit resolved source instead of object words")
	flag.BoolVar(&listing, "l", false, "Emit an address/word/source listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine name=value (repeatable)", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("want name=value, got %q", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	var source io.Reader = os.Stdin
	if flag.NArg() == 1 && flag.Arg(0) != "-" {
		inf, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
		defer inf.Close()
		source = inf
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	config := emulator.Config{
		MemWords:   memwords,
		ErrorLimit: limit,
		Verbose:    verbose,
	}
	as := emulator.NewEmulator(config).Assembler()
	for name, value := range defines {
		as.Predefine(name, value)
	}

	if transform {
		err := as.Transform(source, out)
		if err != nil {
			fail(err)
		}
		return
	}

	prog, err := as.Assemble(source)
	if err != nil {
		fail(err)
	}

	if listing {
		for _, line := range prog.Lines {
			fmt.Fprintf(out, "%4d  0x%08x  %s\n", line.Addr, line.Word, strings.TrimSpace(line.Text))
		}
		return
	}

	err = prog.WriteObject(out)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}

// fail reports assembly errors and exits: 2 when the error budget was
// blown, 1 for anything recoverable.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, asm.ErrTooManyErrors) {
		os.Exit(2)
	}
	os.Exit(1)
}
