// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/ezrec/mips32asm/mips"
)

const banner = `>> MIPS32 subset translator <<
One instruction per line, for example: add t0 t1 t2
`

func main() {
	var output string
	var raw bool
	var quiet bool
	var verbose bool

	flag.StringVar(&output, "o", "-", "Output file")
	flag.BoolVar(&raw, "b", false, "Emit raw little-endian words instead of a hex listing")
	flag.BoolVar(&quiet, "q", env.Bool("MIPS32ASM_QUIET"), "Suppress the banner and prompt")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
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

	asm := &mips.Assembler{Verbose: verbose}

	if verbose {
		for equ, value := range asm.Defines() {
			log.Printf("define %v = %v", equ, value)
		}
	}

	if flag.NArg() == 0 {
		interact(out, quiet)
		return
	}

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if raw {
		if _, err = prog.WriteTo(out); err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	for _, code := range prog.Codes() {
		fmt.Fprintf(out, "0x%08x\n", code)
	}
}

// interact translates standard input one line at a time. Errors are
// reported and translation continues with the next line.
func interact(out io.Writer, quiet bool) {
	prompt := env.Str("MIPS32ASM_PROMPT", ">> ")

	if !quiet {
		fmt.Print(banner)
		fmt.Print(prompt)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.ToLower(strings.Split(scanner.Text(), "#")[0])

		tokens := strings.Fields(line)
		if len(tokens) > 0 {
			code, err := mips.Translate(tokens)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			} else {
				fmt.Fprintf(out, "0x%08x\n", code)
			}
		}

		if !quiet {
			fmt.Print(prompt)
		}
	}
}
