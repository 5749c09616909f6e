package mips

import (
	"encoding/binary"
	"io"
	"iter"
)

// Instruction is one assembled source line.
type Instruction struct {
	LineNo int      // Source line number.
	Addr   uint32   // Byte offset within the text segment.
	Words  []string // Source tokens after equate and $() expansion.
	Code   uint32   // Encoded machine word.
}

// Program is an assembled instruction stream.
type Program struct {
	Instructions []Instruction
}

// Codes iterates over the (address, machine word) pairs of the program.
func (prog *Program) Codes() iter.Seq2[uint32, uint32] {
	return func(yield func(addr uint32, code uint32) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Addr, inst.Code) {
				return
			}
		}
	}
}

// Binary returns the machine words in address order.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// At returns the instruction covering a byte address, or nil.
func (prog *Program) At(addr uint32) (inst *Instruction) {
	for n := range prog.Instructions {
		a := prog.Instructions[n].Addr
		if addr >= a && addr < a+4 {
			inst = &prog.Instructions[n]
			break
		}
	}

	return
}

// WriteTo emits the program as raw little-endian 32-bit words.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, code := range prog.Codes() {
		err = binary.Write(w, binary.LittleEndian, code)
		if err != nil {
			return
		}
		n += 4
	}

	return
}
