// Package mips implements an assembler for a small subset of the MIPS32
// instruction set.
//
// The Translate function encodes one tokenized assembly line into a single
// 32-bit machine word. Three encoding layouts are supported: R-format ALU
// operations, R-format shifts, and I-format operations carrying a 16-bit
// immediate. All lookup tables are immutable, so Translate is safe for
// concurrent use.
//
// The Assembler wraps Translate with a line-oriented source reader
// supporting comments, equates, and compile-time expression evaluation.
package mips
