// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mips

import (
	"strconv"
)

// MakeRCode packs an R-format ALU instruction. The opcode field is zero.
func MakeRCode(funct, rd, rs, rt uint32) uint32 {
	return (funct & 0x3f) | ((rd & 0x1f) << 11) | ((rt & 0x1f) << 16) | ((rs & 0x1f) << 21)
}

// MakeShiftCode packs an R-format shift instruction. The opcode and rs
// fields are zero.
func MakeShiftCode(funct, rd, rt, shamt uint32) uint32 {
	return (funct & 0x3f) | ((shamt & 0x1f) << 6) | ((rd & 0x1f) << 11) | ((rt & 0x1f) << 16)
}

// MakeICode packs an I-format instruction with a 16-bit immediate.
func MakeICode(opcode, rs, rt, imm uint32) uint32 {
	return (imm & 0xffff) | ((rt & 0x1f) << 16) | ((rs & 0x1f) << 21) | ((opcode & 0x3f) << 26)
}

// registerOf resolves a register operand.
func registerOf(word string) (index uint32, err error) {
	index, ok := LookupRegister(word)
	if !ok {
		err = ErrUnknownRegister(word)
	}
	return
}

// immediateOf parses a 16-bit immediate operand. Base prefixes 0x, 0o and
// 0b are honored. Negative values are reduced to their two's-complement
// representation; values outside -0x8000..0xffff are rejected.
func immediateOf(word string) (imm uint32, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < -0x8000 || v64 > 0xffff {
		err = ErrImmediateRange(word)
		return
	}

	imm = uint32(v64) & 0xffff
	return
}

// shiftOf parses a 5-bit shift amount operand. Out-of-range amounts are
// rejected, not masked.
func shiftOf(word string) (shamt uint32, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 || v64 > 31 {
		err = ErrShiftRange(word)
		return
	}

	shamt = uint32(v64)
	return
}

// operands validates the operand count of an instruction.
func operands(tokens []string, count int) (ops []string, err error) {
	ops = tokens[1:]
	if len(ops) < count {
		err = ErrOperandMissing
		return
	}
	if len(ops) > count {
		err = ErrOperandExtra
		return
	}
	return
}

// Translate encodes one tokenized assembly line into a 32-bit MIPS machine
// word. tokens[0] is the mnemonic and the remainder are operands in source
// order:
//
//	R-format:      mnemonic rd rs rt
//	shift format:  mnemonic rd rt shamt
//	lw/sw:         mnemonic rt immediate rs
//	other I-format: mnemonic rt rs immediate
//
// On failure no word is produced. Translate holds no state and may be
// called concurrently.
func Translate(tokens []string) (code uint32, err error) {
	if len(tokens) == 0 {
		err = ErrInstructionMissing
		return
	}

	desc, ok := LookupInstruction(tokens[0])
	if !ok {
		err = ErrUnknownMnemonic(tokens[0])
		return
	}

	// Every supported format takes exactly three operands.
	ops, err := operands(tokens, 3)
	if err != nil {
		return
	}

	switch desc.Format {
	case FORMAT_R:
		var rd, rs, rt uint32
		if rd, err = registerOf(ops[0]); err != nil {
			return
		}
		if rs, err = registerOf(ops[1]); err != nil {
			return
		}
		if rt, err = registerOf(ops[2]); err != nil {
			return
		}
		code = MakeRCode(desc.Code, rd, rs, rt)
	case FORMAT_SHIFT:
		var rd, rt, shamt uint32
		if rd, err = registerOf(ops[0]); err != nil {
			return
		}
		if rt, err = registerOf(ops[1]); err != nil {
			return
		}
		if shamt, err = shiftOf(ops[2]); err != nil {
			return
		}
		code = MakeShiftCode(desc.Code, rd, rt, shamt)
	case FORMAT_I:
		var rs, rt, imm uint32
		switch tokens[0] {
		case "lw", "sw":
			// Memory operands arrive as 'rt offset base'.
			if rt, err = registerOf(ops[0]); err != nil {
				return
			}
			if imm, err = immediateOf(ops[1]); err != nil {
				return
			}
			if rs, err = registerOf(ops[2]); err != nil {
				return
			}
		default:
			if rt, err = registerOf(ops[0]); err != nil {
				return
			}
			if rs, err = registerOf(ops[1]); err != nil {
				return
			}
			if imm, err = immediateOf(ops[2]); err != nil {
				return
			}
		}
		code = MakeICode(desc.Code, rs, rt, imm)
	default:
		err = ErrUnknownMnemonic(tokens[0])
	}

	return
}
