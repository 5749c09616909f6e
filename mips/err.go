package mips

import (
	"errors"

	"github.com/ezrec/mips32asm/translate"
)

var f = translate.From

var (
	// Encoder errors
	ErrInstructionMissing = errors.New(f("instruction missing"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("'%v' is not a known instruction", string(err))
}

type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrImmediateRange string

func (err ErrImmediateRange) Error() string {
	return f("'%v' does not fit in 16 bits", string(err))
}

type ErrShiftRange string

func (err ErrShiftRange) Error() string {
	return f("'%v' is not a shift amount in 0..31", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
