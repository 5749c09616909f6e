package mips

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))

	assert.Equal("0", asm.Equate["lineno"])
}

func instEqual(t *testing.T, expected, instructions []Instruction) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(instructions))
	if len(expected) == len(instructions) {
		for n := range len(expected) {
			assert.Equal(expected[n], instructions[n])
		}
	}
}

func TestAssemblerParse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"# translator smoke test",
		"add t0 t1 t2",
		"ADDI T0 T1 -1",
		".equ frame 4",
		"lw t0 frame sp",
		"sll t0 t1 $(1 + 1)",
		"",
		"sw ra $(frame * 8) gp",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Instruction{
		{2, 0, []string{"add", "t0", "t1", "t2"}, 0x012a4020},
		{3, 4, []string{"addi", "t0", "t1", "-1"}, 0x2128ffff},
		{5, 8, []string{"lw", "t0", "4", "sp"}, 0x8fa80004},
		{6, 12, []string{"sll", "t0", "t1", "2"}, 0x00094080},
		{8, 16, []string{"sw", "ra", "32", "gp"}, 0xaf9f0020},
	}

	instEqual(t, expected, prog.Instructions)
}

func TestAssemblerLineno(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"addi t0 zero lineno",
		"# comment",
		"addi t0 zero $(lineno)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Instruction{
		{1, 0, []string{"addi", "t0", "zero", "1"}, 0x20080001},
		{3, 4, []string{"addi", "t0", "zero", "3"}, 0x20080003},
	}

	instEqual(t, expected, prog.Instructions)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("base", "0x10")

	prog, err := asm.Parse(strings.NewReader("addi t0 zero base\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Instruction{
		{1, 0, []string{"addi", "t0", "zero", "0x10"}, 0x20080010},
	}

	instEqual(t, expected, prog.Instructions)

	defines := maps.Collect(asm.Defines())
	assert.Equal("0", defines["lineno"])
	assert.Equal("0x10", defines["base"])
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".equ word 4",
		".equ doubleword $(word * 2)",
		"lw t0 doubleword sp",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(1, len(prog.Instructions))
	assert.Equal([]string{"lw", "t0", "8", "sp"}, prog.Instructions[0].Words)
	assert.Equal(uint32(0x8fa80008), prog.Instructions[0].Code)
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
	}){
		{"foo a b c", 1},
		{"add t0 t1", 1},
		{"add t0 t1 t2 t3", 1},
		{"add t0 t1 q9", 1},
		{"sll t0 t1 32", 1},
		{"sll t0 t1 -1", 1},
		{"addi t0 t1 banana", 1},
		{"addi t0 t1 65536", 1},
		{"addi t0 t1 -32769", 1},
		{"lw t0 t1 4", 1},
		{".equ", 1},
		{".equ a", 1},
		{".equ a 1 2", 1},
		{".equ a 1\n.equ a 2\n", 2},
		{"add t0 t1 t2\nbogus t0\n", 2},
		{"sw t0 $(\"x\") sp", 1},
		{"lw t0 $(1 // 0) sp", 1},
		{"lw t0 $(undefined) sp", 1},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}
