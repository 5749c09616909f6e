package mips

// Format selects the operand layout and field packing of an instruction.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_UNKNOWN = Format(0) // unknown
	FORMAT_R       = Format(1) // r
	FORMAT_SHIFT   = Format(2) // shift
	FORMAT_I       = Format(3) // i
)

// Descriptor describes the encoding of a single mnemonic. Code holds the
// funct value for the R and shift formats (opcode field 0), and the opcode
// for the I-format.
type Descriptor struct {
	Format Format
	Code   uint32
}

// instructionMap maps mnemonics to encoding descriptors.
var instructionMap = map[string]Descriptor{
	// R-format ALU operations
	"add": {FORMAT_R, 0x20},
	"sub": {FORMAT_R, 0x22},
	"and": {FORMAT_R, 0x24},
	"or":  {FORMAT_R, 0x25},
	"nor": {FORMAT_R, 0x27},

	// R-format shifts
	"sll": {FORMAT_SHIFT, 0x00},
	"srl": {FORMAT_SHIFT, 0x02},
	"sra": {FORMAT_SHIFT, 0x03},

	// I-format operations
	"addi": {FORMAT_I, 0x08},
	"andi": {FORMAT_I, 0x0c},
	"ori":  {FORMAT_I, 0x0d},
	"lw":   {FORMAT_I, 0x23},
	"sw":   {FORMAT_I, 0x2b},
	"beq":  {FORMAT_I, 0x04},
	"bne":  {FORMAT_I, 0x05},
}

// LookupInstruction resolves a mnemonic to its encoding descriptor.
func LookupInstruction(mnemonic string) (desc Descriptor, ok bool) {
	desc, ok = instructionMap[mnemonic]
	return
}
