package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Exactly 32 names covering indexes 0..31 once each.
func TestRegisterTable(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(32, len(registerNames))
	assert.Equal(32, len(registerMap))

	seen := make([]bool, 32)
	for _, name := range registerNames {
		index, ok := LookupRegister(name)
		assert.True(ok, name)
		assert.Less(index, uint32(32), name)
		assert.False(seen[index], name)
		seen[index] = true
	}
}

func TestLookupRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		index uint32
	}){
		{"zero", 0},
		{"at", 1},
		{"v0", 2},
		{"a0", 4},
		{"t0", 8},
		{"s0", 16},
		{"t8", 24},
		{"k0", 26},
		{"k1", 27},
		{"gp", 28},
		{"sp", 29},
		{"fp", 30},
		{"ra", 31},
		{"$t0", 8},
		{"$ra", 31},
	}

	for _, entry := range table {
		index, ok := LookupRegister(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.index, index, entry.name)
	}

	_, ok := LookupRegister("x5")
	assert.False(ok)

	_, ok = LookupRegister("")
	assert.False(ok)

	_, ok = LookupRegister("$")
	assert.False(ok)
}
