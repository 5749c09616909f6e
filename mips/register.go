package mips

import (
	"strings"
)

// registerNames is the canonical MIPS register set, in index order 0..31.
var registerNames = []string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// registerMap maps register names to 5-bit indexes.
var registerMap = func() map[string]uint32 {
	m := make(map[string]uint32, len(registerNames))
	for n, name := range registerNames {
		m[name] = uint32(n)
	}
	return m
}()

// LookupRegister resolves a register name to its 5-bit index. A leading '$'
// is accepted and ignored.
func LookupRegister(name string) (index uint32, ok bool) {
	name = strings.TrimPrefix(name, "$")
	index, ok = registerMap[name]
	return
}
