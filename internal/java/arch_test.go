package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		input    string
		expected Arch
	}{
		{"x86_64", ArchX86_64},
		{"amd64", ArchX86_64},
		{"AMD64", ArchX86_64},
		{"x64", ArchX86_64},
		{`"x86_64"`, ArchX86_64},
		{"aarch64", ArchAArch64},
		{"arm64", ArchAArch64},
		{"i686", ArchX86},
		{"386", ArchX86},
		{"armv7l", ArchARM},
		{"ppc64le", ArchPPC64LE},
		{"", ArchUnknown},
		{"  ", ArchUnknown},
		{"Sparcv9", Arch("sparcv9")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeArch(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, NormalizeArch(string(got)), "idempotent")
		})
	}
}

func TestArchRank(t *testing.T) {
	assert.Equal(t, 0, archRank(ArchAArch64, ArchAArch64))
	assert.Less(t, archRank(ArchAArch64, ArchAArch64), archRank(ArchX86_64, ArchAArch64))
	assert.Less(t, archRank(ArchX86_64, ArchAArch64), archRank(ArchX86, ArchAArch64))
	assert.Less(t, archRank(ArchRISCV64, ArchAArch64), archRank(Arch("sparcv9"), ArchAArch64))
}

func TestHostArch_IsCanonical(t *testing.T) {
	host := HostArch()
	assert.NotEqual(t, ArchUnknown, host)
	assert.Equal(t, host, NormalizeArch(string(host)))
}
