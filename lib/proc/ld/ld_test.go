package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("ld.bfd", []string{"-m", "elf_x86_64", "-o", "a.out"}, []string{"crt1.o", "/usr/lib/libc.so"})
	require.NoError(t, err)
	assert.Equal(t, "ld.bfd -m elf_x86_64 -o a.out crt1.o /usr/lib/libc.so", l.String())
	assert.Equal(t, []string{"ld.bfd", "-m", "elf_x86_64", "-o", "a.out", "crt1.o", "/usr/lib/libc.so"}, l.Process().Args)
}

func TestNewRejectsOptionLikeFiles(t *testing.T) {
	for _, files := range [][]string{{"a.o", "-o"}, {"--whole-archive"}, {""}} {
		l, err := New("ld", nil, files)
		assert.Nil(t, l)
		assert.Error(t, err)
	}
}
