package link

import (
	"debug/elf"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeKinds(t *testing.T) {
	tests := []struct {
		code ErrorCode
		kind Kind
	}{
		{Success, KindNone},
		{ErrOutOfMemory, KindConfig},
		{ErrConfig, KindConfig},
		{ErrUnknownTarget, KindConfig},
		{ErrNotConfigured, KindConfig},
		{ErrOpenOutput, KindBind},
		{ErrOutputNotSet, KindBind},
		{ErrOpenInput, KindBind},
		{ErrNotFound, KindBind},
		{ErrUnknownFormat, KindBind},
		{ErrIncompatible, KindBind},
		{ErrNoInput, KindLink},
		{ErrLinkFailed, KindLink},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.code.Kind())
		})
	}
	assert.Equal(t, "error code 99", ErrorCode(99).String())
}

func TestError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewError(ErrNotFound, "cannot find -l%s", "foo"))
	assert.Equal(t, "wrapped: no such file: cannot find -lfoo", err.Error())
	assert.True(t, errors.Is(err, &Error{Code: ErrNotFound}))
	assert.False(t, errors.Is(err, &Error{Code: ErrLinkFailed}))

	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrNotFound, code)

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)

	code, ok = CodeOf(nil)
	assert.True(t, ok)
	assert.Equal(t, Success, code)

	assert.Equal(t, "link failed", (&Error{Code: ErrLinkFailed}).Error())
}

func TestLookupTarget(t *testing.T) {
	tg, ok := LookupTarget("x86_64-unknown-linux-gnu")
	assert.True(t, ok)
	assert.Equal(t, elf.EM_X86_64, tg.Machine)
	assert.Equal(t, elf.ELFCLASS64, tg.Class)
	assert.Equal(t, "elf_x86_64", tg.Emulation)

	tg, ok = LookupTarget("aarch64")
	assert.True(t, ok)
	assert.Equal(t, elf.EM_AARCH64, tg.Machine)

	_, ok = LookupTarget("vax-dec-ultrix")
	assert.False(t, ok)
}

func TestSupportedArchs(t *testing.T) {
	archs := SupportedArchs()
	assert.Len(t, archs, len(targets))
	assert.Equal(t, "aarch64", archs[0])
	assert.Contains(t, archs, "x86_64")
}

func TestConfig(t *testing.T) {
	cfg := NewConfig(HostTriple())
	cfg.AddWrap("malloc")
	cfg.AddWrap("malloc")
	cfg.AddSearchDir("/b")
	cfg.AddSearchDir("/a")
	assert.Equal(t, []string{"malloc", "malloc"}, cfg.WrapSymbols)
	assert.Equal(t, []string{"/b", "/a"}, cfg.SearchDirs)
	assert.NotEmpty(t, cfg.Triple)
}
