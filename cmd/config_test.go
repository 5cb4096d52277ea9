package cmd

import (
	"testing"

	"github.com/ii64/ldrv/lib/link"
	"github.com/stretchr/testify/assert"
)

func TestBuildConfig(t *testing.T) {
	opts := parse(t,
		"--soname", "libfoo.so.1",
		"--sysroot", "/sysroot",
		"--dynamic-linker", "/lib/ld.so",
		"--wrap", "malloc", "-L/b", "--wrap", "free", "-L/a", "--wrap", "malloc",
		"-mtriple", "riscv64-unknown-linux-gnu",
		"-shared",
		"x.o",
	)
	cfg := BuildConfig(opts, "libfoo.so")

	assert.Equal(t, &link.Config{
		Triple:      "riscv64-unknown-linux-gnu",
		SOName:      "libfoo.so.1",
		SysRoot:     "/sysroot",
		Dyld:        "/lib/ld.so",
		Shared:      true,
		WrapSymbols: []string{"malloc", "free", "malloc"},
		SearchDirs:  []string{"/b", "/a"},
		LD:          "ld",
	}, cfg)
}

func TestBuildConfigDefaults(t *testing.T) {
	cfg := BuildConfig(parse(t, "x.o"), "/tmp/x/a.out")

	assert.Equal(t, "/tmp/x/a.out", cfg.SOName)
	assert.Equal(t, link.HostTriple(), cfg.Triple)
	assert.Empty(t, cfg.SysRoot)
	assert.Empty(t, cfg.Dyld)
	assert.Empty(t, cfg.WrapSymbols)
	assert.Empty(t, cfg.SearchDirs)
	assert.False(t, cfg.Shared)
}
