package cmd

import (
	"github.com/ii64/ldrv/conf"
	"github.com/ii64/ldrv/lib/link"
)

// BuildConfig assembles the linker configuration for output.
func BuildConfig(opts *conf.Options, output string) *link.Config {
	triple := opts.Triple
	if triple == "" {
		triple = link.HostTriple()
	}
	cfg := link.NewConfig(triple)

	// 1. soname, defaulting to the output file
	if opts.SOName != "" {
		cfg.SOName = opts.SOName
	} else {
		cfg.SOName = output
	}

	// 2. sysroot
	if opts.SysRoot != "" {
		cfg.SysRoot = opts.SysRoot
	}

	// 3. dynamic linker
	if opts.Dyld != "" {
		cfg.Dyld = opts.Dyld
	}

	// 4. wrapped symbols, in command-line order
	for _, sym := range opts.Wraps.Values() {
		cfg.AddWrap(sym)
	}

	// 5. search directories, in command-line order
	for _, dir := range opts.SearchDirs.Values() {
		cfg.AddSearchDir(dir)
	}

	cfg.Shared = opts.Shared
	cfg.LD = opts.LD
	return cfg
}
