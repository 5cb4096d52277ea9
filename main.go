package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ii64/ldrv/cmd"
	"github.com/ii64/ldrv/conf"
	"github.com/ii64/ldrv/lib/diag"
	"github.com/ii64/ldrv/lib/link"
	"github.com/ii64/ldrv/lib/link/extld"
)

const progName = "ldrv"

// version is set via -ldflags at build time.
var version = "dev"

func _main(args []string, stdout, stderr io.Writer) int {
	var err error
	var opts *conf.Options
	var badUsage bool
	var eng *extld.Engine

	r := diag.New(stderr, progName)
	opts, err = conf.Parse(args)
	if err != nil {
		badUsage = true
		goto Exit
	}
	if opts.Help {
		conf.Usage(stdout, progName)
		return 0
	}
	if opts.Version {
		printVersion(stdout)
		return 0
	}
	r.Verbose = opts.Verbose

	err = opts.Validate()
	if err != nil {
		goto Exit
	}

	eng = extld.New()
	eng.Trace = r.Tracef
	err = cmd.Main(opts, eng, r)
Exit:
	if err != nil {
		r.Errorf("%s", err)
		if badUsage {
			conf.Usage(stderr, progName)
		}
		return 1
	}
	return 0
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s (linker driver) %s:\n", progName, version)
	fmt.Fprintf(w, "  Default target: %s\n", link.HostTriple())
	fmt.Fprintf(w, "  Supported architectures: %s\n", strings.Join(link.SupportedArchs(), ", "))
}

func main() {
	os.Exit(_main(os.Args[1:], os.Stdout, os.Stderr))
}
