package conf

import (
	"fmt"
	"io"
	"strings"

	"github.com/ii64/ldrv/lib/util"
)

// ArgError reports a command-line token that could not be parsed.
type ArgError struct {
	Pos int
	Arg string
	Msg string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %d %q: %s", e.Pos, e.Arg, e.Msg)
}

// Options taking a value glued to a single-letter flag. Long options whose
// name starts with one of these letters are only accepted with "--".
var prefixShort = map[byte]bool{
	'o': true,
	'l': true,
	'L': true,
	'C': true,
}

// Parse tokenizes args (without the program name). Each token gets a
// 1-based position; options whose value is a separate token take the
// position of the option itself.
func Parse(args []string) (opts *Options, err error) {
	opts = Default()
	err = opts.parse(args)
	if err != nil {
		opts = nil
	}
	return
}

func (o *Options) parse(args []string) (err error) {
	var (
		i   int
		pos int
		arg string
	)

	dashes := func(name string) []string {
		if len(name) == 1 {
			return []string{"-" + name}
		}
		if prefixShort[name[0]] {
			return []string{"--" + name}
		}
		return []string{"-" + name, "--" + name}
	}

	readArg := func(name string) bool {
		for _, opt := range dashes(name) {
			if args[i] == opt {
				if i+1 >= len(args) {
					err = &ArgError{Pos: i + 1, Arg: args[i], Msg: "argument missing"}
					i = len(args)
					return true
				}
				pos = i + 1
				arg = args[i+1]
				i += 2
				return true
			}

			prefix := opt
			if len(name) > 1 {
				prefix += "="
			}
			if v, ok := util.RemovePrefix(args[i], prefix); ok {
				pos = i + 1
				arg = v
				i++
				return true
			}
		}
		return false
	}

	readFlag := func(name string) bool {
		for _, opt := range dashes(name) {
			if args[i] == opt {
				i++
				return true
			}
		}
		return false
	}

	o.lastPos = len(args)
	for i < len(args) && err == nil {
		if args[i] == "--" {
			for i++; i < len(args); i++ {
				o.Inputs.add(args[i], i+1)
			}
			break
		}

		switch {
		case readFlag("help") || readFlag("h"):
			o.Help = true
			return
		case readFlag("version"):
			o.Version = true
			return
		case readFlag("verbose") || readFlag("v"):
			o.Verbose = true
		case readFlag("shared"):
			o.Shared = true
		case readArg("output") || readArg("o"):
			o.Output = arg
		case readArg("soname"):
			o.SOName = arg
		case readArg("sysroot"):
			o.SysRoot = arg
		case readArg("dynamic-linker"):
			o.Dyld = arg
		case readArg("mtriple") || readArg("C"):
			o.Triple = arg
		case readArg("ld"):
			o.LD = arg
		case readArg("profile"):
			o.Profile = arg
		case readArg("wrap"):
			o.Wraps.add(arg, pos)
		case readArg("library-path") || readArg("L"):
			o.SearchDirs.add(arg, pos)
		case readArg("library") || readArg("l"):
			o.NameSpecs.add(arg, pos)
		default:
			if len(args[i]) > 1 && args[i][0] == '-' {
				err = &ArgError{Pos: i + 1, Arg: args[i], Msg: "unknown command line option"}
				return
			}
			o.Inputs.add(args[i], i+1)
			i++
		}
	}
	return
}

// Usage writes the option summary to w.
func Usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s [options] file...\n\nOptions:\n", name)
	fmt.Fprint(w, strings.TrimLeft(usageText, "\n"))
}

const usageText = `
  -o <file>                  Output filename
  -L<dir>                    Add dir to the library search path
  -l<namespec>               Link the archive or shared object found for namespec
  -mtriple <triple>, -C      Target triple (default: host)
  -shared                    Create a shared library
  --soname <name>            Set internal name of shared library
  --sysroot <dir>            Use dir as the location of the sysroot
  --dynamic-linker <program> Set the name of the dynamic linker
  --wrap <symbol>            Use a wrap function for symbol
  --ld <program>             External linker program (default: $LD or ld)
  --profile <file>           YAML file with default settings (default: $LDRV_PROFILE)
  -v, --verbose              Print each stage and the linker command line
  -version                   Print version information
  -h, --help                 Print this help
`
