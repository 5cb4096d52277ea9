package ld

import (
	"fmt"
	"strings"

	"github.com/ii64/ldrv/lib/proc"
)

type Ld struct {
	p *proc.Process
}

// New prepares program with options args followed by the input files.
// File names that ld would take for an option are refused.
func New(program string, args []string, files []string) (*Ld, error) {
	l := &Ld{}
	files, err := l.checkFilesContainsOpts(files)
	if err != nil {
		return nil, err
	}
	argv := make([]string, 0, len(args)+len(files))
	argv = append(argv, args...)
	argv = append(argv, files...)
	l.p = proc.New(program, argv)
	return l, nil
}

func (*Ld) checkFilesContainsOpts(args []string) ([]string, error) {
	var file string
	for _, file = range args {
		if file == "" || strings.HasPrefix(file, "-") {
			goto InvalidFilename
		}
	}
	return args, nil
InvalidFilename:
	return nil, fmt.Errorf("ld: disallowed input file name %q", file)
}

func (l *Ld) Process() *proc.Process {
	return l.p
}

func (l *Ld) Run() error {
	return l.p.Run()
}

func (l *Ld) String() string {
	return l.p.String()
}
