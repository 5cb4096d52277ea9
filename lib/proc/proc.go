package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type Process struct {
	*exec.Cmd
	stderr tail
}

// New prepares program. Its stdout goes to ours, stderr is kept for the error report.
func New(program string, args []string) *Process {
	p := &Process{stderr: tail{max: maxStderr}}
	p.Cmd = exec.Command(program, args...)
	p.Stdout = os.Stdout
	p.Stderr = &p.stderr
	return p
}

// ExitError is returned when the program ran but did not exit with status 0.
type ExitError struct {
	Program string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit status %d", e.Program, e.Code)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Program, e.Code, e.Stderr)
}

// Run starts the process and waits for it.
func (p *Process) Run() (err error) {
	if err = p.Start(); err != nil {
		return
	}
	err = p.Wait()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		err = &ExitError{
			Program: p.Path,
			Code:    ee.ExitCode(),
			Stderr:  strings.TrimSpace(p.stderr.String()),
		}
	}
	return
}

// String renders the command line.
func (p *Process) String() string {
	return strings.Join(p.Args, " ")
}
