package output

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ii64/ldrv/lib/diag"
)

const DefaultName = "a.out"

var ErrNoInput = errors.New("no input files")

// Error reports an input path whose absolute form could not be computed.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to determine the absolute path of %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var absPath = filepath.Abs

// Resolve picks the output file name. An explicit name always wins; with
// several inputs the default name is used and a warning is emitted; a single
// input puts the default name next to it.
func Resolve(explicit string, inputs []string, r *diag.Reporter) (out string, err error) {
	if explicit != "" {
		return explicit, nil
	}

	switch len(inputs) {
	case 0:
		err = ErrNoInput
		return
	case 1:
	default:
		if r != nil {
			r.Warnf("use %s for output file", DefaultName)
		}
		return DefaultName, nil
	}

	var abs string
	abs, err = absPath(inputs[0])
	if err != nil {
		err = &Error{Path: inputs[0], Err: err}
		return
	}
	out = filepath.Join(filepath.Dir(abs), DefaultName)
	return
}
