package link

import (
	"errors"
	"fmt"
)

// Kind groups failures by what went wrong.
type Kind int

const (
	KindNone Kind = iota
	KindResolution
	KindConfig
	KindBind
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindResolution:
		return "resolution error"
	case KindConfig:
		return "config error"
	case KindBind:
		return "bind error"
	case KindLink:
		return "link error"
	}
	return "no error"
}

// ErrorCode is the closed set of engine failures.
type ErrorCode int

const (
	Success ErrorCode = iota
	ErrOutOfMemory
	ErrConfig
	ErrUnknownTarget
	ErrNotConfigured
	ErrOpenOutput
	ErrOutputNotSet
	ErrOpenInput
	ErrNotFound
	ErrUnknownFormat
	ErrIncompatible
	ErrNoInput
	ErrLinkFailed
)

var errorStrings = [...]string{
	Success:          "success",
	ErrOutOfMemory:   "out of memory",
	ErrConfig:        "invalid configuration",
	ErrUnknownTarget: "unknown target",
	ErrNotConfigured: "linker is not configured",
	ErrOpenOutput:    "cannot open output file",
	ErrOutputNotSet:  "output must be set before inputs",
	ErrOpenInput:     "cannot open input file",
	ErrNotFound:      "no such file",
	ErrUnknownFormat: "file format not recognized",
	ErrIncompatible:  "incompatible input",
	ErrNoInput:       "no input files",
	ErrLinkFailed:    "link failed",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorStrings) {
		return fmt.Sprintf("error code %d", int(c))
	}
	return errorStrings[c]
}

func (c ErrorCode) Kind() Kind {
	switch c {
	case Success:
		return KindNone
	case ErrOutOfMemory, ErrConfig, ErrUnknownTarget, ErrNotConfigured:
		return KindConfig
	case ErrOpenOutput, ErrOutputNotSet, ErrOpenInput, ErrNotFound, ErrUnknownFormat, ErrIncompatible:
		return KindBind
	}
	return KindLink
}

// Error is returned by engines. Detail carries the engine's own message.
type Error struct {
	Code   ErrorCode
	Detail string
}

func NewError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Detail
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Detail == ""
}

// CodeOf extracts the engine code carried by err.
func CodeOf(err error) (code ErrorCode, ok bool) {
	if err == nil {
		return Success, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return
}
