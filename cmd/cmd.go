package cmd

import (
	"fmt"

	"github.com/ii64/ldrv/conf"
	"github.com/ii64/ldrv/lib/diag"
	"github.com/ii64/ldrv/lib/input"
	"github.com/ii64/ldrv/lib/link"
	"github.com/ii64/ldrv/lib/output"
)

type Stage int

const (
	StageResolve Stage = iota
	StageConfigure
	StageOutput
	StageInput
	StageLink
)

var stageNames = [...]string{
	StageResolve:   "resolve",
	StageConfigure: "configure",
	StageOutput:    "output",
	StageInput:     "input",
	StageLink:      "link",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// StageError is the single failure of a run.
type StageError struct {
	Stage Stage
	// Subject is the output path, input path or "-l" namespec involved, if any.
	Subject string
	// Input is set for StageInput.
	Input input.Spec
	Err   error
}

func (e *StageError) Error() string {
	switch e.Stage {
	case StageResolve:
		return fmt.Sprintf("%s: cannot determine the output file: %v", e.Stage, e.Err)
	case StageConfigure:
		return fmt.Sprintf("%s: failed to configure the linker (detail: %v)", e.Stage, e.Err)
	case StageOutput:
		return fmt.Sprintf("%s: failed to open the output file (detail: %s: %v)", e.Stage, e.Subject, e.Err)
	case StageInput:
		what := "input file"
		if e.Input.Kind == input.NameSpec {
			what = "namespec"
		}
		return fmt.Sprintf("%s: failed to open the %s (detail: %s: %v)", e.Stage, what, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s: failed to link (detail: %v)", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Kind classifies the failure, preferring the engine's own code.
func (e *StageError) Kind() link.Kind {
	if e.Stage == StageResolve {
		return link.KindResolution
	}
	if code, ok := link.CodeOf(e.Err); ok && code != link.Success {
		return code.Kind()
	}
	switch e.Stage {
	case StageConfigure:
		return link.KindConfig
	case StageOutput, StageInput:
		return link.KindBind
	}
	return link.KindLink
}

// Main runs configure, set output, add inputs and link against eng,
// stopping at the first failure.
func Main(opts *conf.Options, eng link.Linker, r *diag.Reporter) (err error) {
	var out string
	out, err = output.Resolve(opts.Output, opts.Inputs.Values(), r)
	if err != nil {
		err = &StageError{Stage: StageResolve, Err: err}
		return
	}
	trace(r, "output file %s", out)

	cfg := BuildConfig(opts, out)
	if err = eng.Configure(cfg); err != nil {
		err = &StageError{Stage: StageConfigure, Err: err}
		return
	}
	trace(r, "configured")

	// the engine needs the output before any input
	if err = eng.SetOutput(out); err != nil {
		err = &StageError{Stage: StageOutput, Subject: out, Err: err}
		return
	}

	for _, in := range input.Merge(opts.Inputs, opts.NameSpecs) {
		switch in.Kind {
		case input.NameSpec:
			err = eng.AddNameSpec(in.Value)
		default:
			err = eng.AddObject(in.Value)
		}
		if err != nil {
			err = &StageError{Stage: StageInput, Subject: in.String(), Input: in, Err: err}
			return
		}
		trace(r, "input %s", in)
	}

	if err = eng.Link(); err != nil {
		err = &StageError{Stage: StageLink, Err: err}
		return
	}
	trace(r, "linked %s", out)
	return
}

func trace(r *diag.Reporter, format string, args ...interface{}) {
	if r != nil {
		r.Tracef(format, args...)
	}
}
