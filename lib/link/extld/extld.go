// Package extld implements link.Linker on top of a system linker program.
// Inputs are checked in-process (format, target machine) before the
// program is run, so most mistakes are reported against the offending file.
package extld

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ii64/ldrv/lib/link"
	"github.com/ii64/ldrv/lib/obj"
	"github.com/ii64/ldrv/lib/proc"
	"github.com/ii64/ldrv/lib/proc/ld"
	"github.com/ii64/ldrv/lib/util"
)

type Engine struct {
	// Trace, when set, receives progress messages.
	Trace func(format string, args ...interface{})

	cfg    *link.Config
	target link.Target
	output string
	inputs []string
}

var _ link.Linker = (*Engine)(nil)

func New() *Engine {
	return &Engine{}
}

func (e *Engine) tracef(format string, args ...interface{}) {
	if e.Trace != nil {
		e.Trace(format, args...)
	}
}

func (e *Engine) Configure(cfg *link.Config) error {
	if cfg == nil {
		return link.NewError(link.ErrOutOfMemory, "no configuration")
	}
	t, ok := link.LookupTarget(cfg.Triple)
	if !ok {
		return link.NewError(link.ErrUnknownTarget, "%q (supported: %s)",
			cfg.Triple, strings.Join(link.SupportedArchs(), ", "))
	}
	if cfg.SysRoot != "" {
		fi, err := os.Stat(cfg.SysRoot)
		if err != nil {
			return link.NewError(link.ErrConfig, "sysroot: %v", err)
		}
		if !fi.IsDir() {
			return link.NewError(link.ErrConfig, "sysroot %s: not a directory", cfg.SysRoot)
		}
	}
	for _, sym := range cfg.WrapSymbols {
		if sym == "" {
			return link.NewError(link.ErrConfig, "empty --wrap symbol")
		}
	}
	if cfg.LD == "" {
		return link.NewError(link.ErrConfig, "no linker program")
	}
	e.cfg = cfg
	e.target = t
	e.tracef("target %s (ld -m %s)", cfg.Triple, t.Emulation)
	return nil
}

func (e *Engine) SetOutput(path string) error {
	if e.cfg == nil {
		return link.NewError(link.ErrNotConfigured, "")
	}
	if path == "" {
		return link.NewError(link.ErrOpenOutput, "empty path")
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return link.NewError(link.ErrOpenOutput, "%s: is a directory", path)
	}
	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil {
		return link.NewError(link.ErrOpenOutput, "%v", err)
	}
	if !fi.IsDir() {
		return link.NewError(link.ErrOpenOutput, "%s: not a directory", dir)
	}
	e.output = path
	return nil
}

func (e *Engine) AddObject(path string) error {
	if e.output == "" {
		return link.NewError(link.ErrOutputNotSet, "")
	}
	return e.addFile(path)
}

func (e *Engine) AddNameSpec(spec string) error {
	if e.output == "" {
		return link.NewError(link.ErrOutputNotSet, "")
	}
	path, ok := e.findLibrary(spec)
	if !ok {
		return link.NewError(link.ErrNotFound, "cannot find -l%s", spec)
	}
	e.tracef("-l%s: %s", spec, path)
	return e.addFile(path)
}

func (e *Engine) addFile(path string) error {
	info, err := obj.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return link.NewError(link.ErrNotFound, "%s", path)
	}
	if err != nil {
		return link.NewError(link.ErrOpenInput, "%v", err)
	}
	if err = e.checkCompat(path, info); err != nil {
		return err
	}
	// ld would read "-x.o" as an option
	if strings.HasPrefix(path, "-") {
		path = "." + string(filepath.Separator) + path
	}
	e.inputs = append(e.inputs, path)
	return nil
}

func (e *Engine) checkCompat(path string, info obj.Info) error {
	switch info.Type {
	case obj.FileTypeObject, obj.FileTypeShared:
		t := e.target
		if info.Machine != t.Machine || info.Class != t.Class || info.Data != t.Data {
			return link.NewError(link.ErrIncompatible, "%s is %s %s, target is %s",
				path, info.Class, info.Machine, t.Arch)
		}
	case obj.FileTypeArchive, obj.FileTypeThinArchive, obj.FileTypeScript:
	default:
		return link.NewError(link.ErrUnknownFormat, "%s: %s", path, info.Type)
	}
	return nil
}

// findLibrary searches the directories in order; within a directory the
// shared object is preferred. ":name" looks for name verbatim.
func (e *Engine) findLibrary(spec string) (string, bool) {
	if spec == "" {
		return "", false
	}
	var names []string
	if name, ok := util.RemovePrefix(spec, ":"); ok {
		names = []string{name}
	} else {
		names = []string{"lib" + spec + ".so", "lib" + spec + ".a"}
	}
	for _, dir := range e.cfg.SearchDirs {
		dir = e.sysrootDir(dir)
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
				return candidate, true
			}
		}
	}
	return "", false
}

// sysrootDir expands a leading "=" to the sysroot.
func (e *Engine) sysrootDir(dir string) string {
	rest, ok := util.RemovePrefix(dir, "=")
	if !ok {
		return dir
	}
	if e.cfg.SysRoot == "" {
		return rest
	}
	return filepath.Join(e.cfg.SysRoot, rest)
}

// Args returns the options passed to the linker program, inputs excluded.
func (e *Engine) Args() []string {
	cfg := e.cfg
	args := []string{"-m", e.target.Emulation}
	if cfg.SysRoot != "" {
		args = append(args, "--sysroot="+cfg.SysRoot)
	}
	if cfg.Shared {
		args = append(args, "-shared")
		if cfg.SOName != "" {
			args = append(args, "-soname", cfg.SOName)
		}
	}
	if cfg.Dyld != "" {
		args = append(args, "-dynamic-linker", cfg.Dyld)
	}
	for _, sym := range cfg.WrapSymbols {
		args = append(args, "--wrap="+sym)
	}
	for _, dir := range cfg.SearchDirs {
		args = append(args, "-L"+dir)
	}
	return append(args, "-o", e.output)
}

func (e *Engine) Link() error {
	if e.output == "" {
		return link.NewError(link.ErrOutputNotSet, "")
	}
	if len(e.inputs) == 0 {
		return link.NewError(link.ErrNoInput, "")
	}
	l, err := ld.New(e.cfg.LD, e.Args(), e.inputs)
	if err != nil {
		return link.NewError(link.ErrLinkFailed, "%v", err)
	}
	e.tracef("running %s", l)
	err = l.Run()
	var ee *proc.ExitError
	switch {
	case errors.As(err, &ee):
		if ee.Stderr != "" {
			return link.NewError(link.ErrLinkFailed, "%s", ee.Stderr)
		}
		return link.NewError(link.ErrLinkFailed, "%s exited with status %d", e.cfg.LD, ee.Code)
	case err != nil:
		return link.NewError(link.ErrLinkFailed, "%v", err)
	}
	return nil
}
