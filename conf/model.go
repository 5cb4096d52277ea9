package conf

import (
	"github.com/ii64/ldrv/lib/util"
)

// Occurrence is one appearance of an option value on the command line.
// Pos is the 1-based index of the token that introduced it.
type Occurrence struct {
	Value string
	Pos   int
}

// ListOption holds every occurrence of a repeatable option in command-line order.
type ListOption []Occurrence

func (l ListOption) Values() []string {
	return util.Map(l, func(o Occurrence) string { return o.Value })
}

// Position returns the position of the i-th occurrence, or 0 once i runs past the end.
func (l ListOption) Position(i int) int {
	if i < 0 || i >= len(l) {
		return 0
	}
	return l[i].Pos
}

func (l *ListOption) add(value string, pos int) {
	*l = append(*l, Occurrence{Value: value, Pos: pos})
}

type Options struct {
	Output  string
	SOName  string
	SysRoot string
	Dyld    string
	Triple  string

	// LD is the external linker program.
	LD string
	// Profile is a YAML file holding defaults.
	Profile string

	Shared  bool
	Verbose bool
	Version bool
	Help    bool

	Inputs     ListOption
	NameSpecs  ListOption
	SearchDirs ListOption
	Wraps      ListOption

	// last position handed out, profile entries are numbered after it.
	lastPos int
}

func Default() *Options {
	return &Options{}
}

func (o *Options) nextPos() int {
	o.lastPos++
	return o.lastPos
}

// Validate fills in defaults from the profile and the environment.
func (o *Options) Validate() (err error) {
	if o.Profile == "" {
		o.Profile = getDefaultProfile()
	}
	if o.Profile != "" {
		var p *Profile
		p, err = LoadProfile(o.Profile)
		if err != nil {
			return
		}
		o.ApplyProfile(p)
	}
	if o.LD == "" {
		o.LD = getDefaultLD()
	}
	return
}

// ApplyProfile merges p into o. Values given on the command line win,
// list entries from the profile go after the command-line ones.
func (o *Options) ApplyProfile(p *Profile) {
	if p == nil {
		return
	}
	setIfEmpty(&o.Triple, p.Triple)
	setIfEmpty(&o.SysRoot, p.SysRoot)
	setIfEmpty(&o.Dyld, p.Dyld)
	setIfEmpty(&o.LD, p.LD)
	for _, dir := range p.SearchDirs {
		o.SearchDirs.add(dir, o.nextPos())
	}
	for _, sym := range p.Wrap {
		o.Wraps.add(sym, o.nextPos())
	}
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
