package input

import (
	"github.com/ii64/ldrv/conf"
	"github.com/ii64/ldrv/lib/util"
)

type Kind int

const (
	ObjectPath Kind = iota
	NameSpec
)

func (k Kind) String() string {
	switch k {
	case ObjectPath:
		return "object"
	case NameSpec:
		return "namespec"
	}
	return "unknown"
}

// Spec is one link input in command-line order.
type Spec struct {
	Kind  Kind
	Value string
	Pos   int
}

func (s Spec) String() string {
	if s.Kind == NameSpec {
		return "-l" + s.Value
	}
	return s.Value
}

// Merge interleaves object paths and namespecs by their command-line
// position. Both lists are already ordered; positions are unique across
// the whole command line, so the two heads never tie.
func Merge(objects, namespecs conf.ListOption) (specs []Spec) {
	specs = make([]Spec, 0, len(objects)+len(namespecs))
	var fileIdx, libIdx int
	for {
		// 0 marks an exhausted list
		filePos := objects.Position(fileIdx)
		libPos := namespecs.Position(libIdx)

		switch {
		case filePos != 0 && (libPos == 0 || filePos < libPos):
			specs = append(specs, Spec{Kind: ObjectPath, Value: objects[fileIdx].Value, Pos: filePos})
			fileIdx++
		case libPos != 0 && (filePos == 0 || libPos < filePos):
			specs = append(specs, Spec{Kind: NameSpec, Value: namespecs[libIdx].Value, Pos: libPos})
			libIdx++
		default:
			return
		}
	}
}

// Positions projects specs back to their command-line positions.
func Positions(specs []Spec) []int {
	return util.Map(specs, func(s Spec) int { return s.Pos })
}
