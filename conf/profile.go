package conf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile carries per-toolchain defaults, e.g. for a cross sysroot.
type Profile struct {
	Triple     string   `yaml:"triple"`
	SysRoot    string   `yaml:"sysroot"`
	Dyld       string   `yaml:"dynamic-linker"`
	LD         string   `yaml:"ld"`
	SearchDirs []string `yaml:"search-dirs"`
	Wrap       []string `yaml:"wrap"`
}

func LoadProfile(path string) (p *Profile, err error) {
	var bb []byte
	bb, err = os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("conf: profile: %w", err)
		return
	}
	p, err = ParseProfile(bb)
	if err != nil {
		err = fmt.Errorf("conf: profile %s: %w", path, err)
	}
	return
}

// ParseProfile decodes a YAML profile. Unknown keys are rejected.
func ParseProfile(source []byte) (p *Profile, err error) {
	p = &Profile{}
	dec := yaml.NewDecoder(bytes.NewReader(source))
	dec.KnownFields(true)
	err = dec.Decode(p)
	if errors.Is(err, io.EOF) {
		// empty document
		err = nil
	}
	if err != nil {
		p = nil
	}
	return
}
