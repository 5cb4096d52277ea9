package link

import (
	"debug/elf"
	"runtime"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Target describes the ELF flavour produced for a triple's architecture.
type Target struct {
	Arch    string
	Class   elf.Class
	Data    elf.Data
	Machine elf.Machine
	// Emulation is the name understood by "ld -m".
	Emulation string
}

var targets = map[string]Target{
	"x86_64":  {"x86_64", elf.ELFCLASS64, elf.ELFDATA2LSB, elf.EM_X86_64, "elf_x86_64"},
	"i386":    {"i386", elf.ELFCLASS32, elf.ELFDATA2LSB, elf.EM_386, "elf_i386"},
	"i686":    {"i686", elf.ELFCLASS32, elf.ELFDATA2LSB, elf.EM_386, "elf_i386"},
	"aarch64": {"aarch64", elf.ELFCLASS64, elf.ELFDATA2LSB, elf.EM_AARCH64, "aarch64linux"},
	"arm":     {"arm", elf.ELFCLASS32, elf.ELFDATA2LSB, elf.EM_ARM, "armelf_linux_eabi"},
	"riscv64": {"riscv64", elf.ELFCLASS64, elf.ELFDATA2LSB, elf.EM_RISCV, "elf64lriscv"},
	"ppc64le": {"ppc64le", elf.ELFCLASS64, elf.ELFDATA2LSB, elf.EM_PPC64, "elf64lppc"},
	"ppc64":   {"ppc64", elf.ELFCLASS64, elf.ELFDATA2MSB, elf.EM_PPC64, "elf64ppc"},
	"s390x":   {"s390x", elf.ELFCLASS64, elf.ELFDATA2MSB, elf.EM_S390, "elf64_s390"},
}

var goArchs = map[string]string{
	"amd64":   "x86_64",
	"386":     "i386",
	"arm64":   "aarch64",
	"arm":     "arm",
	"riscv64": "riscv64",
	"ppc64le": "ppc64le",
	"ppc64":   "ppc64",
	"s390x":   "s390x",
}

// LookupTarget finds the target for the architecture part of triple.
func LookupTarget(triple string) (t Target, ok bool) {
	arch, _, _ := strings.Cut(triple, "-")
	t, ok = targets[arch]
	return
}

// HostTriple is the default target: the architecture this binary runs on.
func HostTriple() string {
	arch, ok := goArchs[runtime.GOARCH]
	if !ok {
		arch = runtime.GOARCH
	}
	triple := arch + "-unknown-" + runtime.GOOS
	if runtime.GOOS == "linux" {
		if arch == "arm" {
			return triple + "-gnueabihf"
		}
		return triple + "-gnu"
	}
	return triple
}

// SupportedArchs lists the known architectures in sorted order.
func SupportedArchs() []string {
	archs := maps.Keys(targets)
	slices.Sort(archs)
	return archs
}
