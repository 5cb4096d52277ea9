package obj

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeEmpty
	FileTypeObject
	FileTypeShared
	FileTypeExecutable
	FileTypeArchive
	FileTypeThinArchive
	FileTypeScript
)

func (t FileType) String() string {
	switch t {
	case FileTypeEmpty:
		return "empty file"
	case FileTypeObject:
		return "relocatable object"
	case FileTypeShared:
		return "shared object"
	case FileTypeExecutable:
		return "executable"
	case FileTypeArchive:
		return "archive"
	case FileTypeThinArchive:
		return "thin archive"
	case FileTypeScript:
		return "linker script"
	}
	return "unknown"
}

// IsELF reports whether Class, Data and Machine are meaningful.
func (t FileType) IsELF() bool {
	return t == FileTypeObject || t == FileTypeShared || t == FileTypeExecutable
}

type Info struct {
	Type    FileType
	Class   elf.Class
	Data    elf.Data
	Machine elf.Machine
}

// sniffSize is enough for the ELF identification and to tell a script from binary data.
const sniffSize = 512

func ReadFile(path string) (info Info, err error) {
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	head := make([]byte, sniffSize)
	var n int
	n, err = io.ReadFull(f, head)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}
	info = Identify(head[:n])
	return
}

// Identify classifies a file from its leading bytes.
func Identify(head []byte) (info Info) {
	switch {
	case len(head) == 0:
		info.Type = FileTypeEmpty
	case bytes.HasPrefix(head, []byte(elf.ELFMAG)):
		info = identifyELF(head)
	case bytes.HasPrefix(head, []byte("!<arch>\n")):
		info.Type = FileTypeArchive
	case bytes.HasPrefix(head, []byte("!<thin>\n")):
		info.Type = FileTypeThinArchive
	case isText(head):
		info.Type = FileTypeScript
	}
	return
}

func identifyELF(head []byte) (info Info) {
	// e_ident[16], e_type, e_machine
	if len(head) < 20 {
		return
	}
	info.Class = elf.Class(head[elf.EI_CLASS])
	info.Data = elf.Data(head[elf.EI_DATA])

	var bo binary.ByteOrder
	switch info.Data {
	case elf.ELFDATA2LSB:
		bo = binary.LittleEndian
	case elf.ELFDATA2MSB:
		bo = binary.BigEndian
	default:
		return
	}
	info.Machine = elf.Machine(bo.Uint16(head[18:]))
	switch elf.Type(bo.Uint16(head[16:])) {
	case elf.ET_REL:
		info.Type = FileTypeObject
	case elf.ET_DYN:
		info.Type = FileTypeShared
	case elf.ET_EXEC:
		info.Type = FileTypeExecutable
	}
	return
}

func isText(head []byte) bool {
	// a multi-byte rune may be cut at the end of the buffer
	for len(head) > 0 {
		r, size := utf8.DecodeRune(head)
		if r == utf8.RuneError && size <= 1 {
			return len(head) < utf8.UTFMax && !utf8.FullRune(head)
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' && r != '\f' {
			return false
		}
		head = head[size:]
	}
	return true
}
