package model

import "io/fs"

// FileType is the canonical tag for the kind of filesystem entry a
// descriptor ultimately refers to.
type FileType string

const (
	TypeNone      FileType = "none"
	TypeNotFound  FileType = "not_found"
	TypeRegular   FileType = "regular"
	TypeDirectory FileType = "directory"
	TypeSymlink   FileType = "symlink"
	TypeBlock     FileType = "block"
	TypeCharacter FileType = "character"
	TypeFifo      FileType = "fifo"
	TypeSocket    FileType = "socket"
	TypeUnknown   FileType = "unknown"
)

// FileTypeFromMode maps a stat mode to its canonical tag. Total: every mode
// maps to exactly one tag, anything unrecognized becomes TypeUnknown.
func FileTypeFromMode(m fs.FileMode) FileType {
	switch m.Type() {
	case 0:
		return TypeRegular
	case fs.ModeDir:
		return TypeDirectory
	case fs.ModeSymlink:
		return TypeSymlink
	case fs.ModeDevice:
		return TypeBlock
	case fs.ModeDevice | fs.ModeCharDevice:
		return TypeCharacter
	case fs.ModeNamedPipe:
		return TypeFifo
	case fs.ModeSocket:
		return TypeSocket
	}
	return TypeUnknown
}
