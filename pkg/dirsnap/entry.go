package dirsnap

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

type Kind int

const (
	KindFile Kind = iota
	KindFolder
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "Folder"
	case KindOther:
		return "Other"
	default:
		return "File"
	}
}

// Entry describes a single directory member as it was when the snapshot was
// taken. Entries are plain values and never mutated after construction.
type Entry struct {
	Kind  Kind
	Name  string // base name; empty when not valid UTF-8
	Path  string // parent dir joined with the base name
	Ext   string // extension without the dot; empty when there is none
	Size  uint64
	Perms string // "r" when not writable, "rw" otherwise

	// Elapsed time since the respective timestamp. Nil when the platform
	// does not supply the timestamp or the clock puts it in the future.
	Modified *time.Duration
	Accessed *time.Duration
	Created  *time.Duration
}

func newEntry(dir, name string, info os.FileInfo, now time.Time) Entry {
	e := Entry{
		Path: filepath.Join(dir, name),
		Size: uint64(info.Size()),
	}
	if utf8.ValidString(name) {
		e.Name = name
	}
	if ext := extOf(name); utf8.ValidString(ext) {
		e.Ext = ext
	}
	mode := info.Mode()
	switch {
	case info.IsDir():
		e.Kind = KindFolder
	case mode.IsRegular():
		e.Kind = KindFile
	default:
		e.Kind = KindOther // symlinks and special files
	}
	if mode.Perm()&0o222 == 0 {
		e.Perms = "r"
	} else {
		e.Perms = "rw"
	}
	e.Modified = ageOf(info.ModTime(), now)
	accessed, created := statTimes(info)
	e.Accessed = ageOf(accessed, now)
	e.Created = ageOf(created, now)
	return e
}

// extOf returns the part of name after the last dot. A name without a dot has
// no extension, and neither does a dotfile like ".bashrc".
func extOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

func ageOf(t time.Time, now time.Time) *time.Duration {
	if t.IsZero() {
		return nil
	}
	age := now.Sub(t)
	if age < 0 {
		return nil
	}
	return &age
}
