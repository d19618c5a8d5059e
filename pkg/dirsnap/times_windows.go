//go:build windows

package dirsnap

import (
	"os"
	"syscall"
	"time"
)

func statTimes(info os.FileInfo) (accessed, created time.Time) {
	if attrs, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		accessed = time.Unix(0, attrs.LastAccessTime.Nanoseconds())
		created = time.Unix(0, attrs.CreationTime.Nanoseconds())
	}
	return
}
