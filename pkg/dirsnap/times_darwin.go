//go:build darwin

package dirsnap

import (
	"os"
	"syscall"
	"time"
)

func statTimes(info os.FileInfo) (accessed, created time.Time) {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		accessed = time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
		created = time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	return
}
