//go:build linux

package dirsnap

import (
	"os"
	"syscall"
	"time"
)

// statTimes pulls the access time out of the raw stat data. Linux stat has no
// birth time, so created stays zero.
func statTimes(info os.FileInfo) (accessed, created time.Time) {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		accessed = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	}
	return
}
