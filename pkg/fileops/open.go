package fileops

import (
	"github.com/fileglance/fileglance/pkg/logging"
)

// Open hands path to the OS default handler. Directory-like targets are the
// caller's business: check ResolvesToDir first to navigate instead.
func Open(path string) error {
	if err := browserOpen(path); err != nil {
		logging.Warn("open failed", logging.String("path", path), logging.Err(err))
		return err
	}
	return nil
}

// ResolvesToDir reports whether path is a directory once symlinks are
// followed, so a link to a directory can be entered like a directory.
func ResolvesToDir(path string) bool {
	info, err := osStat(path)
	return err == nil && info.IsDir()
}
