package fileops

import (
	"github.com/fileglance/fileglance/pkg/logging"
)

// Delete removes the entry at path. Directories go recursively; anything
// else, symlinks included, is removed as a single node without following.
func Delete(path string) error {
	info, err := osLstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		err = osRemoveAll(path)
	} else {
		err = osRemove(path)
	}
	if err != nil {
		logging.Warn("delete failed", logging.String("path", path), logging.Err(err))
	}
	return err
}
