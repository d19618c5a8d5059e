package fileops

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fileglance/fileglance/pkg/logging"
)

// ErrTargetExists reports a rename whose destination name is already taken.
var ErrTargetExists = errors.New("target already exists")

// ErrInvalidName reports a new name that is empty or not a plain file name.
var ErrInvalidName = errors.New("invalid name")

// Rename gives the entry at oldPath the name newName within the same parent
// directory and returns the resulting path. The existence check and the
// rename are separate syscalls, so a racing create can still slip in between;
// the filesystem has the final word.
func Rename(oldPath, newName string) (string, error) {
	if newName == "" || newName == "." || newName == ".." || filepath.Base(newName) != newName {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, newName)
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if _, err := osStat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrTargetExists, newPath)
	}
	logging.Info("renaming", logging.String("from", oldPath), logging.String("to", newPath))
	if err := osRename(oldPath, newPath); err != nil {
		logging.Warn("rename failed", logging.String("from", oldPath), logging.Err(err))
		return "", err
	}
	return newPath, nil
}
