package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelete(t *testing.T) {
	t.Run("removes_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.txt")
		assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		assert.NoError(t, Delete(path))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("removes_directory_recursively", func(t *testing.T) {
		tmpDir := t.TempDir()
		root := filepath.Join(tmpDir, "root")
		assert.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deeper"), 0o755))
		assert.NoError(t, os.WriteFile(filepath.Join(root, "sub", "f.txt"), []byte("x"), 0o644))

		assert.NoError(t, Delete(root))
		_, err := os.Stat(root)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("removes_symlink_not_its_target", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlink creation needs elevation on windows")
		}
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "target")
		link := filepath.Join(tmpDir, "link")
		assert.NoError(t, os.Mkdir(target, 0o755))
		assert.NoError(t, os.Symlink(target, link))

		assert.NoError(t, Delete(link))
		_, err := os.Lstat(link)
		assert.True(t, os.IsNotExist(err))
		info, err := os.Stat(target)
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("missing_path_errors", func(t *testing.T) {
		err := Delete(filepath.Join(t.TempDir(), "nothing-here"))
		assert.Error(t, err)
	})

	t.Run("propagates_remove_error", func(t *testing.T) {
		origRemove := osRemove
		defer func() { osRemove = origRemove }()
		osRemove = func(name string) error {
			return errors.New("busy")
		}

		path := filepath.Join(t.TempDir(), "a.txt")
		assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		assert.Error(t, Delete(path))
	})
}
