package dirsnap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtOf(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"B", ""},
		{"A.txt", "txt"},
		{"Foo.TXT", "TXT"},
		{".bashrc", ""},
		{".tar.gz", "gz"},
		{"archive.tar.gz", "gz"},
		{"trailing.", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extOf(tt.name))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "File", KindFile.String())
	assert.Equal(t, "Folder", KindFolder.String())
	assert.Equal(t, "Other", KindOther.String())
}

func TestNewEntry(t *testing.T) {
	now := time.Now()

	infoOf := func(t *testing.T, d fakeDirEntry) os.FileInfo {
		t.Helper()
		info, err := d.Info()
		assert.NoError(t, err)
		return info
	}

	t.Run("regular_file", func(t *testing.T) {
		d := newFakeDirEntry("notes.txt", false, withSize(42), withModTime(now.Add(-time.Minute)))
		e := newEntry("/home/u", d.Name(), infoOf(t, d), now)
		assert.Equal(t, KindFile, e.Kind)
		assert.Equal(t, "notes.txt", e.Name)
		assert.Equal(t, filepath.Join("/home/u", "notes.txt"), e.Path)
		assert.Equal(t, "txt", e.Ext)
		assert.Equal(t, uint64(42), e.Size)
		assert.Equal(t, "rw", e.Perms)
		if assert.NotNil(t, e.Modified) {
			assert.Equal(t, time.Minute, *e.Modified)
		}
		assert.Nil(t, e.Accessed)
		assert.Nil(t, e.Created)
	})

	t.Run("readonly_file", func(t *testing.T) {
		d := newFakeDirEntry("locked.txt", false, withMode(0o444))
		e := newEntry("/d", d.Name(), infoOf(t, d), now)
		assert.Equal(t, "r", e.Perms)
	})

	t.Run("directory", func(t *testing.T) {
		d := newFakeDirEntry("projects", true)
		e := newEntry("/d", d.Name(), infoOf(t, d), now)
		assert.Equal(t, KindFolder, e.Kind)
		assert.Equal(t, "", e.Ext)
	})

	t.Run("symlink_is_other", func(t *testing.T) {
		d := newFakeDirEntry("link", false, withMode(os.ModeSymlink|0o777))
		e := newEntry("/d", d.Name(), infoOf(t, d), now)
		assert.Equal(t, KindOther, e.Kind)
	})

	t.Run("invalid_utf8_name_degrades", func(t *testing.T) {
		raw := "b\xffad"
		d := newFakeDirEntry(raw, false)
		e := newEntry("/d", d.Name(), infoOf(t, d), now)
		assert.Equal(t, "", e.Name)
		assert.Equal(t, filepath.Join("/d", raw), e.Path)
	})

	t.Run("future_mod_time", func(t *testing.T) {
		d := newFakeDirEntry("fresh", false, withModTime(now.Add(time.Hour)))
		e := newEntry("/d", d.Name(), infoOf(t, d), now)
		assert.Nil(t, e.Modified)
	})

	t.Run("zero_mod_time", func(t *testing.T) {
		d := newFakeDirEntry("unset", false, withModTime(time.Time{}))
		e := newEntry("/d", d.Name(), infoOf(t, d), now)
		assert.Nil(t, e.Modified)
	})
}
