package dirsnap

import (
	"os"
	"time"
)

// fakeDirEntry and fakeFileInfo stand in for real directory entries when
// driving Build through the osReadDir seam.

type fileInfoOption func(*fakeFileInfo)

func withSize(v int64) fileInfoOption {
	return func(info *fakeFileInfo) {
		info.size = v
	}
}

func withMode(m os.FileMode) fileInfoOption {
	return func(info *fakeFileInfo) {
		info.mode = m
	}
}

func withModTime(v time.Time) fileInfoOption {
	return func(info *fakeFileInfo) {
		info.modTime = v
	}
}

func newFakeDirEntry(name string, isDir bool, o ...fileInfoOption) fakeDirEntry {
	dirEntry := fakeDirEntry{
		name:  name,
		isDir: isDir,
	}
	dirEntry.info = newFakeFileInfo(dirEntry, o...)
	return dirEntry
}

var _ os.DirEntry = (*fakeDirEntry)(nil)

type fakeDirEntry struct {
	name    string
	isDir   bool
	info    *fakeFileInfo
	infoErr error
}

func (d fakeDirEntry) Name() string { return d.name }
func (d fakeDirEntry) IsDir() bool  { return d.isDir }
func (d fakeDirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}
func (d fakeDirEntry) Info() (os.FileInfo, error) {
	if d.infoErr != nil {
		return nil, d.infoErr
	}
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

func newFakeFileInfo(dirEntry fakeDirEntry, o ...fileInfoOption) (info *fakeFileInfo) {
	info = &fakeFileInfo{
		fakeDirEntry: dirEntry,
		modTime:      time.Now().Add(-time.Hour),
	}
	if dirEntry.isDir {
		info.mode = os.ModeDir | 0o755
	} else {
		info.mode = 0o644
	}
	for _, opt := range o {
		opt(info)
	}
	return
}

var _ os.FileInfo = (*fakeFileInfo)(nil)

type fakeFileInfo struct {
	fakeDirEntry
	size    int64
	mode    os.FileMode
	modTime time.Time
}

func (f *fakeFileInfo) Name() string       { return f.name }
func (f *fakeFileInfo) Size() int64        { return f.size }
func (f *fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f *fakeFileInfo) ModTime() time.Time { return f.modTime }
func (f *fakeFileInfo) IsDir() bool        { return f.isDir }
func (f *fakeFileInfo) Sys() any           { return nil }
