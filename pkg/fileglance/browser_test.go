package fileglance

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

type fakeApp struct {
	mu      sync.Mutex
	queued  []func()
	focused tview.Primitive
	stopped bool
}

func (a *fakeApp) QueueUpdateDraw(f func()) {
	a.mu.Lock()
	a.queued = append(a.queued, f)
	a.mu.Unlock()
}

func (a *fakeApp) SetFocus(p tview.Primitive) {
	a.focused = p
}

func (a *fakeApp) Stop() {
	a.stopped = true
}

// runQueued waits for the next UI update and runs it on the test goroutine.
func (a *fakeApp) runQueued(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		a.mu.Lock()
		if len(a.queued) > 0 {
			f := a.queued[0]
			a.queued = a.queued[1:]
			a.mu.Unlock()
			f()
			return
		}
		a.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no UI update queued")
}

func newTestBrowser(t *testing.T, startDir string) (*Browser, *fakeApp, *[]string) {
	t.Helper()

	oldSaveCurrentPath := saveCurrentPath
	oldStartWatcher := startWatcher
	oldOsExit := osExit
	t.Cleanup(func() {
		saveCurrentPath = oldSaveCurrentPath
		startWatcher = oldStartWatcher
		osExit = oldOsExit
	})

	var saved []string
	saveCurrentPath = func(dir string) {
		saved = append(saved, dir)
	}
	startWatcher = func(func()) *dirWatcher {
		return nil
	}
	osExit = func(int) {}

	app := &fakeApp{}
	return newBrowser(app, startDir, nil), app, &saved
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return root
}

func TestBrowser_StartsInStartDir(t *testing.T) {
	root := makeTree(t)
	b, _, saved := newTestBrowser(t, root)

	assert.Equal(t, root, b.nav.Current())
	assert.Equal(t, []string{root}, *saved)
	assert.Equal(t, 2, len(b.rows.snapshot.Entries))
	assert.Equal(t, root, b.pathbar.GetText())

	row, _ := b.files.GetSelection()
	assert.Equal(t, b.rows.FirstEntryRow(), row)
}

func TestBrowser_Keys(t *testing.T) {
	root := makeTree(t)
	sub := filepath.Join(root, "sub")
	b, _, saved := newTestBrowser(t, root)

	b.openRow(b.rows.FirstEntryRow())
	assert.Equal(t, sub, b.nav.Current(), "opening the folder row navigates into it")

	assert.Nil(t, b.handleKey(keyEvent(tcell.KeyBackspace2, 0)))
	assert.Equal(t, root, b.nav.Current())

	assert.Nil(t, b.handleKey(keyEvent(tcell.KeyRune, 'f')))
	assert.Equal(t, sub, b.nav.Current())

	assert.Nil(t, b.handleKey(keyEvent(tcell.KeyRune, 'u')))
	assert.Equal(t, root, b.nav.Current())

	assert.Nil(t, b.handleKey(keyEvent(tcell.KeyRune, 'r')))
	assert.Equal(t, root, b.nav.Current(), "refresh stays put")

	assert.Equal(t, []string{root, sub, root, sub, root}, *saved,
		"every move is persisted, refresh is not")

	event := keyEvent(tcell.KeyRune, 'x')
	assert.Equal(t, event, b.handleKey(event), "unknown keys pass through")
}

func TestBrowser_ParentRowGoesUp(t *testing.T) {
	root := makeTree(t)
	sub := filepath.Join(root, "sub")
	b, _, _ := newTestBrowser(t, sub)

	b.openRow(1)
	assert.Equal(t, root, b.nav.Current())
}

func TestBrowser_OpenSymlinkToDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated rights on windows")
	}
	root := makeTree(t)
	link := filepath.Join(root, "ln")
	if err := os.Symlink(filepath.Join(root, "sub"), link); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	b, _, _ := newTestBrowser(t, root)

	// Entries: sub, then a.txt and ln in the file tier.
	b.openRow(b.rows.FirstEntryRow() + 2)
	assert.Equal(t, link, b.nav.Current(), "a symlink to a directory is navigable")
}

func TestBrowser_ListingError(t *testing.T) {
	root := makeTree(t)
	missing := filepath.Join(root, "gone")
	b, _, _ := newTestBrowser(t, root)

	b.goDir(missing)

	assert.Equal(t, missing, b.nav.Current(), "a failed listing still moves")
	assert.Empty(t, b.rows.snapshot.Entries)
	assert.NotEmpty(t, b.bottom.status)

	b.back()
	assert.Equal(t, root, b.nav.Current())
	assert.Empty(t, b.bottom.status)
}

func TestBrowser_DeleteSelection(t *testing.T) {
	root := makeTree(t)
	b, app, _ := newTestBrowser(t, root)

	// Row after the folder tier is a.txt.
	b.files.Select(b.rows.FirstEntryRow()+1, 0)
	b.deleteSelection()
	app.runQueued(t)

	_, err := os.Stat(filepath.Join(root, "a.txt"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 1, len(b.rows.snapshot.Entries), "listing refreshed after delete")
}

func TestBrowser_Rename(t *testing.T) {
	root := makeTree(t)
	b, app, _ := newTestBrowser(t, root)

	b.files.Select(b.rows.FirstEntryRow()+1, 0)
	b.showRename()

	assert.True(t, b.renaming)
	assert.Equal(t, "a.txt", b.rename.entry.Name)
	assert.Equal(t, "a.txt", b.rename.GetText())
	assert.Same(t, b.rename, app.focused)

	b.rename.SetText("b.txt")
	b.rename.done(tcell.KeyEnter)

	assert.False(t, b.renaming)
	assert.FileExists(t, filepath.Join(root, "b.txt"))
	assert.NoFileExists(t, filepath.Join(root, "a.txt"))

	entry, ok := b.selectedEntry()
	assert.True(t, ok)
	assert.Equal(t, "b.txt", entry.Name, "selection follows the renamed entry")
}

func TestBrowser_RenameToExistingName(t *testing.T) {
	root := makeTree(t)
	if err := os.WriteFile(filepath.Join(root, "c.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	b, _, _ := newTestBrowser(t, root)

	b.files.Select(b.rows.FirstEntryRow()+1, 0)
	b.showRename()
	b.rename.SetText("c.txt")
	b.rename.done(tcell.KeyEnter)

	assert.Contains(t, b.bottom.status, "already exists")
	assert.FileExists(t, filepath.Join(root, "a.txt"))
}

func TestBrowser_RenameEscapeKeepsFile(t *testing.T) {
	root := makeTree(t)
	b, app, _ := newTestBrowser(t, root)

	b.files.Select(b.rows.FirstEntryRow()+1, 0)
	b.showRename()
	b.rename.SetText("other.txt")
	b.rename.done(tcell.KeyEscape)

	assert.False(t, b.renaming)
	assert.FileExists(t, filepath.Join(root, "a.txt"))
	assert.Same(t, b.files, app.focused)
}

func TestBrowser_PathbarNavigates(t *testing.T) {
	root := makeTree(t)
	other := t.TempDir()
	b, app, _ := newTestBrowser(t, root)

	b.pathbar.SetText(other)
	b.pathbar.done(tcell.KeyEnter)

	assert.Equal(t, other, b.nav.Current())
	assert.Same(t, b.files, app.focused)

	b.pathbar.SetText("nonsense")
	b.pathbar.done(tcell.KeyEscape)
	assert.Equal(t, other, b.pathbar.GetText(), "escape restores the current path")
}

func TestBrowser_Quit(t *testing.T) {
	root := makeTree(t)
	b, app, _ := newTestBrowser(t, root)

	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}

	assert.Nil(t, b.handleKey(keyEvent(tcell.KeyRune, 'q')))
	assert.True(t, app.stopped)
	assert.Equal(t, 0, exitCode)
}
