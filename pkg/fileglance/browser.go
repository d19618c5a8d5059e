package fileglance

import (
	"context"
	"fmt"
	"os"

	"github.com/fileglance/fileglance/pkg/dirsnap"
	"github.com/fileglance/fileglance/pkg/fileglance/fgstate"
	"github.com/fileglance/fileglance/pkg/fileops"
	"github.com/fileglance/fileglance/pkg/nav"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var saveCurrentPath = fgstate.SaveCurrentPath
var startWatcher = newDirWatcher
var osExit = os.Exit

// Browser is the root primitive: path bar on top, files table in the
// middle, key hints at the bottom.
type Browser struct {
	*tview.Flex

	app appControl

	nav  *nav.Navigator
	rows *FileRows

	pathbar *pathbar
	files   *tview.Table
	bottom  *bottom
	rename  *renamePanel
	watcher *dirWatcher

	renaming bool
}

func NewBrowser(app *tview.Application, startDir string) *Browser {
	return newBrowser(fgApp{Application: app}, startDir, nil)
}

func newBrowser(app appControl, startDir string, build nav.BuildFunc) *Browser {
	b := &Browser{
		app:  app,
		nav:  nav.NewNavigator(build),
		rows: NewFileRows(),
	}

	b.pathbar = newPathbar(b)
	b.rename = newRenamePanel(b)

	b.files = tview.NewTable().
		SetContent(b.rows).
		SetFixed(1, 0).
		SetSelectable(true, false)
	b.files.SetBorder(true)
	b.files.SetBorderColor(Style.BlurBorderColor)
	b.files.SetFocusFunc(func() {
		b.files.SetBorderColor(Style.FocusedBorderColor)
	})
	b.files.SetBlurFunc(func() {
		b.files.SetBorderColor(Style.BlurBorderColor)
	})
	b.files.SetInputCapture(b.handleKey)
	b.files.SetSelectedFunc(func(row, _ int) {
		b.openRow(row)
	})

	b.bottom = newBottom(b)

	b.watcher = startWatcher(func() {
		b.app.QueueUpdateDraw(b.refresh)
	})

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.pathbar, 1, 0, false).
		AddItem(b.files, 0, 1, true).
		AddItem(b.bottom, 1, 0, false)

	b.goDir(startDir)

	return b
}

func (b *Browser) goDir(dir string) {
	b.afterMove(b.nav.Navigate(context.Background(), dir))
}

func (b *Browser) back() {
	if !b.nav.CanBack() {
		return
	}
	b.afterMove(b.nav.Back(context.Background()))
}

func (b *Browser) forward() {
	if !b.nav.CanForward() {
		return
	}
	b.afterMove(b.nav.Forward(context.Background()))
}

func (b *Browser) up() {
	if !b.nav.CanUp() {
		return
	}
	b.afterMove(b.nav.Up(context.Background()))
}

func (b *Browser) refresh() {
	b.applyListing(b.nav.Refresh(context.Background()))
}

// afterMove persists the new location and re-arms the watcher; a
// failed listing still counts as a move.
func (b *Browser) afterMove(err error) {
	b.applyListing(err)
	if dir := b.nav.Current(); dir != "" {
		saveCurrentPath(dir)
		b.watcher.Watch(dir)
	}
}

func (b *Browser) applyListing(err error) {
	b.rows.SetListing(b.nav.Snapshot(), err)
	b.files.Select(b.rows.FirstEntryRow(), 0)
	b.files.ScrollToBeginning()
	b.files.SetTitle(fmt.Sprintf(" Files: %d items ", len(b.nav.Snapshot().Entries)))
	b.pathbar.SetDir(b.nav.Current())
	if err != nil {
		b.bottom.setStatus(err.Error())
	} else {
		b.bottom.setStatus("")
	}
}

func (b *Browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		b.back()
		return nil
	case tcell.KeyRight:
		b.forward()
		return nil
	case tcell.KeyF5:
		b.refresh()
		return nil
	case tcell.KeyF2:
		b.showRename()
		return nil
	case tcell.KeyF8, tcell.KeyDelete:
		b.deleteSelection()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f':
			b.forward()
			return nil
		case 'u':
			b.up()
			return nil
		case 'r':
			b.refresh()
			return nil
		case 'p':
			b.app.SetFocus(b.pathbar)
			return nil
		case 'q':
			b.quit()
			return nil
		}
	}
	return event
}

func (b *Browser) selectedEntry() (dirsnap.Entry, bool) {
	row, _ := b.files.GetSelection()
	return b.rows.EntryAt(row)
}

func (b *Browser) openSelection() {
	row, _ := b.files.GetSelection()
	b.openRow(row)
}

func (b *Browser) openRow(row int) {
	if b.rows.IsParentRow(row) {
		b.up()
		return
	}
	entry, ok := b.rows.EntryAt(row)
	if !ok {
		return
	}
	b.openEntry(entry)
}

// openEntry navigates into anything directory-like and hands the rest
// to the platform's default handler.
func (b *Browser) openEntry(entry dirsnap.Entry) {
	if entry.Kind == dirsnap.KindFolder {
		b.goDir(entry.Path)
		return
	}
	if entry.Kind == dirsnap.KindOther && fileops.ResolvesToDir(entry.Path) {
		b.goDir(entry.Path)
		return
	}
	op := fileops.NewOperation(fileops.OpenOperation, func(_ context.Context) error {
		return fileops.Open(entry.Path)
	})
	b.runOperation(op, false)
}

func (b *Browser) deleteSelection() {
	entry, ok := b.selectedEntry()
	if !ok {
		return
	}
	op := fileops.NewOperation(fileops.DeleteOperation, func(_ context.Context) error {
		return fileops.Delete(entry.Path)
	})
	b.runOperation(op, true)
}

func (b *Browser) runOperation(op *fileops.Operation, refreshAfter bool) {
	go func() {
		err := <-op.Done()
		b.app.QueueUpdateDraw(func() {
			if err != nil {
				b.bottom.setStatus(err.Error())
			}
			if refreshAfter {
				b.refresh()
			}
		})
	}()
}

func (b *Browser) showRename() {
	if b.renaming {
		return
	}
	entry, ok := b.selectedEntry()
	if !ok {
		return
	}
	b.renaming = true
	b.rename.Show(entry)
	b.RemoveItem(b.bottom)
	b.AddItem(b.rename, 1, 0, false)
	b.app.SetFocus(b.rename)
}

func (b *Browser) hideRename() {
	if !b.renaming {
		return
	}
	b.renaming = false
	b.RemoveItem(b.rename)
	b.AddItem(b.bottom, 1, 0, false)
	b.focusFiles()
}

func (b *Browser) finishRename(entry dirsnap.Entry, newName string) {
	b.hideRename()
	if newName == entry.Name {
		return
	}
	newPath, err := fileops.Rename(entry.Path, newName)
	if err != nil {
		b.bottom.setStatus(err.Error())
		return
	}
	b.refresh()
	b.selectPath(newPath)
}

func (b *Browser) selectPath(path string) {
	for i, entry := range b.rows.snapshot.Entries {
		if entry.Path == path {
			b.files.Select(b.rows.FirstEntryRow()+i, 0)
			return
		}
	}
}

func (b *Browser) focusFiles() {
	b.app.SetFocus(b.files)
}

func (b *Browser) quit() {
	b.watcher.Close()
	b.app.Stop()
	osExit(0)
}
