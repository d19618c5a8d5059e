package fileglance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fileglance/fileglance/pkg/dirsnap"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// renamePanel is the inline rename prompt. While the user types, the
// text turns red when another entry already holds the typed name.
type renamePanel struct {
	*tview.InputField
	browser *Browser
	entry   dirsnap.Entry
}

func newRenamePanel(browser *Browser) *renamePanel {
	p := &renamePanel{
		browser: browser,
		InputField: tview.NewInputField().
			SetFieldWidth(0).
			SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor).
			SetFieldTextColor(tview.Styles.PrimaryTextColor),
	}

	p.SetChangedFunc(p.changed)
	p.SetDoneFunc(p.done)

	return p
}

func (p *renamePanel) Show(entry dirsnap.Entry) {
	p.entry = entry
	p.SetLabel(fmt.Sprintf("Rename %s to: ", entry.Name))
	p.SetText(entry.Name)
}

func (p *renamePanel) changed(text string) {
	if p.targetTaken(text) {
		p.SetFieldTextColor(Style.PathMissingColor)
	} else {
		p.SetFieldTextColor(tview.Styles.PrimaryTextColor)
	}
}

func (p *renamePanel) targetTaken(name string) bool {
	if name == "" || name == p.entry.Name {
		return false
	}
	_, err := os.Lstat(filepath.Join(filepath.Dir(p.entry.Path), name))
	return err == nil
}

func (p *renamePanel) done(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		p.browser.finishRename(p.entry, p.GetText())
	case tcell.KeyEscape:
		p.browser.hideRename()
	}
}
