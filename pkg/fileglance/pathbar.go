package fileglance

import (
	"github.com/fileglance/fileglance/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// pathbar shows the current directory and doubles as an address line.
// While the user types, the text turns green or red depending on
// whether the typed directory exists.
type pathbar struct {
	*tview.InputField
	browser *Browser
}

func newPathbar(browser *Browser) *pathbar {
	p := &pathbar{
		browser: browser,
		InputField: tview.NewInputField().
			SetLabel("Path: ").
			SetFieldWidth(0).
			SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor).
			SetFieldTextColor(tview.Styles.PrimaryTextColor),
	}

	p.SetChangedFunc(p.changed)
	p.SetDoneFunc(p.done)

	return p
}

func (p *pathbar) SetDir(dir string) {
	p.SetText(dir)
}

func (p *pathbar) changed(text string) {
	p.SetFieldTextColor(pathColor(text))
}

func pathColor(text string) tcell.Color {
	exists, err := fsutils.DirExists(fsutils.ExpandHome(text))
	if err == nil && exists {
		return Style.PathOKColor
	}
	return Style.PathMissingColor
}

func (p *pathbar) done(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		p.browser.goDir(fsutils.ExpandHome(p.GetText()))
		p.browser.focusFiles()
	case tcell.KeyEscape:
		p.SetDir(p.browser.nav.Current())
		p.browser.focusFiles()
	}
}
