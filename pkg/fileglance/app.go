package fileglance

import "github.com/rivo/tview"

// appControl is the slice of tview.Application the browser drives,
// narrow enough to fake in tests.
type appControl interface {
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	Stop()
}

type fgApp struct {
	*tview.Application
}

func (a fgApp) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a fgApp) SetFocus(p tview.Primitive) {
	_ = a.Application.SetFocus(p)
}
