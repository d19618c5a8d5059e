package fileglance

import (
	"fmt"

	"github.com/fileglance/fileglance/pkg/fileglance/fgstate"
	"github.com/rivo/tview"
)

func Main() {
	app := tview.NewApplication()
	SetupApp(app)
	err := app.Run()
	if err != nil {
		fmt.Print(err)
	}
}

// SetupApp mounts the browser as the root primitive, starting in the
// last visited directory.
func SetupApp(app *tview.Application) {
	app.EnableMouse(true)
	app.SetRoot(NewBrowser(app, fgstate.StartDir()), true)
}
