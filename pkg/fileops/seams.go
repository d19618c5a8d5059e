package fileops

import (
	"os"

	"github.com/pkg/browser"
)

var (
	osStat      = os.Stat
	osLstat     = os.Lstat
	osRename    = os.Rename
	osRemove    = os.Remove
	osRemoveAll = os.RemoveAll
	browserOpen = browser.OpenFile
)
