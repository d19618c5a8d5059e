package fgstate

import (
	"os"
	"path/filepath"

	"github.com/fileglance/fileglance/pkg/fsutils"
	"github.com/fileglance/fileglance/pkg/logging"
)

const defaultSettingsDir = "~/.fileglance"
const stateFileName = "fileglance-state.json"

var settingsDir = defaultSettingsDir
var settingsDirPath = fsutils.ExpandHome(settingsDir)

// State is the handful of fields that survive a restart. Navigation history,
// selection and listings always start fresh.
type State struct {
	InitialPath string `json:"initial_path,omitempty"`
	CurrentPath string `json:"current_path,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(v ...any) {
	logging.S().Warn(v...)
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile
var osUserHomeDir = os.UserHomeDir

func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

// StartDir returns the directory the explorer opens in: the persisted current
// path when present, else the initial path, else the user home.
func StartDir() string {
	var state State
	_ = readJSON(getStateFilePath(), false, &state)
	if state.CurrentPath != "" {
		return state.CurrentPath
	}
	if state.InitialPath != "" {
		return state.InitialPath
	}
	if home, err := osUserHomeDir(); err == nil {
		return home
	}
	return "/"
}

// SaveCurrentPath records dir as the directory to restore on the next start.
// The very first save also pins it as the initial path.
func SaveCurrentPath(dir string) {
	saveSettingValue(func(state *State) {
		if state.InitialPath == "" {
			state.InitialPath = dir
		}
		state.CurrentPath = dir
	})
}

// saveSettingValue reads the state file, applies f and writes it back. A
// broken state file is not fatal: it gets overwritten with a fresh one.
func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("failed to read state file:", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("failed to create settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("settings path is not a directory:", settingsDirPath)
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("failed to write state file:", err)
	}
}
