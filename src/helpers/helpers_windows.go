package helpers

import (
	"errors"
	"os"
)

// AppDir is the name of the MusicMustard directory in the user's %APPDATA%
const AppDir = "musicmustard"

func userBaseDir() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", errors.New("%APPDATA% is not defined")
	}
	return appData, nil
}
