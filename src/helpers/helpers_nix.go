//go:build !windows

/*
   Helpers for all non-windows machines
*/

package helpers

import "os"

// AppDir is the name of the MusicMustard directory in the user's home directory
const AppDir = ".musicmustard"

func userBaseDir() (string, error) {
	return os.UserHomeDir()
}
