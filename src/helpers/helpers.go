// Package helpers contains few helper functions which are used througout the
// project.
package helpers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectUserPath returns the directory in which MusicMustard keeps its user
// files such as the configuration.
func ProjectUserPath() (string, error) {
	base, err := userBaseDir()
	if err != nil {
		return "", fmt.Errorf("finding user directory: %w", err)
	}

	if base == "" {
		return "", errors.New("user directory is empty")
	}

	return filepath.Join(base, AppDir), nil
}

// AbsolutePath returns `path` if it is absolute. Otherwise it is joined
// to `root`.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// SetLogsFile makes the standard logger write into the file at `logFilePath`.
// The file and its directory are created when missing. New logs are appended to
// an existing file.
func SetLogsFile(fs afero.Fs, logFilePath string) error {
	if err := fs.MkdirAll(filepath.Dir(logFilePath), 0700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := fs.OpenFile(
		logFilePath,
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0600,
	)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(logFile)
	return nil
}

// SetUpPidFile writes the PID of the current process into `pidFile`.
func SetUpPidFile(fs afero.Fs, pidFile string) error {
	fh, err := fs.OpenFile(pidFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating PID file: %w", err)
	}

	if _, err := fmt.Fprintf(fh, "%d", os.Getpid()); err != nil {
		fh.Close()
		return fmt.Errorf("writing PID file: %w", err)
	}

	return fh.Close()
}

// RemovePidFile removes the PID file created by SetUpPidFile.
func RemovePidFile(fs afero.Fs, pidFile string) {
	if err := fs.Remove(pidFile); err != nil {
		log.Printf("could not remove pidfile: %s", err)
	}
}
