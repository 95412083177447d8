// Package daemon deals with the life cycle of the server process: flags which
// control it and the signals which stop it.
package daemon

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
)

// Flags are the command line arguments of the server.
type Flags struct {
	// ConfigFile is the path to the configuration file. Empty means the one in
	// the user directory.
	ConfigFile string

	// Listen overrides the listen address from the configuration.
	Listen string

	// LogFile overrides the log file from the configuration.
	LogFile string

	// PidFile is the file in which the process ID is written. Empty means no
	// PID file.
	PidFile string

	// ShowVersion means the version is printed and the process exits.
	ShowVersion bool
}

// ParseFlags parses the command line `args` without the program name.
func ParseFlags(name string, args []string) (Flags, error) {
	var flags Flags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&flags.ConfigFile, "config", "",
		"Path to the configuration file. Default is [user_path]/config.json")
	fs.StringVar(&flags.Listen, "listen", "",
		"Address to listen on. Overrides the one in the configuration.")
	fs.StringVar(&flags.LogFile, "log-file", "",
		"File to write logs to. Overrides the one in the configuration.")
	fs.StringVar(&flags.PidFile, "pidfile", "",
		"Pidfile. No pidfile is created when empty.")
	fs.BoolVar(&flags.ShowVersion, "v", false, "Show version and exit.")

	if err := fs.Parse(args); err != nil {
		return flags, err
	}

	if fs.NArg() > 0 {
		return flags, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return flags, nil
}

// StopContext returns a context which is done when the process receives one of
// the StopSignals or when `parent` is done.
func StopContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, StopSignals...)
}
