/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of MusicMustard. It is set during building.
var Version = "dev-unreleased"

// Name is the human readable name of the application.
const Name = "MusicMustard"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "%s music quiz %s\n", Name, Version)
	fmt.Fprintf(out, "Build with %s\n", runtime.Version())
}

// UserAgent returns the value of the User-Agent header used for requests to
// external services.
func UserAgent() string {
	return fmt.Sprintf(
		"%s/%s ( https://github.com/ironsmile/musicmustard )",
		Name, Version,
	)
}
