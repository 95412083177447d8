// MusicMustard is a small web application for exploring artists in MusicBrainz
// and taking quizzes about their works.
//
// This file is only here to make installing with go install easier. All of the
// source is stashed in the src directory.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/ironsmile/musicmustard/src"
)

var (
	// httpRootFS is the directory which contains the
	// static files served by MusicMustard. If the embedded
	// directory name changes remember to change it in
	// main() too.
	//
	//go:embed http_root
	httpRootFS embed.FS

	// htmlTemplatesFS is the directory with HTML templates. If
	// the embedded directory name changes, remember to change it
	// in main() too.
	//
	//go:embed templates
	htmlTemplatesFS embed.FS
)

func main() {
	fsRoot, err := fs.Sub(httpRootFS, "http_root")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading HTTP root subFS: %s\n", err)
		os.Exit(1)
	}

	tpls, err := fs.Sub(htmlTemplatesFS, "templates")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading templates subFS: %s\n", err)
		os.Exit(1)
	}

	src.Main(fsRoot, tpls)
}
