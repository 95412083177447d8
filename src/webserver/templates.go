package webserver

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

// Templates is a type which knows how to find and parse HTML templates
// by their name.
type Templates interface {

	// Get find and parses a template based on its file name.
	Get(path string) (*template.Template, error)

	// All returns a struct which contains all templates in
	// non-exported attributes.
	All() (*AllTemplates, error)
}

// FSTemplates is Templates implementation which uses fs.FS to
// extract template data.
type FSTemplates struct {
	fs fs.FS
}

// Get implements Templates for the box in FSTemplates.
func (t *FSTemplates) Get(path string) (*template.Template, error) {
	tpl := template.New(path).Funcs(templateFuncs)

	parsed, err := tpl.ParseFS(t.fs, path)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return parsed, nil
}

// All implements the Templates interface. Every page is its content template
// executed inside a copy of layout.html.
func (t *FSTemplates) All() (*AllTemplates, error) {
	layout, err := t.Get("layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	all := &AllTemplates{}
	for _, page := range []struct {
		file string
		dst  **template.Template
	}{
		{"home.html", &all.home},
		{"explore.html", &all.explore},
		{"quiz.html", &all.quiz},
		{"cheatsheet.html", &all.cheatsheet},
		{"result.html", &all.result},
	} {
		tpl, err := t.inLayout(layout, page.file)
		if err != nil {
			return nil, err
		}
		*page.dst = tpl
	}

	return all, nil
}

func (t *FSTemplates) inLayout(
	layout *template.Template,
	file string,
) (*template.Template, error) {
	fh, err := t.fs.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not find %s template: %w", file, err)
	}
	defer fh.Close()

	tplContents, err := io.ReadAll(fh)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}

	page := template.Must(layout.Clone())
	if _, err := page.New("content").Parse(string(tplContents)); err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", file, err)
	}

	return page, nil
}

// NewFSTemplates returns a new FSTemplates which will use the argument
// fs.FS for finding and reading files.
func NewFSTemplates(fs fs.FS) *FSTemplates {
	return &FSTemplates{
		fs: fs,
	}
}

// AllTemplates is a structure which contains all parsed templates for different pages.
// They are ready for usage in http handlers which return HTML.
type AllTemplates struct {
	home       *template.Template
	explore    *template.Template
	quiz       *template.Template
	cheatsheet *template.Template
	result     *template.Template
}

var templateFuncs = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"letter": func(i int) string {
		return string(rune('A' + i))
	},
}
