package webserver

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

// pageData is what every page template gets. Content is specific for each page.
type pageData struct {
	Title   string
	Req     *http.Request
	Menu    []menu
	Warning string
	Error   string
	Content any
}

type menu struct {
	URI    string
	Name   string
	Active bool
}

func newPageData(r *http.Request, title string, content any) pageData {
	return pageData{
		Title:   title,
		Req:     r,
		Content: content,
		Menu: []menu{
			{
				Name:   "Explore Music",
				URI:    "/",
				Active: r.URL.Path == "/" || r.URL.Path == "/explore/",
			},
			{
				Name:   "Take Quiz",
				URI:    "/quiz/",
				Active: r.URL.Path == "/quiz/" || r.URL.Path == "/quiz/cheatsheet",
			},
			{
				Name:   "Quiz Result",
				URI:    "/result/",
				Active: r.URL.Path == "/result/",
			},
		},
	}
}

// renderPage executes `tpl` with `data` and writes the result with status code
// `status`. The template is executed in a buffer first so that errors could still
// result in an Internal Server Error.
func renderPage(
	w http.ResponseWriter,
	tpl *template.Template,
	status int,
	data pageData,
) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("error writing page %s: %s", data.Title, err)
	}

	return nil
}

// NewTemplateHandler returns a handler which will execute the page template inside
// the layout template.
func NewTemplateHandler(tpl *template.Template, title string) http.Handler {
	return WithInternalError(func(w http.ResponseWriter, r *http.Request) error {
		return renderPage(w, tpl, http.StatusOK, newPageData(r, title, nil))
	})
}
