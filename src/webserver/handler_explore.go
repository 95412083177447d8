package webserver

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/ironsmile/musicmustard/src/catalog"
)

// exploreContent is the content of the home page with its "Explore Artist" form
// and of the page with the generated links.
type exploreContent struct {
	Artist   string
	Sections []sectionChoice
	Links    []artistLink
}

type sectionChoice struct {
	Name     string
	Selected bool
}

type artistLink struct {
	Section string
	URL     string
	QRCode  string
}

type exploreHandler struct {
	explore *template.Template
	catalog catalog.Catalog
}

// NewHomeHandler returns the handler for the home page. It shows the "Explore
// Artist" form.
func NewHomeHandler(tpl *template.Template) http.Handler {
	return WithInternalError(func(w http.ResponseWriter, r *http.Request) error {
		data := newPageData(r, "MusicMustard", exploreContent{
			Sections: sectionChoices(nil),
		})
		return renderPage(w, tpl, http.StatusOK, data)
	})
}

// NewExploreHandler returns the handler which processes the "Explore Artist" form.
// It shows a link to every selected section of the artist page in MusicBrainz.
func NewExploreHandler(tpl *template.Template, cat catalog.Catalog) http.Handler {
	h := &exploreHandler{
		explore: tpl,
		catalog: cat,
	}
	return WithInternalError(h.serve)
}

func (h *exploreHandler) serve(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Bad form: %s", err), http.StatusBadRequest)
		return nil
	}

	artist := strings.TrimSpace(r.PostForm.Get("artist"))
	selected := r.PostForm["section"]

	content := exploreContent{
		Artist:   artist,
		Sections: sectionChoices(selected),
	}
	data := newPageData(r, "Explore "+artist, content)

	if artist == "" {
		data.Title = "Explore Artist"
		data.Warning = "Please enter the artist's name."
		return renderPage(w, h.explore, http.StatusBadRequest, data)
	}

	if len(selected) == 0 {
		data.Warning = "Please select at least one kind of artist information."
		return renderPage(w, h.explore, http.StatusBadRequest, data)
	}

	for _, sectionName := range selected {
		section, err := catalog.ParseSection(sectionName)
		if err != nil {
			data.Warning = catalogErrorMessage(err, artist)
			return renderPage(w, h.explore, http.StatusBadRequest, data)
		}

		link, err := h.catalog.BuildDeepLink(r.Context(), artist, section)
		if err != nil {
			log.Printf("building %s link for %q: %s", section, artist, err)
			data.Error = catalogErrorMessage(err, artist)
			return renderPage(w, h.explore, catalogErrorStatus(err), data)
		}

		content.Links = append(content.Links, artistLink{
			Section: section.String(),
			URL:     link,
			QRCode:  artistQRPath(artist, section),
		})
	}

	data.Content = content
	return renderPage(w, h.explore, http.StatusOK, data)
}

// sectionChoices returns all sections for the explore form. The ones in `selected`
// are marked as such.
func sectionChoices(selected []string) []sectionChoice {
	choices := make([]sectionChoice, 0, len(catalog.AllSections))
	for _, section := range catalog.AllSections {
		choice := sectionChoice{Name: section.String()}
		for _, name := range selected {
			if strings.EqualFold(strings.TrimSpace(name), choice.Name) {
				choice.Selected = true
			}
		}
		choices = append(choices, choice)
	}
	return choices
}

func artistQRPath(artist string, section catalog.Section) string {
	query := url.Values{}
	query.Set("name", artist)
	query.Set("section", section.String())
	return "/artist/qr?" + query.Encode()
}
