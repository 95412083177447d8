package webserver

import (
	"log"
	"net/http"
	"strings"

	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/webserver/webutils"
)

type artistLinkResponse struct {
	Artist  string `json:"artist"`
	Section string `json:"section"`
	Link    string `json:"link"`
}

// NewArtistLinkHandler returns the API handler which responds with the
// MusicBrainz link for the artist in the "name" query value. The "section"
// query value selects the part of the artist page. Missing section means the
// artist profile.
func NewArtistLinkHandler(cat catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		name := strings.TrimSpace(query.Get("name"))
		if name == "" {
			webutils.JSONError(w, "the `name` query value is required", http.StatusBadRequest)
			return
		}

		section := catalog.SectionProfile
		if sectionName := query.Get("section"); sectionName != "" {
			var err error
			section, err = catalog.ParseSection(sectionName)
			if err != nil {
				webutils.JSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		link, err := cat.BuildDeepLink(r.Context(), name, section)
		if err != nil {
			log.Printf("building %s link for %q: %s", section, name, err)
			webutils.JSONError(w, err.Error(), catalogErrorStatus(err))
			return
		}

		webutils.JSONResponse(w, artistLinkResponse{
			Artist:  name,
			Section: section.String(),
			Link:    link,
		}, http.StatusOK)
	})
}
