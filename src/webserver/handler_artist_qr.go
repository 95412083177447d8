package webserver

import (
	"log"
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/ironsmile/musicmustard/src/catalog"
)

// qrCodeSize is the width and height in pixels of the generated QR codes.
const qrCodeSize = 256

// NewArtistQRHandler returns a http.Handler which serves a PNG image with a QR
// code. It encodes the MusicBrainz link for the artist from the "name" query
// value and the section from the "section" query value. Missing section means
// the artist profile.
func NewArtistQRHandler(cat catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		name := strings.TrimSpace(query.Get("name"))
		if name == "" {
			http.Error(w, "The artist name is required.", http.StatusBadRequest)
			return
		}

		section := catalog.SectionProfile
		if sectionName := query.Get("section"); sectionName != "" {
			var err error
			section, err = catalog.ParseSection(sectionName)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		link, err := cat.BuildDeepLink(r.Context(), name, section)
		if err != nil {
			log.Printf("building QR code link for %q: %s", name, err)
			http.Error(w, catalogErrorMessage(err, name), catalogErrorStatus(err))
			return
		}

		qr, err := qrcode.New(link, qrcode.Medium)
		if err != nil {
			http.Error(w, "Error creating QR code: "+err.Error(),
				http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := qr.Write(qrCodeSize, w); err != nil {
			log.Printf("error writing out QR code: %s", err)
		}
	})
}
