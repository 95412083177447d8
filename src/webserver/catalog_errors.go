package webserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ironsmile/musicmustard/src/catalog"
)

// catalogErrorStatus returns the HTTP status code for an error returned by the
// catalog. Connectivity problems are checked first since lookup errors wrap them.
func catalogErrorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownSection):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, catalog.ErrTransport), errors.Is(err, catalog.ErrMalformed):
		return http.StatusBadGateway
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrNoWorksData):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// catalogErrorMessage returns a message suitable for users for an error returned
// by the catalog while looking up `artist`.
func catalogErrorMessage(err error, artist string) string {
	switch catalogErrorStatus(err) {
	case http.StatusBadRequest:
		return "Please select a valid kind of artist information."
	case http.StatusGatewayTimeout, http.StatusBadGateway:
		return "MusicBrainz could not be reached at the moment. Please try again later."
	case http.StatusNotFound:
		return fmt.Sprintf(
			"Unable to fetch information for the artist: %s. "+
				"Please retry with a valid artist name.",
			artist,
		)
	default:
		return "Something went wrong. Please try again."
	}
}
