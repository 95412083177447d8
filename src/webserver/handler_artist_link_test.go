package webserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ironsmile/musicmustard/src/assert"
	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/catalog/catalogfakes"
	"github.com/ironsmile/musicmustard/src/webserver"
)

// TestArtistLinkHandler checks the API responses for artist links including the
// status codes for the different catalog errors.
func TestArtistLinkHandler(t *testing.T) {
	cat := &catalogfakes.FakeCatalog{}
	cat.BuildDeepLinkStub = func(
		_ context.Context,
		name string,
		section catalog.Section,
	) (string, error) {
		switch name {
		case "Oasis":
			return "https://musicbrainz.org/artist/oasis-mbid/" + section.String(), nil
		case "Slow":
			return "", fmt.Errorf("looking up %s: %w", name, catalog.ErrTimeout)
		case "Broken":
			return "", fmt.Errorf("looking up %s: %w", name, catalog.ErrMalformed)
		default:
			return "", fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
		}
	}

	tests := []struct {
		query        string
		expectedCode int
		expectedLink string
	}{
		{
			query:        "name=Oasis&section=events",
			expectedCode: http.StatusOK,
			expectedLink: "https://musicbrainz.org/artist/oasis-mbid/events",
		},
		{
			query:        "name=Oasis",
			expectedCode: http.StatusOK,
			expectedLink: "https://musicbrainz.org/artist/oasis-mbid/profile",
		},
		{query: "section=works", expectedCode: http.StatusBadRequest},
		{query: "name=Oasis&section=tours", expectedCode: http.StatusBadRequest},
		{query: "name=Nobody", expectedCode: http.StatusNotFound},
		{query: "name=Slow", expectedCode: http.StatusGatewayTimeout},
		{query: "name=Broken", expectedCode: http.StatusBadGateway},
	}

	handler := webserver.NewArtistLinkHandler(cat)

	for _, test := range tests {
		req := httptest.NewRequest(http.MethodGet, "/v1/artist/link?"+test.query, nil)
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		assert.Equal(t, test.expectedCode, resp.Code, "query %s", test.query)

		var body map[string]string
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Errorf("query %s: response is not JSON: %s", test.query, err)
			continue
		}

		if test.expectedCode != http.StatusOK {
			if body["error"] == "" {
				t.Errorf("query %s: expected an error message", test.query)
			}
			continue
		}

		assert.Equal(t, test.expectedLink, body["link"], "query %s", test.query)
		assert.Equal(t, "Oasis", body["artist"])
	}
}
