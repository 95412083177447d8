package webserver_test

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	// Used for QR code recognizing.
	_ "image/png"

	"github.com/liyue201/goqr"

	"github.com/ironsmile/musicmustard/src/assert"
	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/catalog/catalogfakes"
	"github.com/ironsmile/musicmustard/src/webserver"
)

// TestArtistQRHandler generates QR codes for artist links and then checks that
// they could be read and contain the link from the catalog.
func TestArtistQRHandler(t *testing.T) {
	cat := &catalogfakes.FakeCatalog{}
	cat.BuildDeepLinkStub = func(
		_ context.Context,
		name string,
		section catalog.Section,
	) (string, error) {
		if name != "Oasis" {
			return "", fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
		}
		return "https://musicbrainz.org/artist/oasis-mbid/" + section.String(), nil
	}

	tests := []struct {
		desc         string
		name         string
		section      string
		expectedCode int
		expectedLink string
	}{
		{
			desc:         "works section",
			name:         "Oasis",
			section:      "works",
			expectedCode: http.StatusOK,
			expectedLink: "https://musicbrainz.org/artist/oasis-mbid/works",
		},
		{
			desc:         "default section",
			name:         "Oasis",
			expectedCode: http.StatusOK,
			expectedLink: "https://musicbrainz.org/artist/oasis-mbid/profile",
		},
		{
			desc:         "missing name",
			section:      "works",
			expectedCode: http.StatusBadRequest,
		},
		{
			desc:         "unknown section",
			name:         "Oasis",
			section:      "lyrics",
			expectedCode: http.StatusBadRequest,
		},
		{
			desc:         "unknown artist",
			name:         "No Such Band",
			section:      "genre",
			expectedCode: http.StatusNotFound,
		},
	}

	handler := webserver.NewArtistQRHandler(cat)

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			query := url.Values{}
			query.Set("name", test.name)
			if test.section != "" {
				query.Set("section", test.section)
			}

			req := httptest.NewRequest(http.MethodGet, "/artist/qr?"+query.Encode(), nil)
			resp := httptest.NewRecorder()

			handler.ServeHTTP(resp, req)

			responseCode := resp.Result().StatusCode
			if responseCode != test.expectedCode {
				t.Fatalf(
					"expected HTTP Status %d but got %d",
					test.expectedCode,
					responseCode,
				)
			}

			if test.expectedCode != http.StatusOK {
				return
			}

			assert.Equal(t, "image/png", resp.Result().Header.Get("Content-Type"))

			qrImg, _, err := image.Decode(resp.Body)
			if err != nil {
				t.Fatalf("error decoding QR code image: %s", err)
			}

			qrCodes, err := goqr.Recognize(qrImg)
			if err != nil {
				t.Fatalf("unexpected QR reading error: %s", err)
			}

			if len(qrCodes) != 1 {
				t.Fatalf("expected one QR code but found %d", len(qrCodes))
			}

			qrBytes := make([]byte, 0, len(qrCodes[0].Payload))
			for _, b := range qrCodes[0].Payload {
				qrBytes = append(qrBytes, byte(b))
			}

			assert.Equal(t, test.expectedLink, string(qrBytes), "QR code contents")
		})
	}
}
