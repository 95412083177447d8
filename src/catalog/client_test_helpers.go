package catalog

import (
	"net/http"
	"strings"
)

// SetHTTPClient sets the underlying HTTP client which will be used by the Client
// for all of its requests. Only useful for tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetMusicBrainzAPIURL sets the MusicBrainz API URL. Useful for tests and for
// pointing the client to a MusicBrainz mirror. Trailing slashes are ignored.
func (c *Client) SetMusicBrainzAPIURL(apiURL string) {
	c.musicBrainzAPIHost = strings.TrimRight(apiURL, "/")
}

// SetMusicBrainzWebURL sets the MusicBrainz web site URL used for deep links.
func (c *Client) SetMusicBrainzWebURL(webURL string) {
	c.musicBrainzWebHost = strings.TrimRight(webURL, "/")
}
