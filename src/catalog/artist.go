package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	musicBrainzArtistSearchEndpoint = "%s/ws/2/artist/"
	musicBrainzArtistQueryValue     = `artist:"%s"`
)

var luceneQuoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ResolveIdentifier implements Catalog. It searches the MusicBrainz API for
// artists matching `name` and returns the ID of the first one.
func (c *Client) ResolveIdentifier(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty artist name", ErrNotFound)
	}

	query := url.Values{}
	query.Set("query", fmt.Sprintf(
		musicBrainzArtistQueryValue,
		luceneQuoteEscaper.Replace(name),
	))
	query.Set("limit", "1")
	query.Set("fmt", "json")

	var root mbArtistSearchData
	endpointURL := fmt.Sprintf(musicBrainzArtistSearchEndpoint, c.musicBrainzAPIHost)
	if err := c.getJSON(ctx, endpointURL, query, &root); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if root.Artists == nil {
		return "", fmt.Errorf(
			"%w: %w: artist search response without artists",
			ErrNotFound,
			ErrMalformed,
		)
	}

	artists := *root.Artists
	if len(artists) < 1 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if artists[0].ID == "" {
		return "", fmt.Errorf(
			"%w: %w: first artist in search response has no id",
			ErrNotFound,
			ErrMalformed,
		)
	}

	return artists[0].ID, nil
}

// The following are structures only used to decode the JSON response from the
// MusicBrainz API. And only the stuff we are interested in and nothing more.
//
// Example:
//
//	{"artists": [{"id": "b10bbbfc-cf9e-42e0-be17-e2c3e1d2600d", "name": "The Beatles"}]}
type mbArtistSearchData struct {
	Artists *[]mbArtist `json:"artists"`
}

type mbArtist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}
