package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const musicBrainzWorkBrowseEndpoint = "%s/ws/2/work/"

// ResolveWorks implements Catalog. It browses the MusicBrainz works linked to
// the artist with `id` and returns their titles in the order of the response.
func (c *Client) ResolveWorks(ctx context.Context, id string) ([]string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty artist id", ErrNoWorksData)
	}

	query := url.Values{}
	query.Set("artist", id)
	query.Set("fmt", "json")

	var root mbWorkBrowseData
	endpointURL := fmt.Sprintf(musicBrainzWorkBrowseEndpoint, c.musicBrainzAPIHost)
	if err := c.getJSON(ctx, endpointURL, query, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoWorksData, err)
	}

	if root.Works == nil {
		return nil, fmt.Errorf("%w: artist %s", ErrNoWorksData, id)
	}

	titles := make([]string, 0, len(*root.Works))
	for i, work := range *root.Works {
		if work.Title == nil {
			return nil, fmt.Errorf(
				"%w: %w: work %d of artist %s has no title",
				ErrNoWorksData,
				ErrMalformed,
				i,
				id,
			)
		}
		titles = append(titles, *work.Title)
	}

	return titles, nil
}

// mbWorkBrowseData is the response of the MusicBrainz works browse endpoint.
// Works is a pointer so that a missing field could be told apart from an empty
// list.
//
// Example:
//
//	{"work-count": 2, "works": [{"title": "Yesterday"}, {"title": "Help!"}]}
type mbWorkBrowseData struct {
	Count int       `json:"work-count"`
	Works *[]mbWork `json:"works"`
}

type mbWork struct {
	ID    string  `json:"id"`
	Title *string `json:"title"`
}
