package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const musicBrainzArtistPage = "%s/artist/%s%s"

// BuildDeepLink implements Catalog. The artist is looked up by name every time,
// so an error is returned whenever ResolveIdentifier would fail.
func (c *Client) BuildDeepLink(
	ctx context.Context,
	name string,
	section Section,
) (string, error) {
	suffix, ok := sectionPaths[section]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	id, err := c.ResolveIdentifier(ctx, name)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		musicBrainzArtistPage,
		c.musicBrainzWebHost,
		url.PathEscape(id),
		suffix,
	), nil
}

// ParseSection returns the Section for its name. Names are case insensitive and
// leading or trailing spaces are ignored.
func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for section, sectionName := range sectionNames {
		if sectionName == name {
			return section, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}
