package quiz

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed curated_artists.txt
var curatedArtistsFile string

// DefaultCuratedArtists returns the list of artists which is used when no other
// list has been configured.
func DefaultCuratedArtists() []string {
	return parseCuratedArtists(curatedArtistsFile)
}

// parseCuratedArtists reads one artist per line. Empty lines and lines starting
// with # are skipped.
func parseCuratedArtists(contents string) []string {
	var artists []string

	scanner := bufio.NewScanner(strings.NewReader(contents))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		artists = append(artists, line)
	}

	return uniqueArtists(artists)
}

// uniqueArtists returns `artists` without blank names and without repetitions.
// Names are compared case insensitively and the first spelling wins.
func uniqueArtists(artists []string) []string {
	seen := make(map[string]struct{}, len(artists))
	unique := make([]string, 0, len(artists))

	for _, artist := range artists {
		artist = strings.TrimSpace(artist)
		if artist == "" {
			continue
		}

		key := strings.ToLower(artist)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, artist)
	}

	return unique
}
