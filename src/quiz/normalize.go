package quiz

import (
	"fmt"
	"strings"
)

// QuestionsPerQuiz is the number of questions in every quiz.
const QuestionsPerQuiz = 3

// ParseArtistList splits a comma separated list of artist names. Names are trimmed
// but blank ones are kept so that NormalizeArtists could reject them. Blank input
// results in no names at all.
func ParseArtistList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	artists := make([]string, 0, len(parts))

	for _, artist := range parts {
		artists = append(artists, strings.TrimSpace(artist))
	}

	return artists
}

// NormalizeArtists turns between one and three user supplied artist names into
// exactly QuestionsPerQuiz names, one for each question:
//
//   - one name is repeated three times
//   - for two names one of them, chosen at random, is repeated as the third
//   - three names are used as they are
//
// Any other number of names or a blank name results in an *InputError.
func (g *Generator) NormalizeArtists(names []string) ([]string, error) {
	if len(names) < 1 {
		return nil, &InputError{Reason: "Please enter at least one artist."}
	}

	if len(names) > QuestionsPerQuiz {
		return nil, &InputError{Reason: fmt.Sprintf(
			"Please enter at most %d artists.", QuestionsPerQuiz,
		)}
	}

	chosen := make([]string, 0, QuestionsPerQuiz)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &InputError{Reason: "Artist names cannot be blank."}
		}
		chosen = append(chosen, name)
	}

	switch len(chosen) {
	case 1:
		chosen = append(chosen, chosen[0], chosen[0])
	case 2:
		chosen = append(chosen, chosen[g.intN(len(chosen))])
	}

	return chosen, nil
}
