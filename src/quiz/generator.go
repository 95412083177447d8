package quiz

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/ironsmile/musicmustard/src/catalog"
)

// DefaultMaxAttempts is the number of attempts used by Generator when none has
// been configured.
const DefaultMaxAttempts = 10

// Generator creates quiz questions using a catalog for looking up artists and
// their works. It is safe for concurrent use.
type Generator struct {
	catalog     catalog.Catalog
	curated     []string
	maxAttempts int

	rngLock sync.Mutex
	rng     *rand.Rand
}

// NewGenerator returns a Generator which looks up artists in `cat`.
//
// `curated` is the list of artists used for random mode and distractors. When it
// is empty DefaultCuratedArtists is used. `maxAttempts` limits how many times
// looking up a random artist or a pair of distractors is retried before giving
// up. Non-positive values mean DefaultMaxAttempts. When `rng` is nil a randomly
// seeded one is created.
func NewGenerator(
	cat catalog.Catalog,
	curated []string,
	maxAttempts int,
	rng *rand.Rand,
) *Generator {
	curated = uniqueArtists(curated)
	if len(curated) == 0 {
		curated = DefaultCuratedArtists()
	}

	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Generator{
		catalog:     cat,
		curated:     curated,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
}

// CuratedArtists returns a copy of the artists used for random mode.
func (g *Generator) CuratedArtists() []string {
	return slices.Clone(g.curated)
}

// PickCuratedArtist returns one of the curated artists chosen at random.
func (g *Generator) PickCuratedArtist() string {
	return g.curated[g.intN(len(g.curated))]
}

// RandomQuestion generates a question about a randomly picked curated artist.
// Artists which could not be looked up or do not have any works are skipped and
// another one is picked instead. ErrGenerationFailed is returned when no usable
// artist was found in the allowed number of attempts.
func (g *Generator) RandomQuestion(ctx context.Context) (Question, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Question{}, err
		}

		artist := g.PickCuratedArtist()
		works, err := g.artistWorks(ctx, artist)
		if err != nil {
			log.Printf("skipping artist %q for random question: %s", artist, err)
			continue
		}
		if len(works) == 0 {
			log.Printf("skipping artist %q for random question: no works", artist)
			continue
		}

		return g.question(ctx, artist, works)
	}

	return Question{}, fmt.Errorf(
		"%w: no curated artist with works found in %d attempts",
		ErrGenerationFailed,
		g.maxAttempts,
	)
}

// PersonalQuestion generates a question about the artist with `name`. Nothing is
// retried for the artist itself. An error wrapping ErrArtistNotFound or ErrNoWorks
// is returned when it could not be used.
func (g *Generator) PersonalQuestion(ctx context.Context, name string) (Question, error) {
	id, err := g.catalog.ResolveIdentifier(ctx, name)
	if err != nil {
		return Question{}, fmt.Errorf("%w: %s: %w", ErrArtistNotFound, name, err)
	}

	works, err := g.catalog.ResolveWorks(ctx, id)
	if err != nil {
		return Question{}, fmt.Errorf("%w: %s: %w", ErrNoWorks, name, err)
	}
	if len(works) == 0 {
		return Question{}, fmt.Errorf("%w: %s", ErrNoWorks, name)
	}

	return g.question(ctx, name, works)
}

// SampleDistractorArtists returns two different curated artists chosen at random.
// The `current` artist is never among them.
func (g *Generator) SampleDistractorArtists(current string) ([]string, error) {
	remaining := slices.DeleteFunc(g.CuratedArtists(), func(artist string) bool {
		return strings.EqualFold(artist, strings.TrimSpace(current))
	})

	if len(remaining) < distractorCount {
		return nil, fmt.Errorf(
			"%w: %d left after removing %q",
			ErrNotEnoughArtists,
			len(remaining),
			current,
		)
	}

	sampled := make([]string, 0, distractorCount)
	for _, ind := range g.perm(len(remaining))[:distractorCount] {
		sampled = append(sampled, remaining[ind])
	}

	return sampled, nil
}

// question builds a question about `artist` with one of `works` as the correct
// answer. `works` must not be empty.
func (g *Generator) question(
	ctx context.Context,
	artist string,
	works []string,
) (Question, error) {
	correct := works[g.intN(len(works))]

	decoys, err := g.distractors(ctx, artist)
	if err != nil {
		return Question{}, fmt.Errorf("distractors for %s: %w", artist, err)
	}

	options := make([]string, 0, OptionsPerQuestion)
	options = append(options, correct)
	options = append(options, decoys...)
	g.shuffle(options)

	return Question{
		Artist:  artist,
		Options: options,
		Correct: correct,
	}, nil
}

// distractors returns exactly two works by artists other than `current`. When
// any of the sampled artists could not be used a whole new pair is sampled.
func (g *Generator) distractors(ctx context.Context, current string) ([]string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		artists, err := g.SampleDistractorArtists(current)
		if err != nil {
			return nil, err
		}

		decoys := g.distractorWorks(ctx, artists)
		if len(decoys) == distractorCount {
			return decoys, nil
		}
	}

	return nil, fmt.Errorf(
		"%w: no distractors found in %d attempts",
		ErrGenerationFailed,
		g.maxAttempts,
	)
}

// distractorWorks picks one random work of every artist. Artists which could not
// be looked up or have no works are silently skipped, so the result may be
// shorter than `artists`.
func (g *Generator) distractorWorks(ctx context.Context, artists []string) []string {
	var decoys []string

	for _, artist := range artists {
		works, err := g.artistWorks(ctx, artist)
		if err != nil || len(works) == 0 {
			continue
		}
		decoys = append(decoys, works[g.intN(len(works))])
	}

	return decoys
}

func (g *Generator) artistWorks(ctx context.Context, artist string) ([]string, error) {
	id, err := g.catalog.ResolveIdentifier(ctx, artist)
	if err != nil {
		return nil, err
	}

	return g.catalog.ResolveWorks(ctx, id)
}

func (g *Generator) intN(n int) int {
	g.rngLock.Lock()
	defer g.rngLock.Unlock()

	return g.rng.IntN(n)
}

func (g *Generator) perm(n int) []int {
	g.rngLock.Lock()
	defer g.rngLock.Unlock()

	return g.rng.Perm(n)
}

func (g *Generator) shuffle(values []string) {
	g.rngLock.Lock()
	defer g.rngLock.Unlock()

	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}
