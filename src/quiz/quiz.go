package quiz

import (
	"errors"
	"fmt"
	"slices"
)

// OptionsPerQuestion is the number of works offered in every question.
const OptionsPerQuestion = 3

// distractorCount is the number of wrong options in every question.
const distractorCount = OptionsPerQuestion - 1

var (
	// ErrGenerationFailed is returned when a question could not be generated
	// within the allowed number of attempts.
	ErrGenerationFailed = errors.New("could not generate question")

	// ErrArtistNotFound is returned in personal mode when an artist supplied by
	// the user could not be found in the catalog.
	ErrArtistNotFound = errors.New("artist not found")

	// ErrNoWorks is returned in personal mode when the catalog knows of no works
	// for an artist supplied by the user.
	ErrNoWorks = errors.New("no works found for artist")

	// ErrNotEnoughArtists is returned when the curated list is too short for
	// picking distractors.
	ErrNotEnoughArtists = errors.New("not enough curated artists for distractors")

	// ErrInvalidQuestion is returned for questions which do not have exactly
	// OptionsPerQuestion options including the correct one.
	ErrInvalidQuestion = errors.New("invalid question")
)

// Question is a single multiple choice question. It asks which of the Options
// is a work of Artist.
type Question struct {
	// Artist is the name of the artist the question is about.
	Artist string `json:"artist"`

	// Options are the possible answers in the order they should be presented.
	Options []string `json:"options"`

	// Correct is the work by Artist. It is always one of the Options.
	Correct string `json:"correct_answer"`
}

// Validate returns an error wrapping ErrInvalidQuestion when the question breaks
// any of its invariants.
func (q Question) Validate() error {
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf(
			"%w: expected %d options but there are %d",
			ErrInvalidQuestion,
			OptionsPerQuestion,
			len(q.Options),
		)
	}

	if !slices.Contains(q.Options, q.Correct) {
		return fmt.Errorf(
			"%w: correct answer %q is not among the options",
			ErrInvalidQuestion,
			q.Correct,
		)
	}

	return nil
}

// InputError is returned when the user supplied artists could not be used for
// generating a quiz. Its message is suitable for showing to the user.
type InputError struct {
	Reason string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.Reason
}
