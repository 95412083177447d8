package webserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/quiz"
)

// quizErrorResponse returns the HTTP status code and a message for users for an
// error which happened while generating a quiz. `ok` is false for errors which
// are not expected and should be handled as internal errors. Catalog connectivity
// problems are checked before unknown artists since the latter wrap them.
func quizErrorResponse(err error) (status int, message string, ok bool) {
	var inputErr *quiz.InputError

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, inputErr.Reason, true
	case errors.Is(err, quiz.ErrGenerationFailed),
		errors.Is(err, quiz.ErrNotEnoughArtists),
		errors.Is(err, catalog.ErrTransport),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable,
			"Could not generate a quiz at the moment. Please try again later.", true
	case errors.Is(err, quiz.ErrArtistNotFound), errors.Is(err, quiz.ErrNoWorks):
		return http.StatusUnprocessableEntity,
			"Invalid Artist's Name Detected! Please Try Again!", true
	default:
		return http.StatusInternalServerError, "", false
	}
}

// newSession starts a quiz in `mode`. `artists` are used only in personal mode.
func newSession(
	ctx context.Context,
	gen *quiz.Generator,
	mode quiz.Mode,
	artists []string,
) (*quiz.Session, error) {
	switch mode {
	case quiz.ModeRandom:
		return gen.NewRandomSession(ctx)
	case quiz.ModePersonal:
		return gen.NewPersonalSession(ctx, artists)
	default:
		return nil, &quiz.InputError{Reason: "Please select a quiz mode."}
	}
}
