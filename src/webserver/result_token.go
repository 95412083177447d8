package webserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gbrlsnchs/jwt/v3"

	"github.com/ironsmile/musicmustard/src/quiz"
)

// resultTokenTTL is how long a result link stays valid.
const resultTokenTTL = 30 * 24 * time.Hour

// errBadScore is returned for result tokens with a score which is not possible.
var errBadScore = errors.New("score out of range")

type resultPayload struct {
	jwt.Payload

	Score int `json:"score"`
	OutOf int `json:"out_of"`
}

// signResult returns a signed token which carries `score`. It is used in the
// result page links so that users could not make up their scores.
func signResult(secret []byte, score int, now time.Time) (string, error) {
	pl := resultPayload{
		Payload: jwt.Payload{
			IssuedAt:       jwt.NumericDate(now),
			ExpirationTime: jwt.NumericDate(now.Add(resultTokenTTL)),
		},
		Score: score,
		OutOf: quiz.QuestionsPerQuiz,
	}

	token, err := jwt.Sign(pl, jwt.NewHS256(secret))
	if err != nil {
		return "", fmt.Errorf("signing result: %w", err)
	}

	return string(token), nil
}

// verifyResult returns the score in a token created with signResult.
func verifyResult(secret []byte, token string, now time.Time) (int, error) {
	var pl resultPayload

	_, err := jwt.Verify(
		[]byte(token),
		jwt.NewHS256(secret),
		&pl,
		jwt.ValidatePayload(&pl.Payload, jwt.ExpirationTimeValidator(now)),
	)
	if err != nil {
		return 0, fmt.Errorf("verifying result token: %w", err)
	}

	if pl.Score < 0 || pl.Score > quiz.QuestionsPerQuiz {
		return 0, fmt.Errorf("%w: %d", errBadScore, pl.Score)
	}

	return pl.Score, nil
}
