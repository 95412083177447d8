package webserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ironsmile/musicmustard/src/assert"
	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/quiz"
)

func apiRequest(
	t *testing.T,
	handler http.Handler,
	method, target string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		assert.NilErr(t, json.NewEncoder(&reqBody).Encode(body), "encoding request")
	}

	req := httptest.NewRequest(method, target, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	return resp
}

func decodeJSON[V any](t *testing.T, resp *httptest.ResponseRecorder) V {
	t.Helper()

	var val V
	if err := json.NewDecoder(resp.Body).Decode(&val); err != nil {
		t.Fatalf("decoding JSON response: %s", err)
	}
	return val
}

// TestAPIQuizFlow takes a quiz using the JSON API.
func TestAPIQuizFlow(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())

	resp := apiRequest(t, handler, http.MethodPost, "/v1/quiz", apiQuizRequest{
		Mode:    quiz.ModePersonal,
		Artists: []string{"Radiohead"},
	})
	assert.Equal(t, http.StatusCreated, resp.Code)
	if strings.Contains(resp.Body.String(), "correct") {
		t.Errorf("correct answers are part of the new session:\n%s", resp.Body)
	}

	created := decodeJSON[apiQuizSession](t, resp)
	assert.Equal(t, quiz.ModePersonal, created.Mode)
	assert.Equal(t, quiz.QuestionsPerQuiz, len(created.Questions))
	assert.Equal(t, quiz.QuestionsPerQuiz, len(created.Answers))
	for _, question := range created.Questions {
		assert.Equal(t, "Radiohead", question.Artist)
		assert.Equal(t, quiz.OptionsPerQuestion, len(question.Options))
	}

	session, err := store.Get(context.Background(), created.ID)
	assert.NilErr(t, err, "getting the created session")

	sessionURL := "/v1/quiz/" + created.ID

	resp = apiRequest(t, handler, http.MethodGet, sessionURL, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	fetched := decodeJSON[apiQuizSession](t, resp)
	assert.Equal(t, created.ID, fetched.ID)

	resp = apiRequest(t, handler, http.MethodPut, sessionURL+"/answers/1", apiAnswerRequest{
		Answer: session.Questions[0].Correct,
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	answered := decodeJSON[apiQuizSession](t, resp)
	assert.Equal(t, session.Questions[0].Correct, answered.Answers[0])
	assert.Equal(t, "", answered.Answers[1])

	resp = apiRequest(t, handler, http.MethodPut, sessionURL+"/answers/3", apiAnswerRequest{
		Answer: wrongOption(t, session.Questions[2]),
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = apiRequest(t, handler, http.MethodPut, sessionURL+"/answers/4", apiAnswerRequest{
		Answer: session.Questions[0].Correct,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code, "answering missing question")

	resp = apiRequest(t, handler, http.MethodPut, sessionURL+"/answers/0", apiAnswerRequest{
		Answer: session.Questions[0].Correct,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code, "answering question 0")

	resp = apiRequest(t, handler, http.MethodPut, sessionURL+"/answers/first", apiAnswerRequest{
		Answer: session.Questions[0].Correct,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code, "question which is not a number")

	resp = apiRequest(t, handler, http.MethodPut, sessionURL+"/answers/2", apiAnswerRequest{
		Answer: "Not A Song",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code, "answer which is not an option")

	resp = apiRequest(t, handler, http.MethodPost, sessionURL+"/submit", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	score := decodeJSON[apiScoreResponse](t, resp)
	assert.Equal(t, 1, score.Score)
	assert.Equal(t, quiz.QuestionsPerQuiz, score.OutOf)
	assert.Equal(t, quiz.QuestionsPerQuiz, len(score.Correct))
	for i, question := range session.Questions {
		assert.Equal(t, question.Correct, score.Correct[i], "correct answer %d", i+1)
	}

	tokenScore, err := verifyResult([]byte(testSecret), score.Token, time.Now())
	assert.NilErr(t, err, "verifying result token")
	assert.Equal(t, 1, tokenScore)

	resp = apiRequest(t, handler, http.MethodGet, sessionURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code, "session after submitting")

	resp = apiRequest(t, handler, http.MethodPost, sessionURL+"/submit", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code, "submitting twice")
}

// TestAPIQuizDiscard makes sure sessions could be deleted without scoring them.
func TestAPIQuizDiscard(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())

	resp := apiRequest(t, handler, http.MethodPost, "/v1/quiz", apiQuizRequest{
		Mode: quiz.ModeRandom,
	})
	assert.Equal(t, http.StatusCreated, resp.Code)
	created := decodeJSON[apiQuizSession](t, resp)
	assert.Equal(t, quiz.ModeRandom, created.Mode)
	assert.Equal(t, 1, store.Len())

	resp = apiRequest(t, handler, http.MethodDelete, "/v1/quiz/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, 0, store.Len())

	resp = apiRequest(t, handler, http.MethodDelete, "/v1/quiz/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code, "deleting twice")
}

// TestAPIQuizCreateErrors checks the status codes for quizzes which could not
// be created.
func TestAPIQuizCreateErrors(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())

	tests := []struct {
		desc   string
		body   any
		status int
	}{
		{"unknown mode", apiQuizRequest{Mode: "hard"}, http.StatusBadRequest},
		{"no artists", apiQuizRequest{Mode: quiz.ModePersonal}, http.StatusBadRequest},
		{
			"too many artists",
			apiQuizRequest{
				Mode:    quiz.ModePersonal,
				Artists: []string{"Oasis", "Blur", "Pulp", "Radiohead"},
			},
			http.StatusBadRequest,
		},
		{
			"unknown artist",
			apiQuizRequest{Mode: quiz.ModePersonal, Artists: []string{"Nobody"}},
			http.StatusUnprocessableEntity,
		},
		{"not JSON", "mode=random", http.StatusBadRequest},
	}

	for _, test := range tests {
		resp := apiRequest(t, handler, http.MethodPost, "/v1/quiz", test.body)
		assert.Equal(t, test.status, resp.Code, test.desc)

		body := decodeJSON[map[string]string](t, resp)
		if body["error"] == "" {
			t.Errorf("%s: expected an error message", test.desc)
		}
	}

	assert.Equal(t, 0, store.Len(), "stored sessions")
}

// TestAPIQuizGenerationFailure makes sure an unavailable catalog results in
// Service Unavailable for random quizzes.
func TestAPIQuizGenerationFailure(t *testing.T) {
	cat := newTestCatalog()
	cat.ResolveIdentifierReturns("", context.DeadlineExceeded)
	cat.ResolveIdentifierStub = nil

	handler, _ := newTestServer(t, cat)

	resp := apiRequest(t, handler, http.MethodPost, "/v1/quiz", apiQuizRequest{
		Mode: quiz.ModeRandom,
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// TestAPIQuizCatalogUnavailable makes sure personal quizzes are not reported as
// having unknown artists when the catalog could not be reached.
func TestAPIQuizCatalogUnavailable(t *testing.T) {
	cat := newTestCatalog()
	cat.ResolveIdentifierStub = func(_ context.Context, name string) (string, error) {
		return "", fmt.Errorf("%w: %s: %w", catalog.ErrNotFound, name, catalog.ErrTimeout)
	}

	handler, _ := newTestServer(t, cat)

	resp := apiRequest(t, handler, http.MethodPost, "/v1/quiz", apiQuizRequest{
		Mode:    quiz.ModePersonal,
		Artists: []string{"Oasis"},
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
