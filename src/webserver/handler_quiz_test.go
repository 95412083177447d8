package webserver

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/ironsmile/musicmustard/src/assert"
	"github.com/ironsmile/musicmustard/src/quiz"
)

// TestQuizFlow takes a personal quiz the way a browser would: starting it,
// looking at the cheatsheet, answering and finally seeing the result.
func TestQuizFlow(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())
	b := newBrowser(t, handler)

	resp := b.get("/quiz/")
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp, "Select Quiz Mode:", `action="/quiz/start"`)

	resp = b.post("/quiz/start", url.Values{
		"mode":    {"personal"},
		"artists": {"Oasis, Blur"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/quiz/", resp.Result().Header.Get("Location"))

	sessionID := b.sessionID()
	if sessionID == "" {
		t.Fatalf("quiz session cookie was not set")
	}

	session, err := store.Get(context.Background(), sessionID)
	assert.NilErr(t, err, "getting the started session")
	assert.Equal(t, quiz.ModePersonal, session.Mode)
	assert.Equal(t, "Oasis", session.Questions[0].Artist)
	assert.Equal(t, "Blur", session.Questions[1].Artist)

	resp = b.get("/quiz/")
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp,
		"Question 1", "Question 3",
		"Oasis released:", "Blur released:",
		`action="/quiz/submit"`,
	)
	for _, option := range session.Questions[0].Options {
		expectBody(t, resp, `name="q1" value="`+option+`"`)
	}

	resp = b.get("/quiz/cheatsheet")
	assert.Equal(t, http.StatusOK, resp.Code)
	for _, question := range session.Questions {
		expectBody(t, resp, "Correct Answer: "+question.Correct)
	}

	wrong := wrongOption(t, session.Questions[2])
	resp = b.post("/quiz/submit", url.Values{
		"q1": {session.Questions[0].Correct},
		"q2": {session.Questions[1].Correct},
		"q3": {wrong},
	})
	assert.Equal(t, http.StatusSeeOther, resp.Code)

	location := resp.Result().Header.Get("Location")
	if !strings.HasPrefix(location, "/result/?token=") {
		t.Fatalf("unexpected redirect after submitting: %s", location)
	}

	assert.Equal(t, "", b.sessionID(), "session cookie after submitting")
	assert.Equal(t, 0, store.Len(), "sessions after submitting")

	resp = b.get(location)
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp,
		"Congratulations! You were correct in 2/3 questions!",
		"Your latest score is 2!",
	)

	resp = b.get("/quiz/cheatsheet")
	assert.Equal(t, http.StatusSeeOther, resp.Code, "cheatsheet without a quiz")
}

// TestQuizPartialSubmit makes sure unanswered questions count as wrong.
func TestQuizPartialSubmit(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())
	b := newBrowser(t, handler)

	resp := b.post("/quiz/start", url.Values{"mode": {"random"}})
	assert.Equal(t, http.StatusSeeOther, resp.Code)

	session, err := store.Get(context.Background(), b.sessionID())
	assert.NilErr(t, err)
	assert.Equal(t, quiz.ModeRandom, session.Mode)
	for _, question := range session.Questions {
		assert.Contains(t, testCurated, question.Artist, "random mode artist")
	}

	resp = b.post("/quiz/submit", url.Values{"q2": {session.Questions[1].Correct}})
	assert.Equal(t, http.StatusSeeOther, resp.Code)

	resp = b.get(resp.Result().Header.Get("Location"))
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp, "You were correct in 1/3 questions!")
}

// TestQuizSubmitInvalidAnswer checks that answers which are not among the options
// are rejected and the quiz could still be taken.
func TestQuizSubmitInvalidAnswer(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())
	b := newBrowser(t, handler)

	b.post("/quiz/start", url.Values{"mode": {"personal"}, "artists": {"Pulp"}})
	sessionID := b.sessionID()

	resp := b.post("/quiz/submit", url.Values{"q1": {"Not A Song"}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	expectBody(t, resp, "Question 1:", `action="/quiz/submit"`)

	_, err := store.Get(context.Background(), sessionID)
	assert.NilErr(t, err, "session is kept after a bad answer")
	assert.Equal(t, sessionID, b.sessionID())
}

// TestQuizStartErrors checks the warnings shown for quizzes which could not be
// started.
func TestQuizStartErrors(t *testing.T) {
	tests := []struct {
		desc     string
		form     url.Values
		status   int
		expected string
	}{
		{
			desc:     "no mode",
			form:     url.Values{},
			status:   http.StatusBadRequest,
			expected: "Please select a quiz mode.",
		},
		{
			desc:     "no artists",
			form:     url.Values{"mode": {"personal"}, "artists": {" "}},
			status:   http.StatusBadRequest,
			expected: "Please enter at least one artist.",
		},
		{
			desc:     "too many artists",
			form:     url.Values{"mode": {"personal"}, "artists": {"Oasis,Blur,Pulp,Radiohead"}},
			status:   http.StatusBadRequest,
			expected: "Please enter at most 3 artists.",
		},
		{
			desc:     "blank artist",
			form:     url.Values{"mode": {"personal"}, "artists": {"Oasis,,Blur"}},
			status:   http.StatusBadRequest,
			expected: "Artist names cannot be blank.",
		},
		{
			desc:     "unknown artist",
			form:     url.Values{"mode": {"personal"}, "artists": {"Oasis, Nobody"}},
			status:   http.StatusUnprocessableEntity,
			expected: "Name Detected! Please Try Again!",
		},
	}

	handler, store := newTestServer(t, newTestCatalog())

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			b := newBrowser(t, handler)
			resp := b.post("/quiz/start", test.form)

			assert.Equal(t, test.status, resp.Code)
			expectBody(t, resp, test.expected, `action="/quiz/start"`)
			assert.Equal(t, "", b.sessionID(), "session cookie")
			assert.Equal(t, 0, store.Len(), "stored sessions")
		})
	}
}

// TestQuizReset makes sure a started quiz could be thrown away.
func TestQuizReset(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())
	b := newBrowser(t, handler)

	b.post("/quiz/start", url.Values{"mode": {"random"}})
	assert.Equal(t, 1, store.Len())

	resp := b.post("/quiz/reset", url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "", b.sessionID())

	resp = b.get("/quiz/")
	expectBody(t, resp, "Select Quiz Mode:")
}

// TestQuizExpiredSession checks that the start form is shown again when the
// session from the cookie is no longer stored.
func TestQuizExpiredSession(t *testing.T) {
	handler, store := newTestServer(t, newTestCatalog())
	b := newBrowser(t, handler)

	b.post("/quiz/start", url.Values{"mode": {"random"}})
	assert.NilErr(t, store.Delete(context.Background(), b.sessionID()))

	resp := b.get("/quiz/")
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp, "Select Quiz Mode:")
	assert.Equal(t, "", b.sessionID(), "stale cookie is removed")

	resp = b.post("/quiz/submit", url.Values{"q1": {"anything"}})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/quiz/", resp.Result().Header.Get("Location"))
}

// TestResultPage checks the result page for missing, broken and valid tokens.
func TestResultPage(t *testing.T) {
	handler, _ := newTestServer(t, newTestCatalog())
	b := newBrowser(t, handler)

	resp := b.get("/result/")
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp, "taken the quiz yet. Take a quiz to see your result.")

	resp = b.get("/result/?token=not-a-token")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	expectBody(t, resp, "taken the quiz yet.")

	forged, err := signResult([]byte("some other secret"), 3, time.Now())
	assert.NilErr(t, err)
	resp = b.get("/result/?token=" + url.QueryEscape(forged))
	assert.Equal(t, http.StatusBadRequest, resp.Code, "token signed with another secret")

	token, err := signResult([]byte(testSecret), 0, time.Now())
	assert.NilErr(t, err)
	resp = b.get("/result/?token=" + url.QueryEscape(token))
	assert.Equal(t, http.StatusOK, resp.Code)
	expectBody(t, resp, "Your latest score is 0!")
	if strings.Contains(resp.Body.String(), "Congratulations") {
		t.Errorf("congratulations shown for zero score")
	}
}

func wrongOption(t *testing.T, question quiz.Question) string {
	t.Helper()

	idx := slices.IndexFunc(question.Options, func(option string) bool {
		return option != question.Correct
	})
	if idx < 0 {
		t.Fatalf("question without wrong options: %+v", question)
	}
	return question.Options[idx]
}
