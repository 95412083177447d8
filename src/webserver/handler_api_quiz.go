package webserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ironsmile/musicmustard/src/quiz"
	"github.com/ironsmile/musicmustard/src/webserver/webutils"
)

// apiQuizHandlers implements the quiz part of the JSON API. Sessions are
// addressed by their ID in the URL instead of a cookie.
type apiQuizHandlers struct {
	generator *quiz.Generator
	sessions  quiz.SessionStore
	secret    []byte
}

type apiQuizRequest struct {
	Mode    quiz.Mode `json:"mode"`
	Artists []string  `json:"artists"`
}

type apiAnswerRequest struct {
	Answer string `json:"answer"`
}

// apiQuizSession is a session as seen by API clients. Correct answers are not
// part of it.
type apiQuizSession struct {
	ID        string        `json:"id"`
	Mode      quiz.Mode     `json:"mode"`
	Questions []apiQuestion `json:"questions"`
	Answers   []string      `json:"answers"`
	Created   time.Time     `json:"created"`
}

type apiQuestion struct {
	Artist  string   `json:"artist"`
	Options []string `json:"options"`
}

type apiScoreResponse struct {
	Score   int      `json:"score"`
	OutOf   int      `json:"out_of"`
	Correct []string `json:"correct"`
	Token   string   `json:"token"`
}

func newAPIQuizSession(session *quiz.Session) apiQuizSession {
	resp := apiQuizSession{
		ID:        session.ID,
		Mode:      session.Mode,
		Questions: make([]apiQuestion, 0, len(session.Questions)),
		Answers:   session.Answers,
		Created:   session.Created,
	}
	for _, question := range session.Questions {
		resp.Questions = append(resp.Questions, apiQuestion{
			Artist:  question.Artist,
			Options: question.Options,
		})
	}
	return resp
}

// create starts a new quiz.
func (h *apiQuizHandlers) create(w http.ResponseWriter, r *http.Request) {
	var reqBody apiQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("Error parsing JSON request: %s.", err),
			http.StatusBadRequest,
		)
		return
	}

	session, err := newSession(r.Context(), h.generator, reqBody.Mode, reqBody.Artists)
	if err != nil {
		status, message, ok := quizErrorResponse(err)
		if !ok {
			log.Printf("error generating quiz: %s", err)
			message = "Error generating quiz."
		} else if status != http.StatusBadRequest {
			message = fmt.Sprintf("%s (%s)", message, err)
		}
		webutils.JSONError(w, message, status)
		return
	}

	if err := h.sessions.Save(r.Context(), session); err != nil {
		log.Printf("error saving quiz session: %s", err)
		webutils.JSONError(w, "Error saving quiz session.", http.StatusInternalServerError)
		return
	}

	webutils.JSONResponse(w, newAPIQuizSession(session), http.StatusCreated)
}

// get returns the session from the URL.
func (h *apiQuizHandlers) get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	webutils.JSONResponse(w, newAPIQuizSession(session), http.StatusOK)
}

// discard deletes the session from the URL without scoring it.
func (h *apiQuizHandlers) discard(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Delete(r.Context(), session.ID); err != nil {
		log.Printf("error deleting quiz session: %s", err)
		webutils.JSONError(w, "Error deleting quiz session.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// answer records the answer of a single question. Questions are numbered from 1.
func (h *apiQuizHandlers) answer(w http.ResponseWriter, r *http.Request) {
	question, err := strconv.Atoi(mux.Vars(r)["question"])
	if err != nil {
		webutils.JSONError(w, "question must be a number", http.StatusBadRequest)
		return
	}

	var reqBody apiAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("Error parsing JSON request: %s.", err),
			http.StatusBadRequest,
		)
		return
	}

	session, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	err = session.Answer(question-1, reqBody.Answer)
	if errors.Is(err, quiz.ErrNoSuchQuestion) {
		webutils.JSONError(w, err.Error(), http.StatusNotFound)
		return
	} else if err != nil {
		webutils.JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.sessions.Save(r.Context(), session); err != nil {
		log.Printf("error saving quiz session: %s", err)
		webutils.JSONError(w, "Error saving quiz session.", http.StatusInternalServerError)
		return
	}

	webutils.JSONResponse(w, newAPIQuizSession(session), http.StatusOK)
}

// submit scores the session and deletes it. The response includes the correct
// answers and a token for the result page.
func (h *apiQuizHandlers) submit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	score := session.Score()
	token, err := signResult(h.secret, score, time.Now())
	if err != nil {
		log.Printf("error signing result: %s", err)
		webutils.JSONError(w, "Error signing result.", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Delete(r.Context(), session.ID); err != nil {
		log.Printf("error deleting quiz session: %s", err)
		webutils.JSONError(w, "Error deleting quiz session.", http.StatusInternalServerError)
		return
	}

	webutils.JSONResponse(w, apiScoreResponse{
		Score:   score,
		OutOf:   quiz.QuestionsPerQuiz,
		Correct: session.Cheatsheet(),
		Token:   token,
	}, http.StatusOK)
}

// sessionFromURL returns the session with the ID from the URL path. When it
// could not be found an error response is written and `ok` is false.
func (h *apiQuizHandlers) sessionFromURL(
	w http.ResponseWriter,
	r *http.Request,
) (*quiz.Session, bool) {
	id := mux.Vars(r)["sessionID"]

	session, err := h.sessions.Get(r.Context(), id)
	if errors.Is(err, quiz.ErrSessionNotFound) {
		webutils.JSONError(w, "quiz session not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Printf("error getting quiz session %s: %s", id, err)
		webutils.JSONError(w, "Error getting quiz session.", http.StatusInternalServerError)
		return nil, false
	}

	return session, true
}
