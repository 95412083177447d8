package webserver

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ironsmile/musicmustard/src/quiz"
)

// quizContent is the content of the quiz page. When Questions is empty the page
// shows the form for starting a new quiz.
type quizContent struct {
	Mode      quiz.Mode
	Artists   string
	Questions []quizQuestion
}

type quizQuestion struct {
	Number  int
	Artist  string
	Options []string
	Answer  string
}

// quizHandlers serves all pages used for taking a quiz in the browser. The quiz
// session ID is kept in a cookie.
type quizHandlers struct {
	quizTpl       *template.Template
	cheatsheetTpl *template.Template
	generator     *quiz.Generator
	sessions      quiz.SessionStore
	sessionTTL    time.Duration
	secret        []byte
}

// activeSession returns the session for the cookie in `r`. It returns nil without
// an error when there is no such session.
func (h *quizHandlers) activeSession(r *http.Request) (*quiz.Session, error) {
	id := sessionIDFromCookie(r)
	if id == "" {
		return nil, nil
	}

	session, err := h.sessions.Get(r.Context(), id)
	if errors.Is(err, quiz.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting quiz session: %w", err)
	}

	return session, nil
}

// page shows either the quiz questions or the form for starting one.
func (h *quizHandlers) page(w http.ResponseWriter, r *http.Request) error {
	session, err := h.activeSession(r)
	if err != nil {
		return err
	}

	content := quizContent{Mode: quiz.ModeRandom}
	if session == nil {
		if sessionIDFromCookie(r) != "" {
			clearSessionCookie(w)
		}
	} else {
		content = quizContentFor(session)
	}

	return renderPage(w, h.quizTpl, http.StatusOK, newPageData(r, "Quiz Time", content))
}

// start generates a new quiz from the mode selection form.
func (h *quizHandlers) start(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Bad form: %s", err), http.StatusBadRequest)
		return nil
	}

	mode := quiz.Mode(r.PostForm.Get("mode"))
	artists := r.PostForm.Get("artists")

	session, err := newSession(r.Context(), h.generator, mode, quiz.ParseArtistList(artists))
	if err != nil {
		status, message, ok := quizErrorResponse(err)
		if !ok {
			return err
		}

		log.Printf("could not start %s quiz: %s", mode, err)
		data := newPageData(r, "Quiz Time", quizContent{
			Mode:    mode,
			Artists: artists,
		})
		data.Warning = message
		return renderPage(w, h.quizTpl, status, data)
	}

	if err := h.sessions.Save(r.Context(), session); err != nil {
		return fmt.Errorf("saving quiz session: %w", err)
	}

	setSessionCookie(w, r, session.ID, h.sessionTTL)
	http.Redirect(w, r, "/quiz/", http.StatusSeeOther)
	return nil
}

// submit records the answers from the questions form, scores the quiz and sends
// the user to the result page.
func (h *quizHandlers) submit(w http.ResponseWriter, r *http.Request) error {
	session, err := h.activeSession(r)
	if err != nil {
		return err
	}
	if session == nil {
		http.Redirect(w, r, "/quiz/", http.StatusSeeOther)
		return nil
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Bad form: %s", err), http.StatusBadRequest)
		return nil
	}

	for i := range session.Questions {
		answer := r.PostForm.Get(fmt.Sprintf("q%d", i+1))
		if answer == "" {
			continue
		}
		if err := session.Answer(i, answer); err != nil {
			data := newPageData(r, "Quiz Time", quizContentFor(session))
			data.Warning = fmt.Sprintf("Question %d: %s.", i+1, err)
			return renderPage(w, h.quizTpl, http.StatusBadRequest, data)
		}
	}

	score := session.Score()
	if err := h.sessions.Delete(r.Context(), session.ID); err != nil {
		return fmt.Errorf("deleting quiz session: %w", err)
	}
	clearSessionCookie(w)

	token, err := signResult(h.secret, score, time.Now())
	if err != nil {
		return err
	}

	http.Redirect(w, r, "/result/?token="+url.QueryEscape(token), http.StatusSeeOther)
	return nil
}

// cheatsheet shows the correct answers of the active quiz.
func (h *quizHandlers) cheatsheet(w http.ResponseWriter, r *http.Request) error {
	session, err := h.activeSession(r)
	if err != nil {
		return err
	}
	if session == nil {
		http.Redirect(w, r, "/quiz/", http.StatusSeeOther)
		return nil
	}

	data := newPageData(r, "Cheatsheet", session.Cheatsheet())
	return renderPage(w, h.cheatsheetTpl, http.StatusOK, data)
}

// reset throws away the active quiz.
func (h *quizHandlers) reset(w http.ResponseWriter, r *http.Request) error {
	if id := sessionIDFromCookie(r); id != "" {
		if err := h.sessions.Delete(r.Context(), id); err != nil {
			return fmt.Errorf("deleting quiz session: %w", err)
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/quiz/", http.StatusSeeOther)
	return nil
}

func quizContentFor(session *quiz.Session) quizContent {
	content := quizContent{Mode: session.Mode}
	for i, question := range session.Questions {
		content.Questions = append(content.Questions, quizQuestion{
			Number:  i + 1,
			Artist:  question.Artist,
			Options: question.Options,
			Answer:  session.Answers[i],
		})
	}
	return content
}
