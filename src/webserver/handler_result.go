package webserver

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/ironsmile/musicmustard/src/quiz"
)

type resultContent struct {
	Score int
	OutOf int
}

// NewResultHandler returns the handler for the quiz result page. The score is
// taken from the signed token in the "token" query value.
func NewResultHandler(tpl *template.Template, secret []byte) http.Handler {
	return WithInternalError(func(w http.ResponseWriter, r *http.Request) error {
		data := newPageData(r, "Quiz Result", nil)

		token := r.URL.Query().Get("token")
		if token == "" {
			data.Warning = notTakenMessage
			return renderPage(w, tpl, http.StatusOK, data)
		}

		score, err := verifyResult(secret, token, time.Now())
		if err != nil {
			log.Printf("bad result token: %s", err)
			data.Warning = notTakenMessage
			return renderPage(w, tpl, http.StatusBadRequest, data)
		}

		data.Content = resultContent{
			Score: score,
			OutOf: quiz.QuestionsPerQuiz,
		}
		return renderPage(w, tpl, http.StatusOK, data)
	})
}

const notTakenMessage = "You haven't taken the quiz yet. Take a quiz to see your result."
