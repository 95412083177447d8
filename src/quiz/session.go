package quiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pborman/uuid"
)

// Mode is the way in which the artists of a quiz were chosen.
type Mode string

// All the supported quiz modes.
const (
	ModeRandom   Mode = "random"
	ModePersonal Mode = "personal"
)

var (
	// ErrNoSuchQuestion is returned when answering a question which is not part
	// of the session.
	ErrNoSuchQuestion = errors.New("no such question")

	// ErrNotAnOption is returned when the answer is not one of the question
	// options.
	ErrNotAnOption = errors.New("answer is not one of the options")
)

// Session is a single quiz being taken. It is created when the user starts a
// quiz, answered question by question and finally scored.
type Session struct {
	// ID identifies the session in a SessionStore.
	ID string `json:"id"`

	// Mode is the way the artists were chosen for this quiz.
	Mode Mode `json:"mode"`

	// Questions are always exactly QuestionsPerQuiz.
	Questions []Question `json:"questions"`

	// Answers holds the user answer for the question at the same position. An
	// empty string means the question has not been answered yet.
	Answers []string `json:"answers"`

	// Created is the time at which the quiz was started.
	Created time.Time `json:"created"`
}

// NewSession returns a session for the given questions with a newly generated ID
// and no answers.
func NewSession(mode Mode, questions []Question) (*Session, error) {
	if len(questions) != QuestionsPerQuiz {
		return nil, fmt.Errorf(
			"a quiz needs %d questions but got %d",
			QuestionsPerQuiz,
			len(questions),
		)
	}

	for i, question := range questions {
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return &Session{
		ID:        uuid.New(),
		Mode:      mode,
		Questions: slices.Clone(questions),
		Answers:   make([]string, len(questions)),
		Created:   time.Now(),
	}, nil
}

// Answer records `answer` for the question at index `i`. Indexes start from 0.
// The answer must be one of the question options.
func (s *Session) Answer(i int, answer string) error {
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("%w: %d", ErrNoSuchQuestion, i+1)
	}

	if !slices.Contains(s.Questions[i].Options, answer) {
		return fmt.Errorf("%w: %q", ErrNotAnOption, answer)
	}

	s.Answers[i] = answer
	return nil
}

// Score returns the number of correctly answered questions. Questions without an
// answer are never correct.
func (s *Session) Score() int {
	var score int

	for i, question := range s.Questions {
		if i >= len(s.Answers) || s.Answers[i] == "" {
			continue
		}
		if s.Answers[i] == question.Correct {
			score++
		}
	}

	return score
}

// Cheatsheet returns the correct answers of all questions in order.
func (s *Session) Cheatsheet() []string {
	correct := make([]string, 0, len(s.Questions))
	for _, question := range s.Questions {
		correct = append(correct, question.Correct)
	}
	return correct
}

// clone returns a deep copy of the session.
func (s *Session) clone() *Session {
	cloned := *s
	cloned.Questions = make([]Question, 0, len(s.Questions))
	for _, question := range s.Questions {
		question.Options = slices.Clone(question.Options)
		cloned.Questions = append(cloned.Questions, question)
	}
	cloned.Answers = slices.Clone(s.Answers)
	return &cloned
}

// NewRandomSession generates a quiz in random mode.
func (g *Generator) NewRandomSession(ctx context.Context) (*Session, error) {
	questions := make([]Question, 0, QuestionsPerQuiz)

	for i := 0; i < QuestionsPerQuiz; i++ {
		question, err := g.RandomQuestion(ctx)
		if err != nil {
			return nil, fmt.Errorf("generating question %d: %w", i+1, err)
		}
		questions = append(questions, question)
	}

	return NewSession(ModeRandom, questions)
}

// NewPersonalSession generates a quiz in personal mode about the artists in
// `names`. The names are normalized with NormalizeArtists first. No session is
// returned when any of the artists could not be used.
func (g *Generator) NewPersonalSession(
	ctx context.Context,
	names []string,
) (*Session, error) {
	artists, err := g.NormalizeArtists(names)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, QuestionsPerQuiz)
	for _, artist := range artists {
		question, err := g.PersonalQuestion(ctx, artist)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return NewSession(ModePersonal, questions)
}
