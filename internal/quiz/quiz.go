// Package quiz generates binary-to-decimal quiz questions and tracks the
// running score for a session.
package quiz

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Question is an immutable quiz question: a target byte value and its
// zero-padded 8-bit binary prompt. Questions are replaced, never mutated.
type Question struct {
	Answer int
	Prompt string
}

// Check reports whether the given answer matches.
func (q Question) Check(answer int) bool { return answer == q.Answer }

// Generator draws questions uniformly from [0, 255].
type Generator struct {
	r *rand.Rand
}

// NewGenerator creates a generator. A nil source gets a time-seeded one.
func NewGenerator(r *rand.Rand) *Generator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{r: r}
}

// Question draws a new question.
func (g *Generator) Question() Question {
	answer := g.r.Intn(256)
	return Question{
		Answer: answer,
		Prompt: fmt.Sprintf("%08b", answer),
	}
}

// Score is the running (correct, total) accumulator. It lives for the whole
// session; there is no reset.
type Score struct {
	Correct int
	Total   int
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

// AnswerError reports a submission that does not parse as an integer. Such
// submissions do not consume an attempt.
type AnswerError struct {
	Text string
	Err  error
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("quiz: %q is not a number", e.Text)
}

func (e *AnswerError) Unwrap() error { return e.Err }

// Result is the outcome of a counted submission.
type Result struct {
	Question Question
	Given    int
	Correct  bool
	Score    Score
}

// Session holds the outstanding question and the score accumulator. Asking a
// question replaces any outstanding one; a counted submission consumes it.
type Session struct {
	current *Question
	score   Score
}

// NewSession creates an empty session with a zero score.
func NewSession() *Session { return &Session{} }

// Ask sets the outstanding question, replacing any previous one.
func (s *Session) Ask(q Question) {
	s.current = &q
}

// Current returns the outstanding question, if any.
func (s *Session) Current() (Question, bool) {
	if s.current == nil {
		return Question{}, false
	}
	return *s.current, true
}

// Score returns the running score.
func (s *Session) Score() Score { return s.score }

// Submit checks the given answer text against the outstanding question.
//
// Text that does not parse as an integer returns an *AnswerError and leaves
// the question and score untouched, so the user can retry without losing an
// attempt. A parsed submission consumes the question and counts exactly once.
func (s *Session) Submit(text string) (Result, error) {
	if s.current == nil {
		return Result{}, fmt.Errorf("quiz: no outstanding question")
	}

	answer, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Result{}, &AnswerError{Text: text, Err: err}
	}

	q := *s.current
	s.current = nil
	s.score.Total++
	correct := q.Check(answer)
	if correct {
		s.score.Correct++
	}

	return Result{
		Question: q,
		Given:    answer,
		Correct:  correct,
		Score:    s.score,
	}, nil
}
