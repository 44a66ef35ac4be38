package quiz

import (
	"errors"
	"fmt"
)

// PassingScore is the fraction of correct answers needed to complete a module.
const PassingScore = 0.7

var ErrUnknownQuestion = errors.New("answer refers to a question outside this quiz")

type Answer struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type Result struct {
	Score     int     `json:"score"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
	Passed    bool    `json:"passed"`
	Incorrect []uint  `json:"incorrect,omitempty"`
}

// Grade scores answers against questions. Every answer is validated before
// anything is counted; unanswered questions count as wrong. A quiz with no
// questions always passes.
func Grade(questions []*QuizQuestion, answers []Answer) (Result, error) {
	byID := make(map[uint]*QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	given := make(map[uint]Option, len(answers))
	for _, a := range answers {
		opt, err := ParseOption(a.Answer)
		if err != nil {
			return Result{}, fmt.Errorf("question %d: %w", a.QuestionID, err)
		}
		if _, ok := byID[a.QuestionID]; !ok {
			return Result{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, a.QuestionID)
		}
		given[a.QuestionID] = opt
	}

	res := Result{Total: len(questions)}
	for _, q := range questions {
		if given[q.ID] == q.CorrectOption {
			res.Score++
		} else {
			res.Incorrect = append(res.Incorrect, q.ID)
		}
	}

	if res.Total == 0 {
		res.Percent = 100
		res.Passed = true
		return res, nil
	}
	ratio := float64(res.Score) / float64(res.Total)
	res.Percent = ratio * 100
	res.Passed = ratio >= PassingScore
	return res, nil
}
