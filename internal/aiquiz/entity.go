package aiquiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/skillverse-api/internal/quiz"
)

var errMalformedDraft = errors.New("malformed draft")

// Draft is one question as the model writes it.
type Draft struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
}

type DraftRequest struct {
	Count      int    `json:"count" validate:"omitempty,min=1,max=10"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Notes      string `json:"notes" validate:"max=1000"`
}

type DraftResponse struct {
	ModuleID  uint                 `json:"module_id"`
	Questions []quiz.QuestionInput `json:"questions"`
	Discarded int                  `json:"discarded"`
}

// toInput turns a draft into a quiz question, stripping "A) " style labels
// the model tends to add.
func (d Draft) toInput() (quiz.QuestionInput, error) {
	if len(d.Options) != len(quiz.AllOptions) {
		return quiz.QuestionInput{}, fmt.Errorf("%w: %d options", errMalformedDraft, len(d.Options))
	}
	opts := make([]string, len(d.Options))
	for i, o := range d.Options {
		opts[i] = stripLabel(o, quiz.AllOptions[i])
	}
	return quiz.QuestionInput{
		Question:      strings.TrimSpace(d.Question),
		OptionA:       opts[0],
		OptionB:       opts[1],
		OptionC:       opts[2],
		OptionD:       opts[3],
		CorrectOption: strings.ToUpper(strings.TrimSpace(d.CorrectOption)),
	}, nil
}

func stripLabel(s string, o quiz.Option) string {
	s = strings.TrimSpace(s)
	for _, sep := range []string{")", ".", ":"} {
		if rest, ok := strings.CutPrefix(s, string(o)+sep); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}
