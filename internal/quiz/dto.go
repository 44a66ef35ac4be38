package quiz

type QuestionInput struct {
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c" validate:"required"`
	OptionD       string `json:"option_d" validate:"required"`
	CorrectOption string `json:"correct_option" validate:"required,oneof=A B C D"`
}

func (in QuestionInput) ToEntity(moduleID uint) *QuizQuestion {
	return &QuizQuestion{
		ModuleID:      moduleID,
		Question:      in.Question,
		OptionA:       in.OptionA,
		OptionB:       in.OptionB,
		OptionC:       in.OptionC,
		OptionD:       in.OptionD,
		CorrectOption: Option(in.CorrectOption),
	}
}

// QuestionView is what learners see: no correct answer.
type QuestionView struct {
	ID       uint   `json:"id"`
	ModuleID uint   `json:"module_id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
}

func toView(q *QuizQuestion) QuestionView {
	return QuestionView{
		ID:       q.ID,
		ModuleID: q.ModuleID,
		Question: q.Question,
		OptionA:  q.OptionA,
		OptionB:  q.OptionB,
		OptionC:  q.OptionC,
		OptionD:  q.OptionD,
	}
}
