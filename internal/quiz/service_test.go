package quiz

import (
	"context"
	"testing"

	"github.com/saulo-duarte/skillverse-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (QuizService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t, &QuizQuestion{})
	require.NoError(t, db.Exec(`CREATE TABLE modules (id INTEGER PRIMARY KEY, quiz_count INTEGER NOT NULL DEFAULT 0)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO modules (id) VALUES (1)`).Error)
	return NewService(db, NewRepository(db), nil), db
}

func validInput(correct string) QuestionInput {
	return QuestionInput{
		Question:      "Which part of chamomile is used for tea?",
		OptionA:       "Flowers",
		OptionB:       "Roots",
		OptionC:       "Bark",
		OptionD:       "Seeds",
		CorrectOption: correct,
	}
}

func quizCount(t *testing.T, db *gorm.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Raw(`SELECT quiz_count FROM modules WHERE id = 1`).Scan(&n).Error)
	return n
}

func TestAddQuestion(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	q, err := svc.AddQuestion(ctx, 1, validInput("A"))
	require.NoError(t, err)
	assert.NotZero(t, q.ID)
	assert.Equal(t, 1, quizCount(t, db))

	views, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Flowers", views[0].OptionA)
}

func TestAddQuestionRejectsInvalidOption(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	for _, opt := range []string{"E", "a", ""} {
		_, err := svc.AddQuestion(ctx, 1, validInput(opt))
		assert.ErrorIs(t, err, ErrInvalidOption, "option %q", opt)
	}
	assert.EqualValues(t, 0, testutil.Count(t, db, "quiz_questions"))
	assert.Equal(t, 0, quizCount(t, db))
}

func TestBeforeSaveBlocksInvalidOption(t *testing.T) {
	_, db := newTestService(t)

	err := db.Create(&QuizQuestion{ModuleID: 1, Question: "q", CorrectOption: "F"}).Error
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.EqualValues(t, 0, testutil.Count(t, db, "quiz_questions"))
}

func TestAddQuestionUnknownModule(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddQuestion(context.Background(), 99, validInput("B"))
	assert.ErrorIs(t, err, ErrModuleNotFound)

	_, err = svc.ListQuestions(context.Background(), 99)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestRemoveQuestion(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	q, err := svc.AddQuestion(ctx, 1, validInput("C"))
	require.NoError(t, err)

	require.NoError(t, svc.RemoveQuestion(ctx, q.ID))
	assert.Equal(t, 0, quizCount(t, db))
	assert.ErrorIs(t, svc.RemoveQuestion(ctx, q.ID), ErrQuestionNotFound)
}
