package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questions(correct ...Option) []*QuizQuestion {
	out := make([]*QuizQuestion, len(correct))
	for i, c := range correct {
		out[i] = &QuizQuestion{ID: uint(i + 1), CorrectOption: c}
	}
	return out
}

func TestParseOption(t *testing.T) {
	for _, s := range []string{"A", "B", "C", "D"} {
		o, err := ParseOption(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(o))
	}
	for _, s := range []string{"", "a", "E", "AB", " A"} {
		_, err := ParseOption(s)
		assert.ErrorIs(t, err, ErrInvalidOption, "input %q", s)
	}
}

func TestGrade(t *testing.T) {
	qs := questions(OptionA, OptionB, OptionC, OptionD)

	t.Run("AllCorrect", func(t *testing.T) {
		res, err := Grade(qs, []Answer{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Score)
		assert.True(t, res.Passed)
		assert.Empty(t, res.Incorrect)
	})

	t.Run("BelowThreshold", func(t *testing.T) {
		res, err := Grade(qs, []Answer{{1, "A"}, {2, "B"}, {3, "A"}, {4, "A"}})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Score)
		assert.False(t, res.Passed)
		assert.Equal(t, []uint{3, 4}, res.Incorrect)
	})

	t.Run("UnansweredCountsAsWrong", func(t *testing.T) {
		res, err := Grade(qs, []Answer{{1, "A"}, {2, "B"}, {3, "C"}})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Score)
		assert.InDelta(t, 75.0, res.Percent, 0.001)
		assert.True(t, res.Passed)
	})

	t.Run("InvalidOption", func(t *testing.T) {
		_, err := Grade(qs, []Answer{{1, "A"}, {2, "E"}})
		assert.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := Grade(qs, []Answer{{99, "A"}})
		assert.True(t, errors.Is(err, ErrUnknownQuestion))
	})

	t.Run("EmptyQuizPasses", func(t *testing.T) {
		res, err := Grade(nil, nil)
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.Equal(t, 0, res.Total)
	})
}
