package aiquiz

import (
	"context"
	"strings"
	"testing"

	"github.com/saulo-duarte/skillverse-api/internal/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	drafts []Draft
	user   string
}

func (p *stubProvider) SendPrompt(_ context.Context, _, user string) ([]Draft, error) {
	p.user = user
	return p.drafts, nil
}

type stubCourses struct {
	course.CourseService
	module *course.ModuleDetail
}

func (s stubCourses) GetModule(_ context.Context, id uint) (*course.ModuleDetail, error) {
	if s.module == nil || s.module.ID != id {
		return nil, course.ErrModuleNotFound
	}
	return s.module, nil
}

func TestDraftQuestionsKeepsValidDrafts(t *testing.T) {
	provider := &stubProvider{drafts: []Draft{
		{Question: "Which part of mint is used?", Options: []string{"A) Leaves", "B) Roots", "C) Seeds", "D) Bark"}, CorrectOption: "a"},
		{Question: "Too few options", Options: []string{"x", "y"}, CorrectOption: "A"},
		{Question: "Bad answer", Options: []string{"1", "2", "3", "4"}, CorrectOption: "E"},
	}}
	courses := stubCourses{module: &course.ModuleDetail{ID: 5, Name: "Mint", ScientificName: "Mentha", Description: "Aromatic herb"}}
	svc := NewService(provider, courses)

	res, err := svc.DraftQuestions(context.Background(), 5, DraftRequest{Count: 3, Notes: "focus on tea"})
	require.NoError(t, err)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, 2, res.Discarded)
	assert.Equal(t, "Leaves", res.Questions[0].OptionA)
	assert.Equal(t, "A", res.Questions[0].CorrectOption)

	assert.True(t, strings.Contains(provider.user, `"Mint"`))
	assert.True(t, strings.Contains(provider.user, "focus on tea"))
}

func TestDraftQuestionsErrors(t *testing.T) {
	svc := NewService(&stubProvider{}, stubCourses{})

	_, err := svc.DraftQuestions(context.Background(), 1, DraftRequest{Count: 50})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.DraftQuestions(context.Background(), 1, DraftRequest{})
	assert.ErrorIs(t, err, course.ErrModuleNotFound)

	svc = NewService(unavailable{}, stubCourses{module: &course.ModuleDetail{ID: 1}})
	_, err = svc.DraftQuestions(context.Background(), 1, DraftRequest{})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestParseDrafts(t *testing.T) {
	drafts, err := parseDrafts("```json\n[{\"question\":\"q\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correct_option\":\"B\"}]\n```")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "B", drafts[0].CorrectOption)

	_, err = parseDrafts("   ")
	assert.Error(t, err)
	_, err = parseDrafts("not json")
	assert.Error(t, err)
}
