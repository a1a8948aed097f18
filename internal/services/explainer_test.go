package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/talentgrid/matcher/internal/domain/models"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func Test_ExplainMatch_SanitizesResponse(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(" **This job needs your React experience.** \n", nil).Once()

	explainer := NewMatchExplainer(ai)

	explanation, err := explainer.ExplainMatch(context.Background(), []string{"React"},
		models.MatchResult{
			Job:           *models.NewJobPosting("frontend", []string{"React"}),
			Score:         78,
			OverlapSkills: []string{"React"},
		})

	assert.NoError(t, err)
	assert.Equal(t, "This job needs your React experience.", explanation)
	ai.AssertExpectations(t)
}

func Test_ExplainMatch_PropagatesClientError(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))

	explainer := NewMatchExplainer(ai)

	_, err := explainer.ExplainMatch(context.Background(), []string{"Go"}, models.MatchResult{})
	assert.Error(t, err)
}
