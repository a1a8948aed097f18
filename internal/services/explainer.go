package services

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/talentgrid/matcher/internal/domain/models"
	"github.com/talentgrid/matcher/internal/logger"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

// MatchExplainer turns a scored match into a one-sentence, human-readable
// reason. It is strictly additive: callers must treat failures as "no
// explanation", never as a failed match.
type MatchExplainer struct {
	aiClient aiClient
}

func NewMatchExplainer(aiClient aiClient) *MatchExplainer {
	return &MatchExplainer{aiClient: aiClient}
}

func (e *MatchExplainer) ExplainMatch(ctx context.Context, talentSkills []string,
	result models.MatchResult) (string, error) {

	response, err := e.aiClient.GenerateResponse(ctx, explainRequest(talentSkills, result))
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("failed to explain match for job %v: %v", result.Job.ID, err)
		return "", err
	}

	return sanitizeExplanation(response), nil
}

func explainRequest(talentSkills []string, result models.MatchResult) (request string) {

	request = "Job title: " + result.Job.Title
	if len(result.Job.SkillsAsArray()) != 0 {
		request += " Required skills: " + result.Job.Skills
	}

	request += " Freelancer skills: " + strings.Join(talentSkills, ", ")
	if len(result.OverlapSkills) != 0 {
		request += " Overlapping skills: " + strings.Join(result.OverlapSkills, ", ")
	}

	request += " You are explaining job recommendations in a talent marketplace. " +
		"In one short sentence, tell the freelancer why this job was recommended to them. " +
		"Do not mention scores or internal mechanics."
	return request
}

func sanitizeExplanation(response string) string {
	response = strings.ReplaceAll(response, "*", "")
	return strings.TrimSpace(response)
}
