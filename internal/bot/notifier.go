// Package bot pushes freshly computed matches to talents over telegram.
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/talentgrid/matcher/internal/domain/models"
	"github.com/talentgrid/matcher/internal/events"
	"github.com/talentgrid/matcher/internal/logger"
)

type talentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Talent, error)
}

type matchExplainer interface {
	ExplainMatch(ctx context.Context, talentSkills []string, result models.MatchResult) (string, error)
}

type Notifier struct {
	api       *botApi.BotAPI
	bus       EventBus.Bus
	talents   talentRepository
	explainer matchExplainer // nil when AI explanations are disabled
}

func NewNotifier(token string, bus EventBus.Bus, talents talentRepository,
	explainer matchExplainer) (*Notifier, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("notifier authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if talents == nil {
		return nil, errors.New("talent repository is nil")
	}

	notifier := &Notifier{api: api, bus: bus, talents: talents, explainer: explainer}

	err = bus.SubscribeAsync(events.MatchesComputedTopic, notifier.onMatchesComputed, false)
	if err != nil {
		return nil, err
	}
	return notifier, nil
}

func (n *Notifier) Stop() {
	n.bus.Unsubscribe(events.MatchesComputedTopic, n.onMatchesComputed)
}

func (n *Notifier) onMatchesComputed(event events.MatchesComputed) {

	if len(event.Results) == 0 {
		return
	}

	talent, err := n.talents.GetByID(context.Background(), event.TalentID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load talent %v for notification: %v", event.TalentID, err)
		return
	}
	if talent == nil || talent.ChatID == 0 {
		return
	}

	message := botApi.NewMessage(talent.ChatID, n.formatDigest(talent, event.Results))
	if _, err = n.api.Send(message); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("failed to notify talent %v: %v", event.TalentID, err)
	}
}

func (n *Notifier) formatDigest(talent *models.Talent, results []models.MatchResult) string {

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Top job matches for you (%d):\n", len(results)))

	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, result.Job.Title))
		if len(result.OverlapSkills) > 0 {
			sb.WriteString(" - matching skills: " + strings.Join(result.OverlapSkills, ", "))
		}
		sb.WriteString("\n")

		if n.explainer != nil {
			explanation, err := n.explainer.ExplainMatch(context.Background(), talent.SkillsAsArray(), result)
			if err == nil && explanation != "" {
				sb.WriteString("   " + explanation + "\n")
			}
		}
	}
	return sb.String()
}
