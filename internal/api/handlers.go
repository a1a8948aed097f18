package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/talentgrid/matcher/internal/domain/models"
	"github.com/talentgrid/matcher/internal/events"
	"github.com/talentgrid/matcher/internal/logger"
	"github.com/talentgrid/matcher/internal/metrics"
)

type matchService interface {
	ComputeMatches(ctx context.Context, talentID int64, filters models.MatchFilters) ([]models.MatchResult, error)
}

type jobWriter interface {
	Add(ctx context.Context, job *models.JobPosting) error
}

type talentWriter interface {
	Add(ctx context.Context, talent *models.Talent) error
}

type Handlers struct {
	matches  matchService
	jobs     jobWriter
	talents  talentWriter
	bus      EventBus.Bus
	validate *validator.Validate
}

func NewHandlers(matches matchService, jobs jobWriter, talents talentWriter, bus EventBus.Bus) *Handlers {
	return &Handlers{
		matches:  matches,
		jobs:     jobs,
		talents:  talents,
		bus:      bus,
		validate: validator.New(),
	}
}

// matchQuery is the wire form of models.MatchFilters.
type matchQuery struct {
	Skills          string   `validate:"omitempty"`
	MinRate         *float64 `validate:"omitempty,gte=0"`
	MaxRate         *float64 `validate:"omitempty,gte=0"`
	Timezone        string
	ContractType    string
	Category        string
	ExperienceLevel string
}

func (q matchQuery) toFilters() models.MatchFilters {
	filters := models.MatchFilters{
		MinRate:         q.MinRate,
		MaxRate:         q.MaxRate,
		Timezone:        q.Timezone,
		ContractType:    q.ContractType,
		Category:        q.Category,
		ExperienceLevel: q.ExperienceLevel,
	}
	if q.Skills != "" {
		filters.Skills = strings.Split(q.Skills, ",")
	}
	return filters
}

type matchResponse struct {
	Job           jobResponse `json:"job"`
	Score         int         `json:"score"`
	OverlapSkills []string    `json:"overlapSkills"`
}

type jobResponse struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Skills          []string `json:"skills"`
	Category        string   `json:"category,omitempty"`
	ContractType    string   `json:"contractType,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	HourlyRateMin   *float64 `json:"hourlyRateMin,omitempty"`
	HourlyRateMax   *float64 `json:"hourlyRateMax,omitempty"`
}

func (h *Handlers) GetMatches(w http.ResponseWriter, r *http.Request) {

	talentID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, "matches", http.StatusBadRequest, "invalid talent id")
		return
	}

	query, err := parseMatchQuery(r)
	if err != nil {
		h.writeError(w, "matches", http.StatusBadRequest, err.Error())
		return
	}
	if err = h.validate.Struct(query); err != nil {
		h.writeError(w, "matches", http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.matches.ComputeMatches(r.Context(), talentID, query.toFilters())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to compute matches for talent %v: %v", talentID, err)
		h.writeError(w, "matches", http.StatusInternalServerError, "internal error")
		return
	}

	response := make([]matchResponse, 0, len(results))
	for _, result := range results {
		response = append(response, toMatchResponse(result))
	}
	h.writeJSON(w, "matches", http.StatusOK, response)
}

type jobRequest struct {
	Title           string   `json:"title" validate:"required"`
	Skills          []string `json:"skills"`
	Category        string   `json:"category"`
	ContractType    string   `json:"contractType"`
	ExperienceLevel string   `json:"experienceLevel"`
	Budget          *float64 `json:"budget" validate:"omitempty,gte=0"`
	HourlyRateMin   *float64 `json:"hourlyRateMin" validate:"omitempty,gte=0"`
	HourlyRateMax   *float64 `json:"hourlyRateMax" validate:"omitempty,gte=0"`
}

func (h *Handlers) AddJob(w http.ResponseWriter, r *http.Request) {

	var request jobRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "jobs", http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(request); err != nil {
		h.writeError(w, "jobs", http.StatusBadRequest, err.Error())
		return
	}
	if request.HourlyRateMin != nil && request.HourlyRateMax != nil &&
		*request.HourlyRateMax < *request.HourlyRateMin {
		h.writeError(w, "jobs", http.StatusBadRequest, "hourly rate band is inverted")
		return
	}

	job := models.NewJobPosting(request.Title, request.Skills)
	job.Category = request.Category
	job.ContractType = request.ContractType
	job.ExperienceLevel = request.ExperienceLevel
	job.Budget = request.Budget
	job.HourlyRateMin = request.HourlyRateMin
	job.HourlyRateMax = request.HourlyRateMax

	if err := h.jobs.Add(r.Context(), job); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to add job: %v", err)
		h.writeError(w, "jobs", http.StatusInternalServerError, "internal error")
		return
	}

	// the fresh posting must surface in match lists before any cache TTL expires
	h.bus.Publish(events.JobsChangedTopic, events.JobsChanged{AddedCount: 1})

	h.writeJSON(w, "jobs", http.StatusCreated, map[string]int64{"id": job.ID})
}

type talentRequest struct {
	Name       string   `json:"name" validate:"required"`
	Skills     []string `json:"skills"`
	HourlyRate *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	Timezone   string   `json:"timezone"`
}

func (h *Handlers) AddTalent(w http.ResponseWriter, r *http.Request) {

	var request talentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "talents", http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(request); err != nil {
		h.writeError(w, "talents", http.StatusBadRequest, err.Error())
		return
	}

	talent := models.NewTalent(request.Name, request.Skills, request.HourlyRate, request.Timezone)
	if err := h.talents.Add(r.Context(), talent); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to add talent: %v", err)
		h.writeError(w, "talents", http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, "talents", http.StatusCreated, map[string]int64{"id": talent.ID})
}

func parseMatchQuery(r *http.Request) (matchQuery, error) {

	values := r.URL.Query()
	query := matchQuery{
		Skills:          values.Get("skills"),
		Timezone:        values.Get("timezone"),
		ContractType:    values.Get("contractType"),
		Category:        values.Get("category"),
		ExperienceLevel: values.Get("experienceLevel"),
	}

	var err error
	if query.MinRate, err = parseRate(values.Get("minRate")); err != nil {
		return query, err
	}
	query.MaxRate, err = parseRate(values.Get("maxRate"))
	return query, err
}

func parseRate(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("rate bounds must be numeric")
	}
	return &rate, nil
}

func toMatchResponse(result models.MatchResult) matchResponse {
	overlap := result.OverlapSkills
	if overlap == nil {
		overlap = []string{}
	}
	return matchResponse{
		Job: jobResponse{
			ID:              result.Job.ID,
			Title:           result.Job.Title,
			Skills:          result.Job.SkillsAsArray(),
			Category:        result.Job.Category,
			ContractType:    result.Job.ContractType,
			ExperienceLevel: result.Job.ExperienceLevel,
			HourlyRateMin:   result.Job.HourlyRateMin,
			HourlyRateMax:   result.Job.HourlyRateMax,
		},
		Score:         result.Score,
		OverlapSkills: overlap,
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, handler string, code int, payload any) {
	metrics.HTTPRequestsCounter.WithLabelValues(handler, strconv.Itoa(code)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, handler string, code int, message string) {
	h.writeJSON(w, handler, code, map[string]string{"error": message})
}
