package services

import (
	"time"

	apperrors "github.com/jinwf531135-cmd/bi-leads/internal/errors"
	"github.com/jinwf531135-cmd/bi-leads/internal/logger"
	"github.com/jinwf531135-cmd/bi-leads/internal/models"
	"github.com/jinwf531135-cmd/bi-leads/internal/repository"
	"github.com/jinwf531135-cmd/bi-leads/internal/scoring"
)

// leadService implements LeadService
type leadService struct {
	repo   repository.LeadRepository
	engine *scoring.Engine
	log    logger.Logger
}

// NewLeadService creates a new lead service backed by the given repository
// and scoring engine.
func NewLeadService(repo repository.LeadRepository, engine *scoring.Engine, log logger.Logger) LeadService {
	return &leadService{
		repo:   repo,
		engine: engine,
		log:    log,
	}
}

// Submit scores the submission once, stamps created_at and persists the
// resulting lead. The score is never recomputed afterwards.
func (s *leadService) Submit(form *models.LeadSubmission) (*models.Lead, error) {
	lead := &models.Lead{
		Name:      form.Name,
		Phone:     form.Phone,
		City:      form.City,
		Source:    form.Source,
		Intent:    form.Intent,
		Message:   form.Message,
		Score:     s.engine.Score(form.Phone, form.City, form.Intent, form.Message),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Create(lead); err != nil {
		s.log.Error("failed to save lead", err, "source", lead.Source)
		return nil, apperrors.DatabaseError("failed to save lead", err)
	}

	s.log.Info("lead captured", "id", lead.ID, "score", lead.Score, "source", lead.Source)
	return lead, nil
}

// List returns leads matching the filter, ordered by created_at descending.
func (s *leadService) List(filter repository.LeadFilter) ([]models.Lead, error) {
	leads, err := s.repo.GetAll(filter)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list leads", err)
	}
	return leads, nil
}

// Delete removes a lead by id. Deleting an id that was never assigned, or
// was already deleted, succeeds the same way as deleting a live row.
func (s *leadService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return apperrors.DatabaseError("failed to delete lead", err)
	}
	s.log.Info("lead deleted", "id", id)
	return nil
}

// LeadStats summarizes the leads matching a filter for the admin view.
type LeadStats struct {
	TotalLeads         int            `json:"total_leads"`
	AverageScore       float64        `json:"average_score"`
	MinScore           int            `json:"min_score"`
	MaxScore           int            `json:"max_score"`
	SourceDistribution map[string]int `json:"source_distribution"`
}

// Stats aggregates score and source statistics over the matching leads.
func (s *leadService) Stats(filter repository.LeadFilter) (*LeadStats, error) {
	leads, err := s.repo.GetAll(filter)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to get lead statistics", err)
	}

	stats := &LeadStats{
		TotalLeads:         len(leads),
		SourceDistribution: make(map[string]int),
	}
	if len(leads) == 0 {
		return stats, nil
	}

	scoreSum := 0
	stats.MinScore = leads[0].Score
	stats.MaxScore = leads[0].Score
	for _, lead := range leads {
		scoreSum += lead.Score
		if lead.Score < stats.MinScore {
			stats.MinScore = lead.Score
		}
		if lead.Score > stats.MaxScore {
			stats.MaxScore = lead.Score
		}
		stats.SourceDistribution[lead.Source]++
	}
	stats.AverageScore = float64(scoreSum) / float64(len(leads))

	return stats, nil
}
