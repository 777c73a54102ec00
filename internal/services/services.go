package services

import (
	"database/sql"

	"github.com/jinwf531135-cmd/bi-leads/internal/logger"
	"github.com/jinwf531135-cmd/bi-leads/internal/models"
	"github.com/jinwf531135-cmd/bi-leads/internal/repository"
	"github.com/jinwf531135-cmd/bi-leads/internal/scoring"
)

// Services contains all application services
type Services struct {
	Lead   LeadService
	Export *LeadExportService
}

// LeadService defines the interface for lead business logic
type LeadService interface {
	// Submit scores the submission, stamps created_at and persists the lead.
	Submit(form *models.LeadSubmission) (*models.Lead, error)

	// List returns leads matching the filter, most recent first.
	List(filter repository.LeadFilter) ([]models.Lead, error)

	// Delete removes a lead by id; unknown ids succeed silently.
	Delete(id int64) error

	// Stats aggregates score and source statistics over matching leads.
	Stats(filter repository.LeadFilter) (*LeadStats, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB) *Services {
	repo := repository.NewLeadRepository(db)
	engine := scoring.NewEngine(scoring.DefaultRules())
	log := logger.NewSimpleLogger()

	return &Services{
		Lead:   NewLeadService(repo, engine, log),
		Export: NewLeadExportService(repo),
	}
}
