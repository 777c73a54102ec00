package repository

import (
	"database/sql"

	"github.com/jinwf531135-cmd/bi-leads/internal/models"
)

// LeadRepository defines the interface for lead data access
type LeadRepository interface {
	// Create persists a new lead as a single-row insert and assigns its id.
	Create(lead *models.Lead) error

	// GetAll retrieves leads matching the filter, most recent first.
	GetAll(filter LeadFilter) ([]models.Lead, error)

	// Delete removes a lead by id. Deleting a missing id is a no-op, not an
	// error.
	Delete(id int64) error
}

// LeadFilter defines the optional predicates for querying leads. A nil or
// zero value means "no constraint on that field"; both predicates combine
// with AND when set.
type LeadFilter struct {
	MinScore *int   `json:"min_score,omitempty"`
	Source   string `json:"source,omitempty"`
}

// dbExecutor abstracts *sql.DB so repositories can run against transactions
// too if that ever becomes necessary.
type dbExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
