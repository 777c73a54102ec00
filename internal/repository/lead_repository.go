package repository

import (
	"fmt"
	"strings"

	"github.com/jinwf531135-cmd/bi-leads/internal/models"
)

// leadRepository implements LeadRepository over SQLite
type leadRepository struct {
	db dbExecutor
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db dbExecutor) LeadRepository {
	return &leadRepository{db: db}
}

// Create inserts the lead and assigns the next id. The insert is a single
// atomic row; no partial state survives a failure.
func (r *leadRepository) Create(lead *models.Lead) error {
	query := `
		INSERT INTO leads (name, phone, city, source, intent, message, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		lead.Name, lead.Phone, lead.City, lead.Source,
		lead.Intent, lead.Message, lead.Score, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get lead id: %w", err)
	}
	lead.ID = id

	return nil
}

// GetAll retrieves leads ordered by created_at descending. Rows sharing a
// created_at value have unspecified relative order. No matches yields an
// empty slice, not an error.
func (r *leadRepository) GetAll(filter LeadFilter) ([]models.Lead, error) {
	query := `
		SELECT id, name, phone, city, source, intent, message, score, created_at
		FROM leads
	`

	var whereClauses []string
	var args []interface{}

	if filter.MinScore != nil {
		whereClauses = append(whereClauses, "score >= ?")
		args = append(args, *filter.MinScore)
	}

	if filter.Source != "" {
		whereClauses = append(whereClauses, "source = ?")
		args = append(args, filter.Source)
	}

	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		var lead models.Lead
		err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Phone, &lead.City, &lead.Source,
			&lead.Intent, &lead.Message, &lead.Score, &lead.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, nil
}

// Delete removes the lead with the given id. A missing id reports the same
// success as a real delete; zero rows affected is not a failure here.
func (r *leadRepository) Delete(id int64) error {
	query := `DELETE FROM leads WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}
