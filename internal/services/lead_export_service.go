package services

import (
	"encoding/json"
	"strconv"
	"strings"

	apperrors "github.com/jinwf531135-cmd/bi-leads/internal/errors"
	"github.com/jinwf531135-cmd/bi-leads/internal/models"
	"github.com/jinwf531135-cmd/bi-leads/internal/repository"
)

// ExportFormat specifies the output format for lead exports
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// csvHeader is the fixed export column order. Downstream spreadsheets key on
// these names; do not reorder.
var csvHeader = []string{"id", "name", "phone", "city", "source", "intent", "message", "score", "created_at"}

// LeadExportService produces full-table dumps for download
type LeadExportService struct {
	repo repository.LeadRepository
}

// NewLeadExportService creates a new lead export service
func NewLeadExportService(repo repository.LeadRepository) *LeadExportService {
	return &LeadExportService{repo: repo}
}

// ExportAll dumps every lead, most recent first, serialized in the requested
// format.
func (s *LeadExportService) ExportAll(format ExportFormat) ([]byte, error) {
	leads, err := s.repo.GetAll(repository.LeadFilter{})
	if err != nil {
		return nil, apperrors.DatabaseError("failed to export leads", err)
	}

	switch format {
	case FormatJSON:
		return s.exportJSON(leads)
	default:
		return s.exportCSV(leads), nil
	}
}

// exportCSV renders the always-quote CSV dialect the admin tooling expects:
// a bare header row, then every field double-quoted with embedded quotes
// doubled, empty values as "".
func (s *LeadExportService) exportCSV(leads []models.Lead) []byte {
	lines := make([]string, 0, len(leads)+1)
	lines = append(lines, strings.Join(csvHeader, ","))

	for _, lead := range leads {
		fields := []string{
			strconv.FormatInt(lead.ID, 10),
			lead.Name,
			lead.Phone,
			lead.City,
			lead.Source,
			lead.Intent,
			lead.Message,
			strconv.Itoa(lead.Score),
			lead.CreatedAt,
		}
		quoted := make([]string, len(fields))
		for i, field := range fields {
			quoted[i] = quoteField(field)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}

func (s *LeadExportService) exportJSON(leads []models.Lead) ([]byte, error) {
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return nil, apperrors.InternalError("failed to marshal leads", err)
	}
	return data, nil
}

// quoteField wraps a value in double quotes unconditionally, doubling any
// embedded quote characters.
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
