package models

// Lead represents a single captured form submission. Leads are immutable
// after creation; the only mutation the system supports is deletion.
type Lead struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Source    string `json:"source"`
	Intent    string `json:"intent"`
	Message   string `json:"message"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"` // ISO-8601 text, stamped at creation
}

// LeadSubmission carries the raw form fields of an inbound lead before it is
// scored and persisted. Every field is optional; no validation is enforced.
type LeadSubmission struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	City    string `json:"city" form:"city"`
	Source  string `json:"source" form:"source"`
	Intent  string `json:"intent" form:"intent"`
	Message string `json:"message" form:"message"`
}
