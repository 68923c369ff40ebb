package model

import "time"

// ContactSubmission represents one entry accepted via the contact form.
// Submissions are immutable once created: there is no update or delete
// path anywhere in the backend. Status and Notes exist as workflow
// columns for manual triage in the database and are never read back by
// the API.
type ContactSubmission struct {
	// ID and CreatedAt are assigned by the database at insert time.
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
