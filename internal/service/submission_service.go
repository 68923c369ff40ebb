package service

import (
	"context"

	"github.com/cortexa-ai/backend/internal/model"
)

// SubmissionService defines the business logic for contact-form
// submissions: persist, then attempt a best-effort notification.
type SubmissionService interface {
	// Submit stores a new submission; sub.ID and sub.CreatedAt are
	// populated on success. A notification attempt follows the insert
	// but its outcome never affects the returned error: losing a lead
	// over an email outage is worse than a missed notification.
	Submit(ctx context.Context, sub *model.ContactSubmission) error
}
