package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cortexa-ai/backend/internal/model"
	"github.com/cortexa-ai/backend/internal/repository"
	"github.com/cortexa-ai/backend/pkg/mail"
)

// notifyTimeout bounds the email dispatch so a slow provider cannot
// hang the request.
const notifyTimeout = 10 * time.Second

// submissionServiceImpl is the production implementation of
// SubmissionService.
type submissionServiceImpl struct {
	repo   repository.SubmissionRepository
	mailer mail.Client
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository and mail client.
func NewSubmissionService(repo repository.SubmissionRepository, mailer mail.Client) SubmissionService {
	return &submissionServiceImpl{repo: repo, mailer: mailer}
}

// Submit persists the submission and then attempts the notification.
// Storage failures propagate; notification failures are logged and
// swallowed (the row is already durable and is never rolled back).
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	sub.Status = "new"
	if err := s.repo.Save(ctx, sub); err != nil {
		return err
	}

	nctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := s.mailer.Notify(nctx, sub); err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			slog.Info("notification skipped: mailer not configured",
				"submission_id", sub.ID)
		} else {
			slog.Warn("notification failed",
				"submission_id", sub.ID, "error", err)
		}
	}
	return nil
}
