// Package email provides alert email delivery via Resend.
package email

import (
	"context"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueAlertEmail queues a spending alert notification.
func (s *Service) QueueAlertEmail(ctx context.Context, input adapter.QueueAlertEmailInput) error {
	job := entity.NewEmailJob(
		input.UserEmail,
		input.UserName,
		input.Subject,
		input.AlertMessages,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue alert email",
			err,
		)
	}

	return nil
}

// Ensure Service satisfies the application interface.
var _ adapter.EmailService = (*Service)(nil)
