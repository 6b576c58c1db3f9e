// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Expenso"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueDueDateReminderEmail queues a payment due date reminder. Overdue
// obligations get the overdue template instead.
func (s *Service) QueueDueDateReminderEmail(ctx context.Context, input adapter.QueueDueDateReminderInput) error {
	template := entity.TemplateDueDateReminder
	subject := fmt.Sprintf("%s payment due %s - Expenso", input.ObligationType, input.DueDate)
	if input.DaysRemaining < 0 {
		template = entity.TemplateOverdueNotice
		subject = fmt.Sprintf("%s payment overdue - Expenso", input.ObligationType)
	}

	templateData := map[string]interface{}{
		"user_name":       input.UserName,
		"obligation_type": input.ObligationType,
		"amount":          input.Amount,
		"due_date":        input.DueDate,
		"days_remaining":  input.DaysRemaining,
		"records_url":     fmt.Sprintf("%s/records", s.appBaseURL),
	}

	job := entity.NewEmailJob(
		template,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue due date reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
