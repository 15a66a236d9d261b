// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueAlertEmailInput represents the input for queueing a spending alert email.
type QueueAlertEmailInput struct {
	UserEmail     string
	UserName      string
	Subject       string
	AlertMessages []string
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueAlertEmail queues a spending alert notification.
	QueueAlertEmail(ctx context.Context, input QueueAlertEmailInput) error
}
