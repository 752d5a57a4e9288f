package contracts

import (
	"context"

	"jondonfit-service/internal/pkg/dto/requests"
)

// MailerService delivers transactional email synchronously over SMTP.
// Magic-link verification mail must go through SendVerificationEmail so a
// delivery failure can be reported to the caller.
type MailerService interface {
	SendVerificationEmail(ctx context.Context, to, token, mode, name string) error
	SendEmail(request *requests.EmailPayload) error
	ValidateEmail(email string) bool
}

// MailQueueService hands email payloads to the reminder queue for the
// mail worker to deliver out of band.
type MailQueueService interface {
	Publish(ctx context.Context, request *requests.EmailPayload) error
}
