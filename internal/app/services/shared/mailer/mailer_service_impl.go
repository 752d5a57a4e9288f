package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"regexp"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/drivers/mailer"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/exceptions"
)

type mailerService struct {
	Client         *mailer.SMTPClient
	FrontendDomain string
}

func NewMailerService(client *mailer.SMTPClient, internalConfig *config.InternalConfig) contracts.MailerService {
	return &mailerService{
		Client:         client,
		FrontendDomain: internalConfig.App.FrontendDomain,
	}
}

// SendVerificationEmail blocks until the SMTP server accepts the message.
// The caller relies on the error to tell the user their link never arrived.
func (svc *mailerService) SendVerificationEmail(ctx context.Context, to, token, mode, name string) error {
	verifyURL := fmt.Sprintf("%s/auth/verify?token=%s", svc.FrontendDomain, token)

	subject := constvars.EmailVerifyLoginSubject
	body := fmt.Sprintf(constvars.EmailBodyVerifyLogin, verifyURL)
	if mode == constvars.MagicLinkModeRegister {
		subject = constvars.EmailVerifyRegisterSubject
		body = fmt.Sprintf(constvars.EmailBodyVerifyRegister, name, verifyURL)
	}

	return svc.SendEmail(&requests.EmailPayload{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

func (svc *mailerService) SendEmail(request *requests.EmailPayload) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, request.To, request.Subject, request.Body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{request.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func (svc *mailerService) ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
