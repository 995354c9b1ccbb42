package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"apnrghor-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed EmailService. An empty API key
// disables sending; calls become logged no-ops so local runs work without
// credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendAgreementAccepted(ctx context.Context, email, name, apartmentNo, blockName string) error {
	subject := "Your apartment agreement has been accepted"
	body := fmt.Sprintf("Hello %s,\n\nYour agreement request for apartment %s (block %s) has been accepted. You are now a member.\n\nBest regards,\nThe ApnrGhor Team", name, apartmentNo, blockName)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendAgreementRejected(ctx context.Context, email, name string) error {
	subject := "Your apartment agreement request"
	body := fmt.Sprintf("Hello %s,\n\nYour agreement request was not accepted. The apartment is available again for new applications.\n\nBest regards,\nThe ApnrGhor Team", name)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "Send", "to", to)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
