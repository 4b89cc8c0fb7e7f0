package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"

	"github.com/herbarium/herbarium-backend/internal/config"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.APIKey),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
	}
}

// SendForgotPasswordCode delivers a one-time recovery code. No retries:
// the caller decides what a failed delivery means.
func (s *EmailService) SendForgotPasswordCode(to string, code string) error {
	html := fmt.Sprintf(`
		<h1>Password recovery</h1>
		<p>Your recovery code is: <strong>%s</strong></p>
		<p>The code is valid until a new one is requested.</p>
	`, code)

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Password recovery code",
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send recovery code: %w", err)
	}
	return nil
}
