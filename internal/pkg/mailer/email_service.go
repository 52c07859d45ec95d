package mailer

import (
	"fmt"
	"net/mail"

	"gopkg.in/gomail.v2"
)

type Message struct {
	To       string
	Subject  string
	HTMLBody string
	// ReplyTo is optional; invalid addresses fall back to the support
	// address before the message goes out.
	ReplyTo string
}

type IEmailService interface {
	// Configured reports whether SMTP credentials are present. Callers
	// record unconfigured sends as skipped instead of failed.
	Configured() bool
	Send(msg Message) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	supportEmail string
	configured   bool
}

func NewEmailService(host string, port int, username, password, senderEmail, supportEmail string) IEmailService {
	configured := host != "" && username != "" && password != ""
	var d *gomail.Dialer
	if configured {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		supportEmail: supportEmail,
		configured:   configured,
	}
}

func (s *emailService) Configured() bool {
	return s.configured
}

func (s *emailService) Send(msg Message) error {
	if !s.configured {
		return fmt.Errorf("smtp is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Reply-To", s.replyTo(msg.ReplyTo))
	m.SetBody("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}

func (s *emailService) replyTo(requested string) string {
	if requested != "" {
		if _, err := mail.ParseAddress(requested); err == nil {
			return requested
		}
	}
	return s.supportEmail
}
