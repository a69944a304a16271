package contact

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
)

// SMTPConfig holds the mail relay settings.
type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

// SMTP mails each message to the site owner.
type SMTP struct {
	Config SMTPConfig

	// send is smtp.SendMail outside of tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{Config: cfg, send: smtp.SendMail}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	cfg := s.Config
	if cfg.User == "" || cfg.Pass == "" {
		return ErrSMTPNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	err := s.send(cfg.Host+":"+cfg.Port, auth, cfg.User, []string{cfg.To}, composeMail(cfg, msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return errors.Wrap(err, "failed to send contact email")
	}

	log.Printf("Email sent successfully from %s (%s)", msg.Name, msg.Email)
	return nil
}

func composeMail(cfg SMTPConfig, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe drops line breaks so user input cannot add mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
