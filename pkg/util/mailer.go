package util

import (
	"log"
	"strconv"

	"github.com/go-mail/mail"
)

// EmailComposer describes a single outbound message.
type EmailComposer struct {
	To         string
	ToName     string
	Sender     string
	SenderName string
	Subject    string
	Body       string
}

// Mailer wraps an SMTP dialer. It is constructed once at process start
// and injected into whichever service needs to send mail; there is no
// package-level transport.
type Mailer struct {
	dialer *mail.Dialer
}

// NewMailer builds a mailer from SMTP_* environment variables.
func NewMailer() *Mailer {
	host := LoadEnvFor("SMTP_HOST")
	username := LoadEnvFor("SMTP_USERNAME")
	password := LoadEnvFor("SMTP_PASSWORD")
	port, err := strconv.Atoi(LoadEnvFor("SMTP_PORT"))
	if err != nil {
		port = 2525
	}

	return &Mailer{
		dialer: mail.NewDialer(host, port, username, password),
	}
}

// Send delivers one message over SMTP. Callers that treat delivery as
// fire-and-forget should log the returned error and move on.
func (m *Mailer) Send(msg EmailComposer) error {
	mm := mail.NewMessage()
	mm.SetAddressHeader("From", msg.Sender, msg.SenderName)
	mm.SetAddressHeader("To", msg.To, msg.ToName)
	mm.SetHeader("Subject", msg.Subject)
	mm.SetBody("text/html", msg.Body)

	if err := m.dialer.DialAndSend(mm); err != nil {
		log.Printf("mailer: send to %v failed: %v", msg.To, err)
		return err
	}

	return nil
}
