package mail

import (
	"portal/config"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers plaintext mail through an authenticated relay (STARTTLS when offered)
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	senderName string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword),
		from:       cfg.MailUsername,
		senderName: cfg.MailSender,
	}
}

func (m *SMTPMailer) Message(to, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return msg
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	return m.dialer.DialAndSend(m.Message(to, subject, body))
}
