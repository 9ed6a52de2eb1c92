// Package mail provides the SMTP mail extension. The factory constructs it
// from config; no route currently sends mail, the binding exists so the
// configuration surface is in place.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/nbportal/portal/internal/config"
)

// Mailer sends plain-text mail over SMTP. A disabled mailer swallows sends.
type Mailer struct {
	enabled  bool
	addr     string
	sender   string
	username string
	password string
	host     string

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New builds a mailer from the mail config.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		enabled:  cfg.Enabled,
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		sender:   cfg.Sender,
		username: cfg.Username,
		password: cfg.Password,
		host:     cfg.Host,
		send:     smtp.SendMail,
	}
}

// Enabled reports whether sends will actually dial the SMTP host.
func (m *Mailer) Enabled() bool { return m.enabled }

// Send delivers a plain-text message to the recipients. Disabled mailers
// return nil without dialing.
func (m *Mailer) Send(ctx context.Context, to []string, subject, body string) error {
	if !m.enabled {
		return nil
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	msg := buildMessage(m.sender, to, subject, body)
	if err := m.send(m.addr, auth, m.sender, to, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
