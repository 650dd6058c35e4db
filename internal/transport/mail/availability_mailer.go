package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type AvailabilityMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	useTLS   bool
	send     func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

func NewAvailabilityMailer(host, port, username, password, from string, useTLS bool) *AvailabilityMailer {
	m := &AvailabilityMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		useTLS:   useTLS,
	}
	m.send = smtp.SendMail
	if m.useTLS {
		m.send = m.sendTLS
	}
	return m
}

// SendAvailabilityRequest mails the activity's office on behalf of the spotter.
// Replies go straight to the spotter.
func (m *AvailabilityMailer) SendAvailabilityRequest(ctx context.Context, to string, request domain.AvailabilityRequest) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return m.send(addr, auth, m.from, []string{to}, buildAvailabilityMessage(m.from, to, request))
}

func buildAvailabilityMessage(from, to string, request domain.AvailabilityRequest) []byte {
	subject := fmt.Sprintf("Availability request: %s", request.Activity.Name)
	body := fmt.Sprintf(
		"Hello,\n\n%s (%s) would like to know whether \"%s\" is available on %s.\n\nPlease reply to this email to answer.\n",
		request.Spotter.Username,
		request.Spotter.Email,
		request.Activity.Name,
		request.Date.Format("Monday 2 January 2006"),
	)

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	if request.Spotter.Email != "" {
		message.WriteString(fmt.Sprintf("Reply-To: %s\r\n", request.Spotter.Email))
	}
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	message.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(message.String())
}

// sendTLS is smtp.SendMail over an implicit TLS connection (port 465).
func (m *AvailabilityMailer) sendTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12})
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
