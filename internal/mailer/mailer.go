// Package mailer forwards contact-form submissions through the Resend
// transactional email API.
package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ContactMessage is a validated contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Mailer delivers a contact message. Handlers depend on this interface;
// tests use a stub.
type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg ContactMessage) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Nová zpráva z kontaktního formuláře - %s", msg.Name),
		Html:    renderHTML(msg),
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

func renderHTML(msg ContactMessage) string {
	var b strings.Builder
	b.WriteString("<h2>Nová zpráva z kontaktního formuláře</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Jméno:</strong> %s</p>\n", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(msg.Email))
	if msg.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Telefon:</strong> %s</p>\n", html.EscapeString(msg.Phone))
	}
	b.WriteString("<p><strong>Zpráva:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return b.String()
}
