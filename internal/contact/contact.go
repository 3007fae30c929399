// Package contact turns contact form submissions into email.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// ErrNotConfigured is returned when the mail relay has no credentials.
	ErrNotConfigured = errors.New("contact: SMTP credentials not configured")
	// ErrNoRecipient is returned when there is nobody to deliver to.
	ErrNoRecipient = errors.New("contact: no recipient configured")
)

// Submission is the contact form as posted by the page.
type Submission struct {
	Name    string `form:"user_name" json:"user_name" binding:"required,max=200"`
	Email   string `form:"user_email" json:"user_email" binding:"required,email,max=254"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

// Message is a composed email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Bytes renders the message in RFC 5322 form.
func (m Message) Bytes() []byte {
	var b strings.Builder
	b.WriteString("To: " + m.To + "\r\n")
	b.WriteString("Subject: " + m.Subject + "\r\n")
	b.WriteString("From: " + m.From + "\r\n")
	if m.ReplyTo != "" {
		b.WriteString("Reply-To: " + m.ReplyTo + "\r\n")
	}
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// Compose builds the notification email for a submission.
func Compose(sub Submission, from, to string) Message {
	name := headerSafe(sub.Name)
	email := headerSafe(sub.Email)
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form`, name, email, strings.TrimSpace(sub.Message))

	return Message{
		From:    from,
		To:      to,
		ReplyTo: email,
		Subject: "Portfolio Contact: " + name,
		Body:    body,
	}
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	return strings.TrimSpace(s)
}

// Mailer delivers composed messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Sender validates and forwards submissions to a Mailer.
type Sender struct {
	mailer Mailer
	from   string
	to     string
	logger *zap.Logger
}

// NewSender creates a Sender delivering to the given address.
func NewSender(m Mailer, from, to string, logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{mailer: m, from: from, to: to, logger: logger}
}

// Submit composes and sends the submission.
func (s *Sender) Submit(ctx context.Context, sub Submission) error {
	if s.to == "" {
		return ErrNoRecipient
	}
	msg := Compose(sub, s.from, s.to)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("contact email failed", zap.Error(err))
		return fmt.Errorf("send contact email: %w", err)
	}
	s.logger.Info("contact email sent", zap.Int("message_bytes", len(sub.Message)))
	return nil
}

var fieldLabels = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Message": "message",
}

// Problems turns a binding error into messages fit for the form.
func Problems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"The form could not be read. Please try again."}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = strings.ToLower(fe.Field())
		}
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("Please enter your %s.", label))
		case "email":
			out = append(out, "Please enter a valid email address.")
		case "max":
			out = append(out, fmt.Sprintf("Your %s is too long.", label))
		default:
			out = append(out, fmt.Sprintf("Your %s is invalid.", label))
		}
	}
	return out
}
