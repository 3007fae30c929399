package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type recordingMailer struct {
	sent []Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestComposeStripsHeaderInjection(t *testing.T) {
	sub := Submission{
		Name:    "Mallory\r\nBcc: victim@example.com",
		Email:   "mallory@example.com\nX-Evil: 1",
		Message: "hello",
	}
	msg := Compose(sub, "relay@example.com", "owner@example.com")

	if strings.ContainsAny(msg.Subject, "\r\n") || strings.ContainsAny(msg.ReplyTo, "\r\n") {
		t.Fatalf("header values still contain line breaks: %q / %q", msg.Subject, msg.ReplyTo)
	}
	raw := string(msg.Bytes())
	if strings.Contains(raw, "\r\nBcc:") || strings.Contains(raw, "\r\nX-Evil:") {
		t.Fatalf("injected header reached the message:\n%s", raw)
	}
	if !strings.HasPrefix(raw, "To: owner@example.com\r\n") {
		t.Fatalf("unexpected message start:\n%s", raw)
	}
}

func TestComposeBody(t *testing.T) {
	msg := Compose(Submission{Name: "Ada", Email: "ada@example.com", Message: "Let's build\nsomething"}, "f@x", "t@x")
	if msg.Subject != "Portfolio Contact: Ada" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{"Name: Ada", "Email: ada@example.com", "Let's build\nsomething"} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.Body)
		}
	}
	if !strings.Contains(string(msg.Bytes()), "Let's build\r\nsomething") {
		t.Fatalf("expected CRLF line endings in the encoded body")
	}
}

func TestSenderSubmit(t *testing.T) {
	m := &recordingMailer{}
	s := NewSender(m, "relay@example.com", "owner@example.com", nil)

	if err := s.Submit(context.Background(), Submission{Name: "Ada", Email: "ada@example.com", Message: "hi"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(m.sent) != 1 || m.sent[0].To != "owner@example.com" || m.sent[0].ReplyTo != "ada@example.com" {
		t.Fatalf("unexpected sent messages %+v", m.sent)
	}
}

func TestSenderSubmitErrors(t *testing.T) {
	boom := errors.New("relay down")
	s := NewSender(&recordingMailer{err: boom}, "f", "t", nil)
	if err := s.Submit(context.Background(), Submission{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped mailer error, got %v", err)
	}

	s = NewSender(&recordingMailer{}, "f", "", nil)
	if err := s.Submit(context.Background(), Submission{}); !errors.Is(err, ErrNoRecipient) {
		t.Fatalf("expected ErrNoRecipient, got %v", err)
	}
}

func TestProblems(t *testing.T) {
	err := bindingValidator().Struct(Submission{Email: "not-an-email"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	got := strings.Join(Problems(err), " | ")
	for _, want := range []string{"Please enter your name.", "Please enter a valid email address.", "Please enter your message."} {
		if !strings.Contains(got, want) {
			t.Fatalf("problems %q missing %q", got, want)
		}
	}

	if p := Problems(errors.New("EOF")); len(p) != 1 {
		t.Fatalf("expected a generic problem, got %v", p)
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	sub := Submission{Name: "Ada", Email: "ada@example.com", Message: "hello"}
	if err := bindingValidator().Struct(sub); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
