package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) error
		in    string
		ok    bool
	}{
		{"name", ValidateName, "Ada Lovelace", true},
		{"name trimmed", ValidateName, "  Al  ", true},
		{"name too short", ValidateName, "A", false},
		{"name digits", ValidateName, "R2D2", false},
		{"email", ValidateEmail, "ada@example.com", true},
		{"email no tld", ValidateEmail, "ada@example", false},
		{"email spaces", ValidateEmail, "ada lovelace@example.com", false},
		{"phone empty", ValidatePhone, "   ", true},
		{"phone plain", ValidatePhone, "+1234567890", true},
		{"phone us", ValidatePhone, "(123) 456-7890", true},
		{"phone dashed", ValidatePhone, "123-456-7890", true},
		{"phone letters", ValidatePhone, "call me", false},
		{"subject", ValidateSubject, "Hey", true},
		{"subject short", ValidateSubject, " Hi ", false},
		{"message", ValidateMessage, "Hello there!", true},
		{"message short", ValidateMessage, "Too short", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.in)
			if (err == nil) != tt.ok {
				t.Errorf("check(%q) = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func validMessage() Message {
	return Message{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Engines",
		Message: "Please tell me more about the analytical engine.",
	}
}

func TestMessageValidate(t *testing.T) {
	if err := validMessage().Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	m := validMessage()
	m.Email = "nope"
	m.Message = "short"
	err := m.Validate()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("Validate() = %v, want FieldErrors", err)
	}
	if len(fe) != 2 || !errors.Is(fe[FieldEmail], ErrEmail) || !errors.Is(fe[FieldMessage], ErrMessage) {
		t.Errorf("field errors = %v", fe)
	}
	if first, _ := fe.First(); first != FieldEmail {
		t.Errorf("First() = %q, want email", first)
	}
	if !strings.HasPrefix(fe.Error(), "email:") {
		t.Errorf("Error() = %q, want fields in display order", fe.Error())
	}
}

func TestLimitAndCounter(t *testing.T) {
	long := strings.Repeat("é", MaxMessageLength+20)
	if got := Limit(long); len([]rune(got)) != MaxMessageLength {
		t.Errorf("Limit kept %d runes, want %d", len([]rune(got)), MaxMessageLength)
	}
	if Limit("hi") != "hi" {
		t.Error("Limit changed a short message")
	}

	text, warn := Counter("hello")
	if text != "5 / 500 characters" || warn {
		t.Errorf("Counter(hello) = %q, %v", text, warn)
	}
	if _, warn := Counter(strings.Repeat("x", 451)); !warn {
		t.Error("451 characters should warn")
	}
	if _, warn := Counter(strings.Repeat("x", 450)); warn {
		t.Error("450 characters should not warn")
	}
}

func TestSubmit(t *testing.T) {
	s := &Submitter{Delay: 10 * time.Millisecond}
	if err := s.Submit(context.Background(), validMessage()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.Sending() {
		t.Error("Sending() = true after Submit returned")
	}
}

func TestSubmitInvalid(t *testing.T) {
	s := NewSubmitter()
	var fe FieldErrors
	if err := s.Submit(context.Background(), Message{}); !errors.As(err, &fe) {
		t.Errorf("Submit(empty) = %v, want FieldErrors", err)
	}
}

func TestSubmitBusy(t *testing.T) {
	s := &Submitter{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Submit(ctx, validMessage()) }()

	deadline := time.Now().Add(time.Second)
	for !s.Sending() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := s.Submit(context.Background(), validMessage()); !errors.Is(err, ErrBusy) {
		t.Errorf("second Submit = %v, want ErrBusy", err)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled Submit = %v, want context.Canceled", err)
	}
}
