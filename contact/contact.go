// Package contact validates the contact form and simulates sending it.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// MaxMessageLength caps the message field, in characters.
	MaxMessageLength = 500
	// DefaultSubmitDelay is how long a simulated submission takes.
	DefaultSubmitDelay = 1500 * time.Millisecond
	// SuccessDisplay is how long the success notice stays visible.
	SuccessDisplay = 5 * time.Second
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]{2,}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\+]?[(]?[0-9]{1,4}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,9}$`)
)

var (
	ErrName    = errors.New("please enter a valid name")
	ErrEmail   = errors.New("please enter a valid email address")
	ErrPhone   = errors.New("please enter a valid phone number")
	ErrSubject = errors.New("subject must be at least 3 characters")
	ErrMessage = errors.New("message must be at least 10 characters")

	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("a submission is already in progress")
)

// ValidateName accepts two or more letters and spaces.
func ValidateName(s string) error {
	if !nameRe.MatchString(strings.TrimSpace(s)) {
		return ErrName
	}
	return nil
}

// ValidateEmail accepts anything shaped like local@domain.tld.
func ValidateEmail(s string) error {
	if !emailRe.MatchString(strings.TrimSpace(s)) {
		return ErrEmail
	}
	return nil
}

// ValidatePhone accepts an empty value or a loosely formatted number such
// as +1234567890, (123) 456-7890 or 123-456-7890.
func ValidatePhone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !phoneRe.MatchString(s) {
		return ErrPhone
	}
	return nil
}

func ValidateSubject(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 3 {
		return ErrSubject
	}
	return nil
}

func ValidateMessage(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 10 {
		return ErrMessage
	}
	return nil
}

// Field names a form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// Validator returns the check for f.
func Validator(f Field) func(string) error {
	switch f {
	case FieldName:
		return ValidateName
	case FieldEmail:
		return ValidateEmail
	case FieldPhone:
		return ValidatePhone
	case FieldSubject:
		return ValidateSubject
	case FieldMessage:
		return ValidateMessage
	}
	return func(string) error { return nil }
}

// Message is a filled-in contact form.
type Message struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (m Message) value(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	case FieldPhone:
		return m.Phone
	case FieldSubject:
		return m.Subject
	case FieldMessage:
		return m.Message
	}
	return ""
}

// FieldErrors maps each invalid field to its error.
type FieldErrors map[Field]error

func (fe FieldErrors) Error() string {
	var parts []string
	for _, f := range Fields {
		if err, ok := fe[f]; ok {
			parts = append(parts, fmt.Sprintf("%s: %v", f, err))
		}
	}
	return strings.Join(parts, "; ")
}

// First returns the first invalid field in display order.
func (fe FieldErrors) First() (Field, bool) {
	for _, f := range Fields {
		if _, ok := fe[f]; ok {
			return f, true
		}
	}
	return "", false
}

// Validate checks every field. It returns nil or a FieldErrors.
func (m Message) Validate() error {
	fe := FieldErrors{}
	for _, f := range Fields {
		if err := Validator(f)(m.value(f)); err != nil {
			fe[f] = err
		}
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Limit truncates s to MaxMessageLength characters.
func Limit(s string) string {
	if utf8.RuneCountInString(s) <= MaxMessageLength {
		return s
	}
	return string([]rune(s)[:MaxMessageLength])
}

// Counter renders the character counter for s and reports whether the
// length is close to the limit.
func Counter(s string) (string, bool) {
	n := utf8.RuneCountInString(s)
	return fmt.Sprintf("%d / %d characters", n, MaxMessageLength), n > MaxMessageLength*9/10
}

// Submitter simulates sending the form. Only one submission may be in
// flight at a time.
type Submitter struct {
	Delay time.Duration

	mu      sync.Mutex
	sending bool
}

// NewSubmitter returns a Submitter with the default delay.
func NewSubmitter() *Submitter {
	return &Submitter{Delay: DefaultSubmitDelay}
}

// Sending reports whether a submission is in flight.
func (s *Submitter) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Submit validates m and waits the simulated delay. It returns ErrBusy if
// another submission is running, a FieldErrors if m is invalid, or the
// context error if ctx ends first.
func (s *Submitter) Submit(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.sending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.sending = false
		s.mu.Unlock()
	}()

	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("submitting contact form: %w", ctx.Err())
	case <-t.C:
	}

	log.Printf("Contact form submitted: name=%q email=%q subject=%q", m.Name, m.Email, m.Subject)
	return nil
}
