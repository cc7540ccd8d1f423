// Package contact delivers the contact form to the site owner.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalid       = errors.New("contact: required field missing")
	ErrInFlight      = errors.New("contact: submission already in progress")
	ErrNotConfigured = errors.New("contact: delivery provider not configured")
)

// Message is what the visitor typed. All three fields are required; the email is not
// format-checked beyond what the browser does.
type Message struct {
	Name  string `form:"name" json:"name" validate:"required"`
	Email string `form:"email" json:"email" validate:"required"`
	Body  string `form:"message" json:"message" validate:"required"`
}

var validate = validator.New()

// Validate reports which required fields are empty. The error wraps ErrInvalid.
func (m Message) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
}

// Empty reports whether every field is blank.
func (m Message) Empty() bool {
	return m.Name == "" && m.Email == "" && m.Body == ""
}

// Provider hands a message to an external delivery service.
type Provider interface {
	Deliver(ctx context.Context, msg Message) error
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, msg Message) error

func (f ProviderFunc) Deliver(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
