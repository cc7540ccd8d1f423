package contact

import (
	"context"
	"sync"
	"time"
)

// Notices shown to the visitor.
const (
	SuccessNotice = "Thank you for your message! I'll get back to you soon."
	FailureNotice = "Sorry, there was an error sending your message. Please try again later."
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 15 * time.Second

// Status of a form.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	case StatusFailed:
		return "failed"
	}
	return "idle"
}

// Form is one contact form instance. Only one submission may be in flight at a time.
type Form struct {
	provider Provider
	timeout  time.Duration

	mu     sync.Mutex
	fields Message
	status Status
	err    error
}

// NewForm returns an empty form delivering through p. A non-positive timeout uses DefaultTimeout.
func NewForm(p Provider, timeout time.Duration) *Form {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Form{provider: p, timeout: timeout}
}

// Set replaces the field values.
func (f *Form) Set(msg Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = msg
}

// Fields returns the current field values.
func (f *Form) Fields() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns where the form is in its submit cycle.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Err returns the last delivery error. It is for logs, never for the visitor.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Sending reports whether the submit control should be disabled.
func (f *Form) Sending() bool {
	return f.Status() == StatusSending
}

// Notice is the message to show after a submission, empty otherwise.
func (f *Form) Notice() string {
	switch f.Status() {
	case StatusSent:
		return SuccessNotice
	case StatusFailed:
		return FailureNotice
	}
	return ""
}

// Submit delivers the current fields once. Invalid fields are rejected before the provider
// is called. On success the fields are cleared; on failure they are kept for a retry.
// The returned error is ErrInFlight, a wrapped ErrInvalid, or the delivery error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSending {
		f.mu.Unlock()
		return ErrInFlight
	}
	msg := f.fields
	if err := msg.Validate(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.status = StatusSending
	f.err = nil
	f.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	err := f.provider.Deliver(ctx, msg)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusFailed
		f.err = err
		return err
	}
	f.status = StatusSent
	f.fields = Message{}
	return nil
}
