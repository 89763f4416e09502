// Package waitlist validates and submits the signup form.
package waitlist

import (
	"errors"
	"regexp"
	"strings"
)

// User-facing messages.
const (
	MsgRequired     = "Complete required fields and try again"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSubmitFailed = "Unable to submit form. Please try again or contact support if the problem persists."
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrHandleRequired = errors.New("handle is required")
	ErrEmailRequired  = errors.New("email is required")
	ErrInvalidEmail   = errors.New("email is not valid")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Entry is one waitlist signup.
type Entry struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Email  string `json:"email"`
}

// Field names an Entry field.
type Field int

const (
	FieldName Field = iota
	FieldHandle
	FieldEmail
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldHandle, FieldEmail}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldHandle:
		return "handle"
	case FieldEmail:
		return "email"
	}
	return "unknown"
}

// Get returns the value of field f.
func (e Entry) Get(f Field) string {
	switch f {
	case FieldName:
		return e.Name
	case FieldHandle:
		return e.Handle
	case FieldEmail:
		return e.Email
	}
	return ""
}

// Set stores v in field f.
func (e *Entry) Set(f Field, v string) {
	switch f {
	case FieldName:
		e.Name = v
	case FieldHandle:
		e.Handle = v
	case FieldEmail:
		e.Email = v
	}
}

// ValidationError reports the fields that failed validation.
type ValidationError struct {
	Fields []Field
	Errs   []error
	// Message is what the form shows.
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return "waitlist: " + strings.Join(parts, ", ")
}

// Unwrap exposes the per-field sentinels to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return e.Errs
}

// Has reports whether f failed.
func (e *ValidationError) Has(f Field) bool {
	for _, x := range e.Fields {
		if x == f {
			return true
		}
	}
	return false
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks that every field is filled in and, only then, that the
// email is well formed. It returns a *ValidationError or nil.
func Validate(e Entry) error {
	required := []struct {
		field Field
		err   error
	}{
		{FieldName, ErrNameRequired},
		{FieldHandle, ErrHandleRequired},
		{FieldEmail, ErrEmailRequired},
	}
	verr := &ValidationError{Message: MsgRequired}
	for _, r := range required {
		if strings.TrimSpace(e.Get(r.field)) == "" {
			verr.Fields = append(verr.Fields, r.field)
			verr.Errs = append(verr.Errs, r.err)
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	if !ValidEmail(e.Email) {
		return &ValidationError{
			Fields:  []Field{FieldEmail},
			Errs:    []error{ErrInvalidEmail},
			Message: MsgInvalidEmail,
		}
	}
	return nil
}
