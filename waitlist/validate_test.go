package waitlist

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		entry      Entry
		wantFields []Field
		wantErr    error
		wantMsg    string
	}{
		{
			name:       "missing name",
			entry:      Entry{Name: "", Handle: "x", Email: "a@b.com"},
			wantFields: []Field{FieldName},
			wantErr:    ErrNameRequired,
			wantMsg:    MsgRequired,
		},
		{
			name:       "malformed email",
			entry:      Entry{Name: "A", Handle: "@b", Email: "not-an-email"},
			wantFields: []Field{FieldEmail},
			wantErr:    ErrInvalidEmail,
			wantMsg:    MsgInvalidEmail,
		},
		{
			name:  "valid",
			entry: Entry{Name: "A", Handle: "@b", Email: "a@b.com"},
		},
		{
			name:       "whitespace only counts as empty",
			entry:      Entry{Name: "  ", Handle: "\t", Email: "a@b.com"},
			wantFields: []Field{FieldName, FieldHandle},
			wantErr:    ErrHandleRequired,
			wantMsg:    MsgRequired,
		},
		{
			name:       "required check wins over format",
			entry:      Entry{Name: "", Handle: "h", Email: "bad"},
			wantFields: []Field{FieldName},
			wantErr:    ErrNameRequired,
			wantMsg:    MsgRequired,
		},
		{
			name:       "all empty",
			entry:      Entry{},
			wantFields: []Field{FieldName, FieldHandle, FieldEmail},
			wantErr:    ErrEmailRequired,
			wantMsg:    MsgRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entry)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantErr)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", verr.Message, tt.wantMsg)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if !verr.Has(f) {
					t.Errorf("field %v not reported", f)
				}
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"a@b", false},
		{"@b.com", false},
		{"a b@c.com", false},
		{"a@@b.com", false},
		{" a@b.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.in); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
