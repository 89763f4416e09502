package waitlist

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/landing/timeline"
)

type countingSubmitter struct {
	calls atomic.Int32
	err   error
}

func (c *countingSubmitter) Submit(ctx context.Context, e Entry) error {
	c.calls.Add(1)
	return c.err
}

func newTestForm(sub Submitter) (*Form, *timeline.Scheduler) {
	s := timeline.NewScheduler()
	f := NewForm(s, sub, FormConfig{CloseDelay: 2 * time.Second, Timeout: time.Second})
	f.Open()
	return f, s
}

func fill(f *Form, e Entry) {
	f.SetField(FieldName, e.Name)
	f.SetField(FieldHandle, e.Handle)
	f.SetField(FieldEmail, e.Email)
}

func TestFormInvalidEntryNeverSubmits(t *testing.T) {
	sub := &countingSubmitter{}
	f, _ := newTestForm(sub)
	fill(f, Entry{Name: "", Handle: "x", Email: "a@b.com"})

	err := f.Submit()
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("Submit() = %v, want ErrNameRequired", err)
	}
	f.Wait()
	f.Update()
	if sub.calls.Load() != 0 {
		t.Errorf("submitter called %d times", sub.calls.Load())
	}
	if !f.FieldError(FieldName) || f.FieldError(FieldEmail) {
		t.Errorf("field errors: name=%v email=%v", f.FieldError(FieldName), f.FieldError(FieldEmail))
	}
	if f.Message() != MsgRequired {
		t.Errorf("Message() = %q", f.Message())
	}

	f.SetField(FieldName, "A")
	if f.FieldError(FieldName) || f.Message() != "" {
		t.Error("editing did not clear the error")
	}
}

func TestFormEmailFormatError(t *testing.T) {
	sub := &countingSubmitter{}
	f, _ := newTestForm(sub)
	fill(f, Entry{Name: "A", Handle: "@b", Email: "not-an-email"})
	if err := f.Submit(); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("Submit() = %v", err)
	}
	if f.FieldError(FieldName) || f.FieldError(FieldHandle) || !f.FieldError(FieldEmail) {
		t.Error("only the email field should be flagged")
	}
	if f.Message() != MsgInvalidEmail {
		t.Errorf("Message() = %q", f.Message())
	}
}

func TestFormSuccessClearsAndClosesAfterDelay(t *testing.T) {
	sub := &countingSubmitter{}
	f, s := newTestForm(sub)
	var saved []Entry
	closed := 0
	f.OnSubmitted = func(e Entry) { saved = append(saved, e) }
	f.OnClosed = func() { closed++ }

	entry := Entry{Name: "A", Handle: "@b", Email: "a@b.com"}
	fill(f, entry)
	if err := f.Submit(); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	if f.Status() != Submitting {
		t.Fatalf("Status() = %v", f.Status())
	}
	if f.Dismiss() {
		t.Error("form closed while submitting")
	}
	if err := f.Submit(); !errors.Is(err, ErrBusy) {
		t.Errorf("second Submit() = %v, want ErrBusy", err)
	}

	f.Wait()
	f.Update()
	if sub.calls.Load() != 1 {
		t.Fatalf("submitter called %d times, want 1", sub.calls.Load())
	}
	if f.Status() != Success || len(saved) != 1 || saved[0] != entry {
		t.Fatalf("after delivery: %v %v", f.Status(), saved)
	}

	s.Advance(1999 * time.Millisecond)
	if !f.IsOpen() {
		t.Fatal("form closed before the delay")
	}
	s.Advance(time.Millisecond)
	if f.IsOpen() || f.Status() != Idle || f.Entry() != (Entry{}) {
		t.Errorf("after delay: open=%v status=%v entry=%+v", f.IsOpen(), f.Status(), f.Entry())
	}
	if closed != 1 {
		t.Errorf("OnClosed ran %d times", closed)
	}
}

func TestFormDismissClearsBeforeReopen(t *testing.T) {
	sub := &countingSubmitter{}
	f, _ := newTestForm(sub)
	closed := 0
	f.OnClosed = func() { closed++ }
	fill(f, Entry{Name: "", Handle: "x", Email: "bad"})
	if err := f.Submit(); err == nil {
		t.Fatal("Submit() accepted an invalid entry")
	}

	if !f.Dismiss() {
		t.Fatal("Dismiss() refused on an idle form")
	}
	if f.IsOpen() || closed != 1 {
		t.Fatalf("open=%v closed=%d", f.IsOpen(), closed)
	}

	f.Open()
	if f.Entry() != (Entry{}) {
		t.Errorf("Entry() = %+v, want empty", f.Entry())
	}
	for _, fl := range Fields {
		if f.FieldError(fl) {
			t.Errorf("%v still flagged", fl)
		}
	}
	if f.Status() != Idle || f.Message() != "" {
		t.Errorf("Status() = %v, Message() = %q", f.Status(), f.Message())
	}
}

func TestFormDismissDuringSuccessCancelsAutoClose(t *testing.T) {
	f, s := newTestForm(&countingSubmitter{})
	closed := 0
	f.OnClosed = func() { closed++ }
	fill(f, Entry{Name: "A", Handle: "@b", Email: "a@b.com"})
	f.Submit()
	f.Wait()
	f.Update()

	if !f.Dismiss() {
		t.Fatal("Dismiss() refused after success")
	}
	f.Open()
	s.Advance(3 * time.Second)
	if !f.IsOpen() || closed != 1 {
		t.Errorf("stale auto-close ran: open=%v closed=%d", f.IsOpen(), closed)
	}
}

func TestFormSubmissionDeadline(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		wantDeadline bool
	}{
		{"with timeout", time.Second, true},
		{"without timeout", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hasDeadline bool
			sub := SubmitterFunc(func(ctx context.Context, e Entry) error {
				_, hasDeadline = ctx.Deadline()
				return nil
			})
			f := NewForm(timeline.NewScheduler(), sub, FormConfig{Timeout: tt.timeout})
			f.Open()
			fill(f, Entry{Name: "A", Handle: "@b", Email: "a@b.com"})
			if err := f.Submit(); err != nil {
				t.Fatalf("Submit() = %v", err)
			}
			f.Wait()
			f.Update()
			if hasDeadline != tt.wantDeadline {
				t.Errorf("deadline set = %v, want %v", hasDeadline, tt.wantDeadline)
			}
			if f.Status() != Success {
				t.Errorf("Status() = %v", f.Status())
			}
		})
	}
}

func TestFormTransportFailureKeepsFormEditable(t *testing.T) {
	sub := &countingSubmitter{err: errors.New("connection refused")}
	f, s := newTestForm(sub)
	fill(f, Entry{Name: "A", Handle: "@b", Email: "a@b.com"})
	f.Submit()
	f.Wait()
	f.Update()

	if f.Status() != Failed || f.Message() != MsgSubmitFailed {
		t.Fatalf("Status() = %v, Message() = %q", f.Status(), f.Message())
	}
	s.Advance(5 * time.Second)
	if !f.IsOpen() || f.Entry().Name != "A" {
		t.Error("failed submission closed or cleared the form")
	}
	f.SetField(FieldEmail, "c@d.com")
	if f.Status() != Idle || f.Message() != "" {
		t.Error("editing did not clear the failure")
	}
	if err := f.Submit(); err != nil {
		t.Errorf("resubmit: %v", err)
	}
	f.Wait()
	f.Update()
	if sub.calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", sub.calls.Load())
	}
}

func TestFormRelease(t *testing.T) {
	f, s := newTestForm(&countingSubmitter{})
	fill(f, Entry{Name: "A", Handle: "@b", Email: "a@b.com"})
	f.Submit()
	f.Wait()
	f.Update()
	f.Release()
	if s.Pending() != 0 {
		t.Errorf("Release left %d timers", s.Pending())
	}
}
