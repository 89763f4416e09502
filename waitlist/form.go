package waitlist

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/automoto/landing/timeline"
)

// ErrBusy is returned by Submit while a submission is in flight.
var ErrBusy = errors.New("waitlist: submission in progress")

// Status is the form submission state.
type Status int

const (
	Idle Status = iota
	Submitting
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FormConfig holds the form timings.
type FormConfig struct {
	// CloseDelay is how long the success message stays before the form
	// clears and closes.
	CloseDelay time.Duration
	// Timeout bounds one submission.
	Timeout time.Duration
}

type submitResult struct {
	entry Entry
	err   error
}

// Form is the waitlist signup state. All methods except the submission
// goroutine run on the main goroutine; results are handed over through a
// mutex-guarded mailbox and applied by Update.
type Form struct {
	submitter Submitter
	cfg       FormConfig
	timers    *timeline.Group

	entry     Entry
	fieldErrs [3]bool
	status    Status
	message   string
	open      bool

	mu      sync.Mutex
	pending *submitResult
	wg      sync.WaitGroup
	cancel  context.CancelFunc

	// OnSubmitted runs on the main goroutine after a successful submission.
	OnSubmitted func(Entry)
	// OnClosed runs whenever the form closes.
	OnClosed func()
}

// NewForm returns a closed, empty form.
func NewForm(sched *timeline.Scheduler, submitter Submitter, cfg FormConfig) *Form {
	return &Form{
		submitter: submitter,
		cfg:       cfg,
		timers:    timeline.NewGroup(sched),
	}
}

// Open shows the form.
func (f *Form) Open() {
	f.open = true
}

// Dismiss clears and closes the form. It is refused while a submission is
// in flight.
func (f *Form) Dismiss() bool {
	if f.status == Submitting {
		return false
	}
	f.timers.CancelAll()
	f.reset()
	f.close()
	return true
}

func (f *Form) reset() {
	f.entry = Entry{}
	f.fieldErrs = [3]bool{}
	f.status = Idle
	f.message = ""
}

func (f *Form) close() {
	if !f.open {
		return
	}
	f.open = false
	if f.OnClosed != nil {
		f.OnClosed()
	}
}

// SetField edits one field. Editing clears that field's error and any
// submission status.
func (f *Form) SetField(field Field, v string) {
	if f.entry.Get(field) == v {
		return
	}
	f.entry.Set(field, v)
	if int(field) < len(f.fieldErrs) {
		f.fieldErrs[field] = false
	}
	if f.status != Submitting {
		f.status = Idle
		f.message = ""
	}
}

// Submit validates the entry and, when it passes, starts delivering it in
// the background. Validation failures are returned and shown on the form.
func (f *Form) Submit() error {
	if f.status == Submitting {
		return ErrBusy
	}
	if err := Validate(f.entry); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			for _, fld := range verr.Fields {
				f.fieldErrs[fld] = true
			}
			f.message = verr.Message
		}
		f.status = Idle
		return err
	}

	f.status = Submitting
	f.message = ""
	entry := f.entry

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if f.cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), f.cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	f.cancel = cancel
	f.wg.Add(1)
	go f.deliver(ctx, entry)
	return nil
}

func (f *Form) deliver(ctx context.Context, e Entry) {
	defer f.wg.Done()
	err := f.submitter.Submit(ctx, e)
	if err != nil {
		log.Printf("[waitlist] submission failed: %v", err)
	}
	f.mu.Lock()
	f.pending = &submitResult{entry: e, err: err}
	f.mu.Unlock()
}

// Update applies a finished submission. Call once per tick.
func (f *Form) Update() {
	f.mu.Lock()
	res := f.pending
	f.pending = nil
	f.mu.Unlock()
	if res == nil {
		return
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}

	if res.err != nil {
		f.status = Failed
		f.message = MsgSubmitFailed
		return
	}
	f.status = Success
	f.message = ""
	if f.OnSubmitted != nil {
		f.OnSubmitted(res.entry)
	}
	f.timers.After(f.cfg.CloseDelay, func() {
		f.reset()
		f.close()
	})
}

// Wait blocks until an in-flight submission has returned.
func (f *Form) Wait() {
	f.wg.Wait()
}

// Release cancels any submission and pending timers.
func (f *Form) Release() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.timers.Close()
}

func (f *Form) Entry() Entry    { return f.entry }
func (f *Form) Status() Status  { return f.status }
func (f *Form) Message() string { return f.message }
func (f *Form) IsOpen() bool    { return f.open }
func (f *Form) Busy() bool      { return f.status == Submitting }
func (f *Form) FieldError(fl Field) bool {
	if int(fl) < 0 || int(fl) >= len(f.fieldErrs) {
		return false
	}
	return f.fieldErrs[fl]
}
