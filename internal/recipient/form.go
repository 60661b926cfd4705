package recipient

import (
	"context"
	"errors"
	"maps"
	"sync"
)

var (
	ErrInvalid    = errors.New("recipient form is invalid")
	ErrSubmitting = errors.New("recipient form submission already in flight")
)

type SubmitFunc func(ctx context.Context, info Info) error

type Option func(*Form)

// WithBack sets the action run by Back.
func WithBack(fn func()) Option {
	return func(f *Form) { f.back = fn }
}

// WithInitial pre-fills the form, e.g. when editing saved recipient data.
func WithInitial(info Info) Option {
	return func(f *Form) { f.info = info }
}

// Form holds the live state of the recipient info form. Every field change
// re-validates the whole record; messages are reported only for fields the
// user has touched.
type Form struct {
	mu         sync.Mutex
	info       Info
	errs       map[string]string
	touched    map[string]bool
	submitting bool
	submit     SubmitFunc
	back       func()
}

func NewForm(submit SubmitFunc, opts ...Option) *Form {
	f := &Form{
		submit:  submit,
		touched: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.errs = Validate(f.info)
	return f
}

func (f *Form) SetName(v string) { f.set("name", func(i *Info) { i.Name = v }) }

func (f *Form) SetPhone(v string) { f.set("phone", func(i *Info) { i.Phone = v }) }

func (f *Form) SetNationalID(v string) { f.set("nationalId", func(i *Info) { i.NationalID = v }) }

func (f *Form) set(field string, apply func(*Info)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(&f.info)
	f.touched[field] = true
	f.errs = Validate(f.info)
}

func (f *Form) Info() Info {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info
}

// Errors returns the current messages for touched fields.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errs))
	for field, msg := range f.errs {
		if f.touched[field] {
			out[field] = msg
		}
	}
	return out
}

// AllErrors returns every failing field, touched or not.
func (f *Form) AllErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errs)
}

func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errs) == 0
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errs) == 0 && !f.submitting
}

// Submit hands the current values to the submit action. It is rejected while
// the form is invalid or another submission is running. A rejected submit
// marks every field touched so all messages become visible.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if len(f.errs) > 0 {
		for _, field := range []string{"name", "phone", "nationalId"} {
			f.touched[field] = true
		}
		f.mu.Unlock()
		return ErrInvalid
	}
	f.submitting = true
	info := f.info
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if f.submit == nil {
		return nil
	}
	return f.submit(ctx, info)
}

func (f *Form) HasBack() bool {
	return f.back != nil
}

// Back runs the back action regardless of validation state. It reports
// whether an action was configured.
func (f *Form) Back() bool {
	if f.back == nil {
		return false
	}
	f.back()
	return true
}
