// Package contact implements the contact form: field validation, the
// idle/submitting/success/error state machine, and the transports that deliver
// a message.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultResetDelay is how long the success confirmation stays up.
const DefaultResetDelay = 3 * time.Second

var (
	// ErrBusy means a submission is in flight or its confirmation is showing.
	ErrBusy = errors.New("contact form is busy")
	// ErrClosed means the controller was torn down.
	ErrClosed = errors.New("contact form is closed")
)

// Submitter delivers one contact message.
type Submitter interface {
	Submit(ctx context.Context, f Form) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, f Form) error

func (fn SubmitterFunc) Submit(ctx context.Context, f Form) error { return fn(ctx, f) }

// Transition is reported to observers on every state change.
type Transition struct {
	From State
	To   State
	Err  error
}

type Option func(*Controller)

// WithResetDelay overrides DefaultResetDelay.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithObserver registers fn to be called after each transition, outside the
// controller's lock.
func WithObserver(fn func(Transition)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Controller owns one form's fields and submission state. It lives as long as
// the page that shows the form; Close tears it down.
type Controller struct {
	submitter  Submitter
	resetDelay time.Duration
	observers  []func(Transition)

	life   context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	state  State
	fields Form
	timer  *time.Timer
	gen    uint64
	closed bool
}

func New(submitter Submitter, opts ...Option) (*Controller, error) {
	if submitter == nil {
		return nil, errors.New("contact submitter is required")
	}
	c := &Controller{
		submitter:  submitter,
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.life, c.cancel = context.WithCancel(context.Background())
	return c, nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Fields() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields replaces the field values. Inputs stay editable while a
// submission is in flight.
func (c *Controller) SetFields(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
}

// Submit sends the current fields. It blocks until the transport answers,
// the caller's ctx ends, or the controller is closed. Any transport failure
// leaves the form in StateError with its fields intact and is returned.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.state.AcceptsSubmit() {
		c.mu.Unlock()
		return fmt.Errorf("%w: state %s", ErrBusy, c.state)
	}
	form := c.fields.Trimmed()
	if err := form.Validate(); err != nil {
		c.mu.Unlock()
		return err
	}
	from := c.state
	c.state = StateSubmitting
	c.mu.Unlock()
	c.notify(Transition{From: from, To: StateSubmitting})

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.life, cancel)
	defer stop()

	sendErr := c.submitter.Submit(callCtx, form)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	var t Transition
	if sendErr == nil {
		c.state = StateSuccess
		c.fields = Form{}
		c.gen++
		gen := c.gen
		c.timer = time.AfterFunc(c.resetDelay, func() { c.expire(gen) })
		t = Transition{From: StateSubmitting, To: StateSuccess}
	} else {
		c.state = StateError
		t = Transition{From: StateSubmitting, To: StateError, Err: sendErr}
	}
	c.mu.Unlock()
	c.notify(t)

	if sendErr != nil {
		return fmt.Errorf("submit contact form: %w", sendErr)
	}
	return nil
}

// expire hides the success confirmation, unless the timer is stale.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.closed || c.gen != gen || c.state != StateSuccess {
		c.mu.Unlock()
		return
	}
	c.state = StateIdle
	c.timer = nil
	c.mu.Unlock()
	c.notify(Transition{From: StateSuccess, To: StateIdle})
}

// Close stops the confirmation timer and aborts any in-flight submission.
// Nothing changes state after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.cancel()
}

func (c *Controller) notify(t Transition) {
	for _, fn := range c.observers {
		fn(t)
	}
}
