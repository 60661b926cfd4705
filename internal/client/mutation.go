package client

import (
	"context"
	"sync"

	"marketplace-service/internal/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type MutationFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

type MutationOptions[Req, Res any] struct {
	OnSuccess func(res Res, req Req)
	OnError   func(err error, req Req)
	OnSettled func(res Res, err error, req Req)
}

// Mutation tracks the lifecycle of one remote call for a UI. Only the most
// recent Mutate call updates the state.
type Mutation[Req, Res any] struct {
	fn   MutationFunc[Req, Res]
	opts MutationOptions[Req, Res]

	mu     sync.RWMutex
	status Status
	data   Res
	err    error
	seq    uint64
}

func NewMutation[Req, Res any](fn MutationFunc[Req, Res], opts MutationOptions[Req, Res]) *Mutation[Req, Res] {
	return &Mutation[Req, Res]{fn: fn, opts: opts, status: StatusIdle}
}

// NewVerifyMutation wraps Client.VerifyGiftOrder.
func NewVerifyMutation(c *Client, opts MutationOptions[GiftOrderRequest, *domain.GiftOrderView]) *Mutation[GiftOrderRequest, *domain.GiftOrderView] {
	return NewMutation[GiftOrderRequest, *domain.GiftOrderView](c.VerifyGiftOrder, opts)
}

// NewRedeemMutation wraps Client.RedeemGiftOrder.
func NewRedeemMutation(c *Client, opts MutationOptions[GiftOrderRequest, *domain.GiftOrderView]) *Mutation[GiftOrderRequest, *domain.GiftOrderView] {
	return NewMutation[GiftOrderRequest, *domain.GiftOrderView](c.RedeemGiftOrder, opts)
}

// Mutate runs the call and returns its result. Callbacks run after the state
// has been updated, outside the lock.
func (m *Mutation[Req, Res]) Mutate(ctx context.Context, req Req) (Res, error) {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.status = StatusPending
	m.err = nil
	m.mu.Unlock()

	res, err := m.fn(ctx, req)

	m.mu.Lock()
	current := seq == m.seq
	if current {
		if err != nil {
			var zero Res
			m.status = StatusError
			m.data = zero
			m.err = err
		} else {
			m.status = StatusSuccess
			m.data = res
		}
	}
	m.mu.Unlock()

	if err != nil {
		if m.opts.OnError != nil {
			m.opts.OnError(err, req)
		}
	} else if m.opts.OnSuccess != nil {
		m.opts.OnSuccess(res, req)
	}
	if m.opts.OnSettled != nil {
		m.opts.OnSettled(res, err, req)
	}
	return res, err
}

func (m *Mutation[Req, Res]) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Mutation[Req, Res]) Data() Res {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data
}

func (m *Mutation[Req, Res]) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *Mutation[Req, Res]) IsPending() bool { return m.Status() == StatusPending }

// Reset returns the mutation to idle. A call still in flight will not
// overwrite the reset state.
func (m *Mutation[Req, Res]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero Res
	m.seq++
	m.status = StatusIdle
	m.data = zero
	m.err = nil
}
