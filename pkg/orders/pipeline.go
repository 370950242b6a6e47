package orders

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/chain"
	"github.com/ib-77/ropkit/pkg/rop/solo"
)

// DefaultMaxAmount is the largest order amount accepted by default.
const DefaultMaxAmount = 1000.0

// Pipeline validates single orders against a Registry.
type Pipeline struct {
	registry  *Registry
	maxAmount float64
	logger    *slog.Logger
}

type Option func(*Pipeline)

func WithMaxAmount(amount float64) Option {
	return func(p *Pipeline) {
		p.maxAmount = amount
	}
}

// WithLogger sets the logger used by the pipeline and by validators built on
// it. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewPipeline(registry *Registry, opts ...Option) (*Pipeline, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}

	p := &Pipeline{
		registry:  registry,
		maxAmount: DefaultMaxAmount,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	if !(p.maxAmount > 0) {
		return nil, fmt.Errorf("max amount must be positive, got %v", p.maxAmount)
	}
	return p, nil
}

// Validate runs the user lookup, the user check and the amount check in that
// order and stops at the first failure. The failure is always an *OrderError.
func (p *Pipeline) Validate(ctx context.Context, order *Order) rop.Result[ValidatedOrder] {
	return chain.Then(chain.FromValue(ctx, order), p.lookupUser).
		Ensure(p.checkUser).
		Ensure(p.checkAmount).
		Result()
}

// Process validates order and returns a confirmation message for its user.
func (p *Pipeline) Process(ctx context.Context, order *Order) (string, error) {
	processed := chain.Map(chain.Start(ctx, p.Validate(ctx, order)),
		func(_ context.Context, v ValidatedOrder) string {
			return "order processed for " + v.User.Name
		})
	return processed.Result().Unwrap()
}

func (p *Pipeline) lookupUser(_ context.Context, order *Order) rop.Result[ValidatedOrder] {
	user, ok := p.registry.Find(order.UserID)
	return solo.FromOption(ValidatedOrder{User: user, Order: order}, ok, func() error {
		return UserNotFound(order.UserID)
	})
}

func (p *Pipeline) checkUser(_ context.Context, v ValidatedOrder) error {
	if !v.User.HasValidEmail() {
		return InvalidUser("invalid email for user " + v.User.Name)
	}
	return nil
}

func (p *Pipeline) checkAmount(_ context.Context, v ValidatedOrder) error {
	// written so that NaN amounts are rejected too
	if !(v.Order.Amount <= p.maxAmount) {
		return PaymentFailed("amount too large")
	}
	return nil
}
