package orders

import (
	"context"
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/solo"
)

// Validator runs a Pipeline over a batch of orders.
type Validator struct {
	pipeline *Pipeline
}

func NewValidator(pipeline *Pipeline) (*Validator, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	return &Validator{pipeline: pipeline}, nil
}

// ValidateAll validates orders in input order and fails on the first
// rejected order with that order's error. Orders after it are not evaluated
// and no partial result is returned. On success the pairs keep input order.
func (v *Validator) ValidateAll(ctx context.Context, orders []Order) rop.Result[[]ValidatedOrder] {
	return solo.Traverse(ctx, orderRefs(orders), v.validate)
}

// ValidatePrefix behaves like ValidateAll but also returns the orders that
// were accepted before the first rejection.
func (v *Validator) ValidatePrefix(ctx context.Context, orders []Order) ([]ValidatedOrder, error) {
	prefix, failed := solo.TraversePrefix(ctx, orderRefs(orders), v.validate)
	if failed != nil {
		return prefix, failed.Err()
	}
	return prefix, nil
}

// Report validates every order independently and returns one outcome per
// order, in input order.
func (v *Validator) Report(ctx context.Context, orders []Order) []rop.Result[ValidatedOrder] {
	out := make([]rop.Result[ValidatedOrder], 0, len(orders))
	for _, o := range orderRefs(orders) {
		out = append(out, v.validate(ctx, o))
	}
	return out
}

func (v *Validator) validate(ctx context.Context, order *Order) rop.Result[ValidatedOrder] {
	res := v.pipeline.Validate(ctx, order)
	if !res.IsSuccess() {
		v.pipeline.logger.DebugContext(ctx, "order rejected",
			"result_id", res.Id().String(),
			"user_id", order.UserID,
			"amount", order.Amount,
			"error", res.Err(),
		)
	}
	return res
}

func orderRefs(orders []Order) []*Order {
	refs := make([]*Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	return refs
}
