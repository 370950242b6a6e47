package orders_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropkit/pkg/orders"
	"github.com/ib-77/ropkit/pkg/plist"
	"github.com/ib-77/ropkit/pkg/rop/chain"
)

// TestValidateAllScenario runs the two-user batch end to end and folds the
// accepted orders into a history list.
func TestValidateAllScenario(t *testing.T) {
	ctx := context.Background()

	registry, err := orders.NewRegistry(
		orders.User{ID: 1, Name: "John", Email: "john@x.com"},
		orders.User{ID: 2, Name: "Jane", Email: "jane@x.com"},
	)
	require.NoError(t, err)

	pipeline, err := orders.NewPipeline(registry)
	require.NoError(t, err)
	validator, err := orders.NewValidator(pipeline)
	require.NoError(t, err)

	batch := []orders.Order{
		{UserID: 1, Amount: 99.99, Status: "completed"},
		{UserID: 2, Amount: 149.99, Status: "pending"},
	}

	res := validator.ValidateAll(ctx, batch)
	require.True(t, res.IsSuccess(), "unexpected error: %v", res.Err())

	var lines []string
	for _, v := range res.Result() {
		lines = append(lines, fmt.Sprintf("%s:%.2f", v.User.Name, v.Order.Amount))
	}
	assert.Equal(t, []string{"John:99.99", "Jane:149.99"}, lines)

	history := plist.Empty[orders.ValidatedOrder]()
	for _, v := range res.Result() {
		history = history.Prepend(v)
	}
	latest, ok := history.Head()
	require.True(t, ok)
	assert.Equal(t, "Jane", latest.User.Name)
	assert.Equal(t, 2, history.Len())
}

func TestValidateAllStopsAtMissingUser(t *testing.T) {
	ctx := context.Background()

	registry, err := orders.NewRegistry(
		orders.User{ID: 1, Name: "John Doe", Email: "john@example.com"},
		orders.User{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
		orders.User{ID: 3, Name: "Invalid User", Email: "invalid-email"},
	)
	require.NoError(t, err)
	pipeline, err := orders.NewPipeline(registry)
	require.NoError(t, err)
	validator, err := orders.NewValidator(pipeline)
	require.NoError(t, err)

	batch := []orders.Order{
		{UserID: 1, Amount: 99.99},
		{UserID: 2, Amount: 149.99},
		{UserID: 4, Amount: 199.99},
		{UserID: 3, Amount: 79.99},
	}

	summary := chain.Finally(chain.Start(ctx, validator.ValidateAll(ctx, batch)),
		func(_ context.Context, v []orders.ValidatedOrder) string {
			return fmt.Sprintf("valid orders: %d of %d", len(v), len(batch))
		},
		func(_ context.Context, err error) string { return "validation error: " + err.Error() },
		func(_ context.Context, err error) string { return "cancelled" },
	)

	assert.Equal(t, "validation error: user 4 not found", summary)
}
