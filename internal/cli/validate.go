package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ib-77/ropkit/internal/fixture"
	"github.com/ib-77/ropkit/pkg/orders"
	"github.com/ib-77/ropkit/pkg/rop/chain"
	"github.com/ib-77/ropkit/pkg/rop/solo"
)

const (
	modeAll    = "all"
	modePrefix = "prefix"
	modeEach   = "each"
)

func validateCmd(root *rootOptions) *cobra.Command {
	var file string
	var mode string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the orders of a fixture file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.settings(cmd)
			if err != nil {
				return err
			}

			fx, err := fixture.Load(file)
			if err != nil {
				return err
			}

			pipeline, err := orders.NewPipeline(fx.Registry,
				orders.WithMaxAmount(cfg.MaxAmount),
				orders.WithLogger(log),
			)
			if err != nil {
				return err
			}

			validator, err := orders.NewValidator(pipeline)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch mode {
			case modeAll:
				return runAll(cmd.Context(), out, validator, fx.Orders)
			case modePrefix:
				return runPrefix(cmd.Context(), out, validator, fx.Orders)
			case modeEach:
				runEach(cmd.Context(), out, validator, fx.Orders)
				return nil
			default:
				return fmt.Errorf("unknown mode %q (want %s, %s or %s)", mode, modeAll, modePrefix, modeEach)
			}
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML file with users and orders (required)")
	c.Flags().StringVarP(&mode, "mode", "m", modeAll, "all: reject the batch on the first error; prefix: also show what was accepted; each: check every order")

	_ = c.MarkFlagRequired("file")
	return c
}

func runAll(ctx context.Context, out io.Writer, v *orders.Validator, list []orders.Order) error {
	return chain.Finally(chain.Start(ctx, v.ValidateAll(ctx, list)),
		func(_ context.Context, accepted []orders.ValidatedOrder) error {
			for _, vo := range accepted {
				printAccepted(out, vo)
			}
			fmt.Fprintf(out, "valid orders: %d of %d\n", len(accepted), len(list))
			return nil
		},
		func(_ context.Context, err error) error { return err },
		func(_ context.Context, err error) error { return err },
	)
}

func runPrefix(ctx context.Context, out io.Writer, v *orders.Validator, list []orders.Order) error {
	accepted, err := v.ValidatePrefix(ctx, list)
	for _, vo := range accepted {
		printAccepted(out, vo)
	}
	if err != nil {
		fmt.Fprintf(out, "accepted %d of %d before rejection\n", len(accepted), len(list))
		return err
	}
	fmt.Fprintf(out, "valid orders: %d of %d\n", len(accepted), len(list))
	return nil
}

func runEach(ctx context.Context, out io.Writer, v *orders.Validator, list []orders.Order) {
	valid := 0
	for _, res := range v.Report(ctx, list) {
		line := solo.Finally(ctx, res,
			func(_ context.Context, vo orders.ValidatedOrder) string {
				valid++
				return acceptedLine(vo)
			},
			func(_ context.Context, err error) string { return "error " + err.Error() },
			func(_ context.Context, err error) string { return "cancelled " + err.Error() },
		)
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "valid orders: %d of %d\n", valid, len(list))
}

func printAccepted(out io.Writer, vo orders.ValidatedOrder) {
	fmt.Fprintln(out, acceptedLine(vo))
}

func acceptedLine(vo orders.ValidatedOrder) string {
	return fmt.Sprintf("ok    %s: %.2f", vo.User.Name, vo.Order.Amount)
}
