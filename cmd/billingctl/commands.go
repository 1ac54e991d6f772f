package main

import (
	"context"
	"fmt"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type commissionService interface {
	GetActive(ctx context.Context) (entities.CommissionSetting, error)
	Update(ctx context.Context, actor access.Actor, percentage decimal.Decimal) (entities.CommissionSetting, error)
}

type pendingExpirer interface {
	ExpireStalePending(ctx context.Context, actor access.Actor, olderThan time.Duration) (int, error)
}

type services struct {
	commission commissionService
	payments   pendingExpirer
	pendingTTL time.Duration
	close      func()
}

type opener func(ctx context.Context) (services, error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "billingctl",
		Short:         "Operator tasks for the medipay billing service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(reapPendingCmd(open))
	root.AddCommand(commissionCmd(open))
	return root
}

func withServices(cmd *cobra.Command, open opener, fn func(ctx context.Context, s services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := open(ctx)
	if err != nil {
		return err
	}
	if s.close != nil {
		defer s.close()
	}
	return fn(ctx, s)
}

func reapPendingCmd(open opener) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "reap-pending",
		Short: "Mark PENDING payments older than the threshold as FAILED",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, open, func(ctx context.Context, s services) error {
				ttl := olderThan
				if ttl <= 0 {
					ttl = s.pendingTTL
				}
				n, err := s.payments.ExpireStalePending(ctx, access.System, ttl)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d pending payment(s) older than %s\n", n, ttl)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "age threshold (defaults to PENDING_ORDER_TTL)")
	return cmd
}

func commissionCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Inspect or change the platform commission",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the active commission percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, open, func(ctx context.Context, s services) error {
				setting, err := s.commission.GetActive(ctx)
				if err != nil {
					return err
				}
				printSetting(cmd, setting)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set [percentage]",
		Short: "Set the commission percentage (0-100)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[0], err)
			}
			return withServices(cmd, open, func(ctx context.Context, s services) error {
				setting, err := s.commission.Update(ctx, access.System, pct)
				if err != nil {
					return err
				}
				printSetting(cmd, setting)
				return nil
			})
		},
	})
	return cmd
}

func printSetting(cmd *cobra.Command, s entities.CommissionSetting) {
	fmt.Fprintf(cmd.OutOrStdout(), "commission: %s%%\n", s.Percentage.StringFixed(2))
	if s.Description != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "description: %s\n", s.Description)
	}
}
