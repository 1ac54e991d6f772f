package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type fakeCommission struct {
	setting entities.CommissionSetting
	actor   access.Actor
}

func (f *fakeCommission) GetActive(context.Context) (entities.CommissionSetting, error) {
	return f.setting, nil
}

func (f *fakeCommission) Update(_ context.Context, actor access.Actor, p decimal.Decimal) (entities.CommissionSetting, error) {
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
		return entities.CommissionSetting{}, entities.ErrInvalidPercentage
	}
	f.actor = actor
	f.setting.Percentage = p
	return f.setting, nil
}

type fakeExpirer struct {
	olderThan time.Duration
	n         int
}

func (f *fakeExpirer) ExpireStalePending(_ context.Context, _ access.Actor, olderThan time.Duration) (int, error) {
	f.olderThan = olderThan
	return f.n, nil
}

func run(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	comm := &fakeCommission{setting: entities.CommissionSetting{Percentage: decimal.NewFromInt(10), Description: "Default platform commission"}}
	exp := &fakeExpirer{n: 3}
	closed := 0
	open := func(context.Context) (services, error) {
		return services{commission: comm, payments: exp, pendingTTL: 30 * time.Minute, close: func() { closed++ }}, nil
	}

	t.Run("commission get", func(t *testing.T) {
		out, err := run(t, open, "commission", "get")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "commission: 10.00%") {
			t.Fatalf("expected percentage in output, got %q", out)
		}
	})

	t.Run("commission set", func(t *testing.T) {
		out, err := run(t, open, "commission", "set", "12.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "12.50%") || comm.actor != access.System {
			t.Fatalf("unexpected output %q actor=%+v", out, comm.actor)
		}
	})

	t.Run("commission set out of range", func(t *testing.T) {
		_, err := run(t, open, "commission", "set", "150")
		if !errors.Is(err, entities.ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("commission set not a number", func(t *testing.T) {
		if _, err := run(t, open, "commission", "set", "abc"); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("reap uses configured ttl by default", func(t *testing.T) {
		out, err := run(t, open, "reap-pending")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exp.olderThan != 30*time.Minute || !strings.Contains(out, "expired 3") {
			t.Fatalf("unexpected ttl %v output %q", exp.olderThan, out)
		}
	})

	t.Run("reap with flag", func(t *testing.T) {
		if _, err := run(t, open, "reap-pending", "--older-than", "2h"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exp.olderThan != 2*time.Hour {
			t.Fatalf("expected 2h, got %v", exp.olderThan)
		}
	})

	if closed == 0 {
		t.Fatalf("expected services to be closed")
	}
}

func TestCommands_OpenError(t *testing.T) {
	open := func(context.Context) (services, error) { return services{}, errors.New("no config") }
	if _, err := run(t, open, "commission", "get"); err == nil || err.Error() != "no config" {
		t.Fatalf("expected open error, got %v", err)
	}
}
