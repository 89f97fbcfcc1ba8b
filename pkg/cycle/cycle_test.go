package cycle

import (
	"testing"
	"time"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestNextRenewal(t *testing.T) {
	tests := []struct {
		name     string
		base     time.Time
		units    int
		unitType entity.CycleLengthType
		want     time.Time
	}{
		{
			name:     "single day",
			base:     date(2026, time.March, 15),
			units:    1,
			unitType: entity.CycleLengthDays,
			want:     date(2026, time.March, 16),
		},
		{
			name:     "days across month boundary",
			base:     date(2026, time.January, 30),
			units:    5,
			unitType: entity.CycleLengthDays,
			want:     date(2026, time.February, 4),
		},
		{
			name:     "two weeks",
			base:     date(2026, time.June, 1),
			units:    2,
			unitType: entity.CycleLengthWeeks,
			want:     date(2026, time.June, 15),
		},
		{
			name:     "plain month",
			base:     date(2026, time.April, 10),
			units:    1,
			unitType: entity.CycleLengthMonths,
			want:     date(2026, time.May, 10),
		},
		{
			name:     "jan 31 clamps to feb 28",
			base:     date(2026, time.January, 31),
			units:    1,
			unitType: entity.CycleLengthMonths,
			want:     date(2026, time.February, 28),
		},
		{
			name:     "jan 31 clamps to feb 29 in leap year",
			base:     date(2028, time.January, 31),
			units:    1,
			unitType: entity.CycleLengthMonths,
			want:     date(2028, time.February, 29),
		},
		{
			name:     "may 31 clamps to jun 30",
			base:     date(2026, time.May, 31),
			units:    1,
			unitType: entity.CycleLengthMonths,
			want:     date(2026, time.June, 30),
		},
		{
			name:     "months across year boundary",
			base:     date(2026, time.November, 15),
			units:    3,
			unitType: entity.CycleLengthMonths,
			want:     date(2027, time.February, 15),
		},
		{
			name:     "twelve months keeps the day",
			base:     date(2026, time.February, 28),
			units:    12,
			unitType: entity.CycleLengthMonths,
			want:     date(2027, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextRenewal(tt.base, tt.units, tt.unitType)
			if err != nil {
				t.Fatalf("NextRenewal() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextRenewal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextRenewalRejectsUnknownUnit(t *testing.T) {
	_, err := NextRenewal(date(2026, time.March, 1), 1, "fortnights")
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("NextRenewal() error = %v, want validation error", err)
	}
}

func TestEvaluateRenewal(t *testing.T) {
	now := date(2026, time.August, 24)

	newSub := func(state entity.SubscriptionState) *entity.Subscription {
		return &entity.Subscription{
			Id:               uuid.New(),
			State:            state,
			CycleLengthUnits: 1,
			CycleLengthType:  entity.CycleLengthMonths,
		}
	}

	t.Run("requires active state", func(t *testing.T) {
		for _, state := range []entity.SubscriptionState{
			entity.SubscriptionStatePending,
			entity.SubscriptionStateSuspended,
			entity.SubscriptionStateCancelled,
			entity.SubscriptionStateExpired,
		} {
			_, err := EvaluateRenewal(newSub(state), now)
			if !apperror.IsKind(err, apperror.KindInvalidState) {
				t.Errorf("EvaluateRenewal(%s) error = %v, want invalid state", state, err)
			}
		}
	})

	t.Run("advances from the renewal date when set", func(t *testing.T) {
		sub := newSub(entity.SubscriptionStateActive)
		renewal := date(2026, time.September, 1)
		sub.RenewalDate = &renewal

		result, err := EvaluateRenewal(sub, now)
		if err != nil {
			t.Fatalf("EvaluateRenewal() error = %v", err)
		}
		if result.ForcedExpire {
			t.Fatal("ForcedExpire = true, want false")
		}
		if result.CyclesCompleted != 1 {
			t.Errorf("CyclesCompleted = %d, want 1", result.CyclesCompleted)
		}
		want := date(2026, time.October, 1)
		if result.NewRenewalDate == nil || !result.NewRenewalDate.Equal(want) {
			t.Errorf("NewRenewalDate = %v, want %v", result.NewRenewalDate, want)
		}
	})

	t.Run("falls back to the activation date", func(t *testing.T) {
		sub := newSub(entity.SubscriptionStateActive)
		activation := date(2026, time.July, 24)
		sub.ActivationDate = &activation

		result, err := EvaluateRenewal(sub, now)
		if err != nil {
			t.Fatalf("EvaluateRenewal() error = %v", err)
		}
		want := date(2026, time.August, 24)
		if result.NewRenewalDate == nil || !result.NewRenewalDate.Equal(want) {
			t.Errorf("NewRenewalDate = %v, want %v", result.NewRenewalDate, want)
		}
	})

	t.Run("reaching max cycles forces expiration", func(t *testing.T) {
		max := 2
		sub := newSub(entity.SubscriptionStateActive)
		sub.MaxRecurringCycles = &max
		sub.RecurringCyclesCompleted = 1

		result, err := EvaluateRenewal(sub, now)
		if err != nil {
			t.Fatalf("EvaluateRenewal() error = %v", err)
		}
		if !result.ForcedExpire {
			t.Fatal("ForcedExpire = false, want true")
		}
		if result.CyclesCompleted != 2 {
			t.Errorf("CyclesCompleted = %d, want 2", result.CyclesCompleted)
		}
		if result.NewRenewalDate != nil {
			t.Errorf("NewRenewalDate = %v, want nil", result.NewRenewalDate)
		}
	})

	t.Run("unbounded subscription keeps renewing", func(t *testing.T) {
		sub := newSub(entity.SubscriptionStateActive)
		sub.RecurringCyclesCompleted = 41

		result, err := EvaluateRenewal(sub, now)
		if err != nil {
			t.Fatalf("EvaluateRenewal() error = %v", err)
		}
		if result.ForcedExpire {
			t.Fatal("ForcedExpire = true, want false")
		}
		if result.CyclesCompleted != 42 {
			t.Errorf("CyclesCompleted = %d, want 42", result.CyclesCompleted)
		}
	})
}
