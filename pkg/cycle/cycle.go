// Package cycle computes billing-cycle renewal instants and auto-expiration
// decisions for recurring subscriptions.
package cycle

import (
	"time"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"
)

// NextRenewal adds units of the given cycle length to base. Days and weeks
// are exact duration addition. Months advance the calendar month, keeping the
// day-of-month and clamping to the last valid day of the target month when
// the original day does not exist there (Jan 31 + 1 month = Feb 28/29).
func NextRenewal(base time.Time, units int, unitType entity.CycleLengthType) (time.Time, error) {
	switch unitType {
	case entity.CycleLengthDays:
		return base.AddDate(0, 0, units), nil
	case entity.CycleLengthWeeks:
		return base.AddDate(0, 0, 7*units), nil
	case entity.CycleLengthMonths:
		return addMonthsClamped(base, units), nil
	}
	return time.Time{}, apperror.Validation("unknown cycle length type %q", unitType)
}

// addMonthsClamped advances by whole calendar months. time.AddDate normalizes
// overflow (Jan 31 + 1 month = Mar 3), which is the wrong policy here, so the
// day is clamped to the target month's length first.
func addMonthsClamped(base time.Time, months int) time.Time {
	year, month, day := base.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, base.Location())
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RenewalResult is the outcome of evaluating one renew request.
type RenewalResult struct {
	NewRenewalDate  *time.Time
	CyclesCompleted int
	ForcedExpire    bool
}

// EvaluateRenewal applies one billing cycle to an active subscription. When
// the incremented cycle count reaches maxRecurringCycles the subscription is
// routed into expired instead of receiving a further renewal date.
func EvaluateRenewal(sub *entity.Subscription, now time.Time) (*RenewalResult, error) {
	if sub.State != entity.SubscriptionStateActive {
		return nil, apperror.InvalidState("subscription %s is %s, renew requires active", sub.Id, sub.State)
	}
	completed := sub.RecurringCyclesCompleted + 1
	if sub.MaxRecurringCycles != nil && completed >= *sub.MaxRecurringCycles {
		return &RenewalResult{CyclesCompleted: completed, ForcedExpire: true}, nil
	}

	base := now
	if sub.RenewalDate != nil {
		base = *sub.RenewalDate
	} else if sub.ActivationDate != nil {
		base = *sub.ActivationDate
	}
	next, err := NextRenewal(base, sub.CycleLengthUnits, sub.CycleLengthType)
	if err != nil {
		return nil, err
	}
	return &RenewalResult{NewRenewalDate: &next, CyclesCompleted: completed}, nil
}
