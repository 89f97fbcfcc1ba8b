package entity

import "testing"

func TestSubscriberCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from SubscriberState
		to   SubscriberState
		want bool
	}{
		{"pre-provisioned to active", SubscriberStatePreProvisioned, SubscriberStateActive, true},
		{"pre-provisioned to suspended", SubscriberStatePreProvisioned, SubscriberStateSuspended, false},
		{"pre-provisioned to deactivated", SubscriberStatePreProvisioned, SubscriberStateDeactivated, false},
		{"active to suspended", SubscriberStateActive, SubscriberStateSuspended, true},
		{"active to deactivated", SubscriberStateActive, SubscriberStateDeactivated, true},
		{"active to pre-provisioned", SubscriberStateActive, SubscriberStatePreProvisioned, false},
		{"suspended to active", SubscriberStateSuspended, SubscriberStateActive, true},
		{"suspended to deactivated", SubscriberStateSuspended, SubscriberStateDeactivated, true},
		{"deactivated is terminal", SubscriberStateDeactivated, SubscriberStateActive, false},
		{"self edge is illegal", SubscriberStateActive, SubscriberStateActive, false},
		{"unknown state has no edges", SubscriberState("ghost"), SubscriberStateActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubscriberCanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("SubscriberCanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSubscriptionCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from SubscriptionState
		to   SubscriptionState
		want bool
	}{
		{"pending to active", SubscriptionStatePending, SubscriptionStateActive, true},
		{"pending to suspended", SubscriptionStatePending, SubscriptionStateSuspended, false},
		{"pending to cancelled", SubscriptionStatePending, SubscriptionStateCancelled, false},
		{"active to suspended", SubscriptionStateActive, SubscriptionStateSuspended, true},
		{"active to cancelled", SubscriptionStateActive, SubscriptionStateCancelled, true},
		{"active to expired is system-only", SubscriptionStateActive, SubscriptionStateExpired, false},
		{"suspended to active", SubscriptionStateSuspended, SubscriptionStateActive, true},
		{"suspended to cancelled", SubscriptionStateSuspended, SubscriptionStateCancelled, true},
		{"cancelled is terminal", SubscriptionStateCancelled, SubscriptionStateActive, false},
		{"expired is terminal", SubscriptionStateExpired, SubscriptionStateActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubscriptionCanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("SubscriptionCanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSubscriberTargetState(t *testing.T) {
	if target, ok := SubscriberTargetState(ActionActivate); !ok || target != SubscriberStateActive {
		t.Errorf("SubscriberTargetState(activate) = %s, %v", target, ok)
	}
	if target, ok := SubscriberTargetState(ActionCancel); !ok || target != SubscriberStateDeactivated {
		t.Errorf("SubscriberTargetState(cancel) = %s, %v", target, ok)
	}
	if _, ok := SubscriberTargetState(ActionRenew); ok {
		t.Error("SubscriberTargetState(renew) resolved, want undefined")
	}
}

func TestSubscriptionTargetState(t *testing.T) {
	if target, ok := SubscriptionTargetState(ActionCancel); !ok || target != SubscriptionStateCancelled {
		t.Errorf("SubscriptionTargetState(cancel) = %s, %v", target, ok)
	}
	if _, ok := SubscriptionTargetState(ActionRenew); ok {
		t.Error("SubscriptionTargetState(renew) resolved, want cycle calculator")
	}
}
