// FILE: internal/entity/lifecycle.go
// Transition graphs for subscriber and subscription lifecycles. The legality
// of an edge is a table lookup, never re-derived at call sites.
package entity

type TransitionAction string

const (
	ActionActivate TransitionAction = "activate"
	ActionSuspend  TransitionAction = "suspend"
	ActionCancel   TransitionAction = "cancel"
	ActionRenew    TransitionAction = "renew"
)

var subscriberEdges = map[SubscriberState]map[SubscriberState]bool{
	SubscriberStatePreProvisioned: {
		SubscriberStateActive: true,
	},
	SubscriberStateActive: {
		SubscriberStateSuspended:   true,
		SubscriberStateDeactivated: true,
	},
	SubscriberStateSuspended: {
		SubscriberStateActive:      true,
		SubscriberStateDeactivated: true,
	},
	// deactivated has no outgoing edges; termination is modeled as deletion
	// and is allowed from every state.
	SubscriberStateDeactivated: {},
}

var subscriptionEdges = map[SubscriptionState]map[SubscriptionState]bool{
	SubscriptionStatePending: {
		SubscriptionStateActive: true,
	},
	SubscriptionStateActive: {
		SubscriptionStateSuspended: true,
		SubscriptionStateCancelled: true,
	},
	SubscriptionStateSuspended: {
		SubscriptionStateActive:    true,
		SubscriptionStateCancelled: true,
	},
	SubscriptionStateCancelled: {},
	SubscriptionStateExpired:   {},
}

// SubscriberCanTransition reports whether from -> to is a legal user edge.
func SubscriberCanTransition(from, to SubscriberState) bool {
	return subscriberEdges[from][to]
}

// SubscriptionCanTransition reports whether from -> to is a legal user edge.
// The active -> expired edge is system-initiated (cycle exhaustion) and is
// intentionally absent here.
func SubscriptionCanTransition(from, to SubscriptionState) bool {
	return subscriptionEdges[from][to]
}

// SubscriberTargetState resolves an action to the state it requests.
// Renew has no meaning for subscribers.
func SubscriberTargetState(action TransitionAction) (SubscriberState, bool) {
	switch action {
	case ActionActivate:
		return SubscriberStateActive, true
	case ActionSuspend:
		return SubscriberStateSuspended, true
	case ActionCancel:
		return SubscriberStateDeactivated, true
	}
	return "", false
}

// SubscriptionTargetState resolves an action to the state it requests.
// Renew is handled by the cycle calculator, not a direct edge.
func SubscriptionTargetState(action TransitionAction) (SubscriptionState, bool) {
	switch action {
	case ActionActivate:
		return SubscriptionStateActive, true
	case ActionSuspend:
		return SubscriptionStateSuspended, true
	case ActionCancel:
		return SubscriptionStateCancelled, true
	}
	return "", false
}
