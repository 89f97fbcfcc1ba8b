// FILE: internal/service/subscriber_service_test.go
package service

import (
	"context"
	"sync"
	"testing"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberCreateDefaults(t *testing.T) {
	env := newTestEnv(t)

	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")

	assert.Equal(t, "pre-provisioned", subscriber.CurrentState)
	assert.Nil(t, subscriber.PreviousState)
	assert.Nil(t, subscriber.ActivationDate)
	assert.True(t, subscriber.ExpirationDate.Equal(entity.ExpirationSentinel),
		"expiration defaults to the sentinel")

	// Created subscribers are immediately readable
	loaded, err := env.subscribers.Get(context.Background(), subscriber.SubscriberId)
	require.NoError(t, err)
	assert.Equal(t, subscriber.Msisdn, loaded.Msisdn)
	assert.True(t, loaded.ExpirationDate.Equal(entity.ExpirationSentinel))
}

func TestSubscriberCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		msisdn string
		imsi   string
	}{
		{"msisdn too short", "12345", "262011234567890"},
		{"msisdn not numeric", "49170123456a", "262011234567890"},
		{"imsi too short", "491701234567", "26201"},
		{"imsi too long", "491701234567", "2620112345678901234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.subscribers.Create(context.Background(), &dto.CreateSubscriberRequest{
				Msisdn: tt.msisdn,
				Imsi:   tt.imsi,
			})
			assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
		})
	}
}

func TestSubscriberCreateDuplicateMsisdn(t *testing.T) {
	env := newTestEnv(t)
	env.createSubscriber(t, "491701234567", "262011234567890")

	_, err := env.subscribers.Create(context.Background(), &dto.CreateSubscriberRequest{
		Msisdn: "491701234567",
		Imsi:   "262019999999999",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)
}

func TestSubscriberActivation(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId

	activated, err := env.subscribers.Transition(context.Background(), id, entity.ActionActivate)
	require.NoError(t, err)

	assert.Equal(t, "active", activated.CurrentState)
	require.NotNil(t, activated.PreviousState)
	assert.Equal(t, "pre-provisioned", *activated.PreviousState)
	assert.NotNil(t, activated.ActivationDate)
	assert.NotNil(t, activated.LastTransitionDate)

	// Exactly one audit row per accepted transition
	records, err := env.history.List(context.Background(), id.String(), 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "subscriber", records[0].EntityType)
	assert.Equal(t, "state transition pre-provisioned -> active", records[0].Description)
	assert.Equal(t, "system", records[0].Channel)

	assert.Equal(t, 1, env.publisher.count())
}

func TestSubscriberIllegalTransitionWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId

	// pre-provisioned has no suspend edge
	_, err := env.subscribers.Transition(context.Background(), id, entity.ActionSuspend)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidTransition), "got %v", err)

	loaded, err := env.subscribers.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "pre-provisioned", loaded.CurrentState)
	assert.Nil(t, loaded.PreviousState)

	assert.Zero(t, env.historyCount(t, id.String()), "rejected transitions leave no audit row")
	assert.Zero(t, env.publisher.count())
}

func TestSubscriberSecondActivateFails(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId

	_, err := env.subscribers.Transition(context.Background(), id, entity.ActionActivate)
	require.NoError(t, err)

	_, err = env.subscribers.Transition(context.Background(), id, entity.ActionActivate)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidTransition), "got %v", err)

	assert.EqualValues(t, 1, env.historyCount(t, id.String()))
}

func TestSubscriberFullLifecycle(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId
	ctx := context.Background()

	for _, action := range []entity.TransitionAction{
		entity.ActionActivate,
		entity.ActionSuspend,
		entity.ActionActivate,
		entity.ActionCancel,
	} {
		_, err := env.subscribers.Transition(ctx, id, action)
		require.NoError(t, err, "action %s", action)
	}

	loaded, err := env.subscribers.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "deactivated", loaded.CurrentState)

	// deactivated is terminal for user edges
	_, err = env.subscribers.Transition(ctx, id, entity.ActionActivate)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidTransition))

	assert.EqualValues(t, 4, env.historyCount(t, id.String()))
}

func TestSubscriberPatchUnknownFieldFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId

	_, err := env.subscribers.Patch(context.Background(), id, []dto.PatchOperation{
		{FieldName: "subscriberType", FieldValue: "residential"},
		{FieldName: "shoeSize", FieldValue: "44"},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)

	loaded, err := env.subscribers.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, loaded.SubscriberType, "rejected patch must not apply any field")
}

func TestSubscriberPatchFields(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId

	patched, err := env.subscribers.Patch(context.Background(), id, []dto.PatchOperation{
		{FieldName: "subscriberType", FieldValue: "residential"},
		{FieldName: "businessAccountId", FieldValue: "BA-1042"},
		{FieldName: "personalInfo", FieldValue: map[string]interface{}{"firstName": "Nina"}},
	})
	require.NoError(t, err)

	require.NotNil(t, patched.SubscriberType)
	assert.Equal(t, "residential", *patched.SubscriberType)
	require.NotNil(t, patched.BusinessAccountId)
	assert.Equal(t, "BA-1042", *patched.BusinessAccountId)
	assert.JSONEq(t, `{"firstName":"Nina"}`, string(patched.PersonalInfo))
	assert.NotNil(t, patched.LastModifiedDate)

	// Plain field patches never touch the state machine
	assert.Zero(t, env.historyCount(t, id.String()))
}

func TestSubscriberPatchWithStateRoutesThroughStateMachine(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId

	patched, err := env.subscribers.Patch(context.Background(), id, []dto.PatchOperation{
		{FieldName: "state", FieldValue: "active"},
		{FieldName: "subscriberType", FieldValue: "residential"},
	})
	require.NoError(t, err)
	assert.Equal(t, "active", patched.CurrentState)
	require.NotNil(t, patched.SubscriberType)
	assert.Equal(t, "residential", *patched.SubscriberType)

	assert.EqualValues(t, 1, env.historyCount(t, id.String()))

	// An illegal state value behaves like any other illegal transition
	_, err = env.subscribers.Patch(context.Background(), id, []dto.PatchOperation{
		{FieldName: "state", FieldValue: "pre-provisioned"},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidTransition), "got %v", err)
}

func TestSubscriberPatchInvalidMsisdn(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")

	_, err := env.subscribers.Patch(context.Background(), subscriber.SubscriberId, []dto.PatchOperation{
		{FieldName: "msisdn", FieldValue: "not-a-number"},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
}

func TestSubscriberTerminateCascades(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId
	ctx := context.Background()

	subscription, err := env.subscriptions.Create(ctx, &dto.CreateSubscriptionRequest{
		SubscriberId: id,
	})
	require.NoError(t, err)

	require.NoError(t, env.subscribers.Terminate(ctx, id))

	_, err = env.subscribers.Get(ctx, id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = env.subscriptions.Get(ctx, subscription.SubscriptionId)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "subscriptions go with the subscriber")

	// The audit trail outlives the entity
	records, err := env.history.List(ctx, id.String(), 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "state transition pre-provisioned -> terminated", records[0].Description)
	assert.Equal(t, "subscriber terminated", records[0].Reason)
}

func TestSubscriberTerminateMissing(t *testing.T) {
	env := newTestEnv(t)
	err := env.subscribers.Terminate(context.Background(), uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestSubscriberGetMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.subscribers.Get(context.Background(), uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestSubscriberConcurrentActivate(t *testing.T) {
	env := newTestEnv(t)
	subscriber := env.createSubscriber(t, "491701234567", "262011234567890")
	id := subscriber.SubscriberId
	ctx := context.Background()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.subscribers.Transition(ctx, id, entity.ActionActivate)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		ok := apperror.IsKind(err, apperror.KindConflict) ||
			apperror.IsKind(err, apperror.KindInvalidTransition)
		assert.True(t, ok, "got %v", err)
	}
	assert.Equal(t, 1, successes, "exactly one activation must win")

	loaded, err := env.subscribers.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "active", loaded.CurrentState)
	assert.EqualValues(t, 1, env.historyCount(t, id.String()),
		"the losing activation must leave no audit row")
}
