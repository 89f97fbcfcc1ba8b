// FILE: internal/service/history_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCreateExplicitInteractionId(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.history.Create(ctx, &dto.CreateHistoryRequest{
		InteractionId: "INT-0001",
		EntityId:      "acc-42",
		EntityType:    "account",
		Description:   "manual adjustment",
		Channel:       "care-portal",
	})
	require.NoError(t, err)
	assert.Equal(t, "INT-0001", record.InteractionId)
	assert.Equal(t, 1, record.Version)
	assert.False(t, record.CreationDate.IsZero())

	// The same interactionId is accepted exactly once
	_, err = env.history.Create(ctx, &dto.CreateHistoryRequest{
		InteractionId: "INT-0001",
		EntityId:      "acc-42",
		EntityType:    "account",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict), "got %v", err)

	records, err := env.history.List(ctx, "acc-42", 10, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestHistoryCreateGeneratesInteractionId(t *testing.T) {
	env := newTestEnv(t)

	record, err := env.history.Create(context.Background(), &dto.CreateHistoryRequest{
		EntityId:   "grp-7",
		EntityType: "group",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.InteractionId)

	loaded, err := env.history.Get(context.Background(), record.InteractionId)
	require.NoError(t, err)
	assert.Equal(t, "grp-7", loaded.EntityId)
	assert.Equal(t, "group", loaded.EntityType)
}

func TestHistoryGetMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.history.Get(context.Background(), "INT-MISSING")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestHistoryListPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		_, err := env.history.Create(ctx, &dto.CreateHistoryRequest{
			InteractionId:    fmt.Sprintf("INT-%03d", i),
			EntityId:         "acc-42",
			EntityType:       "account",
			InteractionStart: &start,
		})
		require.NoError(t, err)
	}

	// Newest first
	first, err := env.history.List(ctx, "acc-42", 5, 0)
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "INT-024", first[0].InteractionId)
	assert.Equal(t, "INT-020", first[4].InteractionId)

	second, err := env.history.List(ctx, "acc-42", 5, 5)
	require.NoError(t, err)
	require.Len(t, second, 5)
	assert.Equal(t, "INT-019", second[0].InteractionId)

	// Pages are disjoint
	seen := map[string]bool{}
	for _, record := range append(first, second...) {
		assert.False(t, seen[record.InteractionId], "duplicate %s across pages", record.InteractionId)
		seen[record.InteractionId] = true
	}

	// Oversized limits clamp instead of failing
	all, err := env.history.List(ctx, "acc-42", 150, 0)
	require.NoError(t, err)
	assert.Len(t, all, 25)

	// Offset past the end is an empty page, not an error
	empty, err := env.history.List(ctx, "acc-42", 5, 30)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Unknown entities read as empty history
	none, err := env.history.List(ctx, "acc-nope", 5, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHistoryListLimitCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 110; i++ {
		_, err := env.history.Create(ctx, &dto.CreateHistoryRequest{
			InteractionId: fmt.Sprintf("INT-%03d", i),
			EntityId:      "acc-big",
			EntityType:    "account",
		})
		require.NoError(t, err)
	}

	records, err := env.history.List(ctx, "acc-big", 500, 0)
	require.NoError(t, err)
	assert.Len(t, records, 100, "limit clamps to the hard cap")
}

func TestHistoryPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.history.Create(ctx, &dto.CreateHistoryRequest{
		InteractionId: "INT-0001",
		EntityId:      "acc-42",
		EntityType:    "account",
		Status:        "open",
	})
	require.NoError(t, err)

	end := time.Date(2026, time.August, 24, 15, 0, 0, 0, time.UTC)
	patched, err := env.history.Patch(ctx, record.InteractionId, []dto.PatchOperation{
		{FieldName: "status", FieldValue: "completed"},
		{FieldName: "reason", FieldValue: "resolved by care agent"},
		{FieldName: "interactionDate.end", FieldValue: end.Format(time.RFC3339)},
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", patched.Status)
	assert.Equal(t, "resolved by care agent", patched.Reason)
	require.NotNil(t, patched.InteractionDate.End)
	assert.True(t, patched.InteractionDate.End.Equal(end))
	assert.Equal(t, 2, patched.Version, "every accepted patch bumps the version")
}

func TestHistoryPatchUnknownFieldFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.history.Create(ctx, &dto.CreateHistoryRequest{
		InteractionId: "INT-0001",
		EntityId:      "acc-42",
		EntityType:    "account",
		Status:        "open",
	})
	require.NoError(t, err)

	_, err = env.history.Patch(ctx, record.InteractionId, []dto.PatchOperation{
		{FieldName: "status", FieldValue: "completed"},
		{FieldName: "entityId", FieldValue: "acc-43"},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)

	loaded, err := env.history.Get(ctx, record.InteractionId)
	require.NoError(t, err)
	assert.Equal(t, "open", loaded.Status)
	assert.Equal(t, 1, loaded.Version)
}

func TestHistoryPatchMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.history.Patch(context.Background(), "INT-MISSING", []dto.PatchOperation{
		{FieldName: "status", FieldValue: "completed"},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
