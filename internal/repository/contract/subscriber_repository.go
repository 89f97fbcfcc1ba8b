package contract

import (
	"context"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *entity.Subscriber) error

	// Update persists plain field edits without state-machine semantics.
	Update(ctx context.Context, subscriber *entity.Subscriber) error

	// UpdateStateCAS writes the subscriber only if its stored state still
	// equals expectedState. Returns false when another writer moved the
	// entity first; nothing is written in that case.
	UpdateStateCAS(ctx context.Context, subscriber *entity.Subscriber, expectedState entity.SubscriberState) (bool, error)

	// Delete hard-deletes and reports how many rows were removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscriber, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscriber, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
