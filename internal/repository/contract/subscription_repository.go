package contract

import (
	"context"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error

	// UpdateStateCAS writes the subscription only if its stored state still
	// equals expectedState.
	UpdateStateCAS(ctx context.Context, subscription *entity.Subscription, expectedState entity.SubscriptionState) (bool, error)

	// UpdateRenewalCAS additionally guards the cycle counter so two renew
	// requests racing on an active subscription cannot both apply.
	UpdateRenewalCAS(ctx context.Context, subscription *entity.Subscription, expectedState entity.SubscriptionState, expectedCycles int) (bool, error)

	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteAllBySubscriberId hard-deletes every subscription owned by a
	// subscriber. Used when the subscriber itself is terminated.
	DeleteAllBySubscriberId(ctx context.Context, subscriberId uuid.UUID) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
