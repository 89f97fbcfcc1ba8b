package contract

import (
	"context"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BalanceRepository interface {
	Create(ctx context.Context, balance *entity.Balance) error

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Balance, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DeleteAllBySubscriptionId removes every bucket on one subscription and
	// reports how many rows went.
	DeleteAllBySubscriptionId(ctx context.Context, subscriptionId uuid.UUID) (int64, error)

	// DeleteAllBySubscriberId removes the buckets of every subscription owned
	// by a subscriber. Used when the subscriber itself is terminated.
	DeleteAllBySubscriberId(ctx context.Context, subscriberId uuid.UUID) error
}
