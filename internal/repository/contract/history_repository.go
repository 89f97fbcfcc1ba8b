package contract

import (
	"context"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/repository/specification"
)

type HistoryRepository interface {
	// Create inserts a new interaction. A duplicate interactionId surfaces
	// as a conflict, never an overwrite.
	Create(ctx context.Context, record *entity.AccountHistory) error

	// UpdateCAS writes the record only if its stored version still equals
	// expectedVersion. Returns false on a stale version.
	UpdateCAS(ctx context.Context, record *entity.AccountHistory, expectedVersion int) (bool, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AccountHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccountHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
