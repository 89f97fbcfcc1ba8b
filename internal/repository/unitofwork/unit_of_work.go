package unitofwork

import (
	"context"

	"ocs-provisioning-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Begin opens a
// database transaction; until Commit or Rollback every repository accessor
// runs inside it. The lifecycle services rely on this to commit an entity
// mutation and its audit row as a single atomic unit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SubscriberRepository() contract.SubscriberRepository
	SubscriptionRepository() contract.SubscriptionRepository
	BalanceRepository() contract.BalanceRepository
	HistoryRepository() contract.HistoryRepository
}
