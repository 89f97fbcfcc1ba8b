// FILE: internal/service/service_test.go
// Shared harness for the service suite: a throwaway sqlite store behind the
// real unit-of-work factory, and a publisher stub that records payloads.
package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"ocs-provisioning-be/internal/dto"
	"ocs-provisioning-be/internal/model"
	"ocs-provisioning-be/internal/repository/unitofwork"
	"ocs-provisioning-be/pkg/catalog"
	"ocs-provisioning-be/pkg/database"

	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

// quietLogger satisfies logger.ILogger without writing anywhere.
type quietLogger struct{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error                                                  { return nil }

type testEnv struct {
	uowFactory    unitofwork.RepositoryFactory
	publisher     *capturingPublisher
	subscribers   ISubscriberService
	subscriptions ISubscriptionService
	balances      IBalanceService
	history       IHistoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSqliteDB(filepath.Join(t.TempDir(), "provisioning.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Subscriber{},
		&model.Subscription{},
		&model.Balance{},
		&model.AccountHistory{},
	))

	uowFactory := unitofwork.NewRepositoryFactory(db)
	publisher := &capturingPublisher{}
	offerCatalog := catalog.New()
	offerCatalog.SeedDefaults()

	return &testEnv{
		uowFactory:    uowFactory,
		publisher:     publisher,
		subscribers:   NewSubscriberService(uowFactory, publisher, quietLogger{}),
		subscriptions: NewSubscriptionService(uowFactory, offerCatalog, publisher, quietLogger{}),
		balances:      NewBalanceService(uowFactory),
		history:       NewHistoryService(uowFactory),
	}
}

func (env *testEnv) createSubscriber(t *testing.T, msisdn, imsi string) *dto.SubscriberResponse {
	t.Helper()
	subscriber, err := env.subscribers.Create(context.Background(), &dto.CreateSubscriberRequest{
		Msisdn: msisdn,
		Imsi:   imsi,
	})
	require.NoError(t, err)
	return subscriber
}

func (env *testEnv) historyCount(t *testing.T, entityId string) int64 {
	t.Helper()
	records, err := env.history.List(context.Background(), entityId, 100, 0)
	require.NoError(t, err)
	return int64(len(records))
}
