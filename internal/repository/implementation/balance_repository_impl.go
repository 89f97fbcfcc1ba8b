package implementation

import (
	"context"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/mapper"
	"ocs-provisioning-be/internal/model"
	"ocs-provisioning-be/internal/repository/contract"
	"ocs-provisioning-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BalanceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BalanceMapper
}

func NewBalanceRepository(db *gorm.DB) contract.BalanceRepository {
	return &BalanceRepositoryImpl{
		db:     db,
		mapper: mapper.NewBalanceMapper(),
	}
}

func (r *BalanceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BalanceRepositoryImpl) Create(ctx context.Context, balance *entity.Balance) error {
	m := r.mapper.ToModel(balance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*balance = *r.mapper.ToEntity(m)
	return nil
}

func (r *BalanceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Balance, error) {
	var models []*model.Balance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Balance, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BalanceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Balance{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *BalanceRepositoryImpl) DeleteAllBySubscriptionId(ctx context.Context, subscriptionId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("subscription_id = ?", subscriptionId).Delete(&model.Balance{})
	return res.RowsAffected, res.Error
}

func (r *BalanceRepositoryImpl) DeleteAllBySubscriberId(ctx context.Context, subscriberId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("subscription_id IN (?)",
			r.db.Model(&model.Subscription{}).Select("id").Where("subscriber_id = ?", subscriberId)).
		Delete(&model.Balance{}).Error
}
