package implementation

import (
	"context"
	"errors"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/mapper"
	"ocs-provisioning-be/internal/model"
	"ocs-provisioning-be/internal/repository/contract"
	"ocs-provisioning-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateStateCAS(ctx context.Context, subscription *entity.Subscription, expectedState entity.SubscriptionState) (bool, error) {
	m := r.mapper.ToModel(subscription)
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND state = ?", m.Id, string(expectedState)).
		Select("*").Omit("id", "creation_date").
		Updates(m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) UpdateRenewalCAS(ctx context.Context, subscription *entity.Subscription, expectedState entity.SubscriptionState, expectedCycles int) (bool, error) {
	m := r.mapper.ToModel(subscription)
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND state = ? AND recurring_cycles_completed = ?", m.Id, string(expectedState), expectedCycles).
		Select("*").Omit("id", "creation_date").
		Updates(m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscription{})
	return res.RowsAffected, res.Error
}

func (r *SubscriptionRepositoryImpl) DeleteAllBySubscriberId(ctx context.Context, subscriberId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("subscriber_id = ?", subscriberId).Delete(&model.Subscription{}).Error
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
