package implementation

import (
	"context"
	"errors"

	"ocs-provisioning-be/internal/entity"
	"ocs-provisioning-be/internal/mapper"
	"ocs-provisioning-be/internal/model"
	"ocs-provisioning-be/internal/pkg/apperror"
	"ocs-provisioning-be/internal/repository/contract"
	"ocs-provisioning-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriberMapper
}

func NewSubscriberRepository(db *gorm.DB) contract.SubscriberRepository {
	return &SubscriberRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriberMapper(),
	}
}

func (r *SubscriberRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	m := r.mapper.ToModel(subscriber)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("subscriber with this msisdn or imsi already exists")
		}
		return err
	}
	*subscriber = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriberRepositoryImpl) Update(ctx context.Context, subscriber *entity.Subscriber) error {
	m := r.mapper.ToModel(subscriber)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("subscriber with this msisdn or imsi already exists")
		}
		return err
	}
	*subscriber = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriberRepositoryImpl) UpdateStateCAS(ctx context.Context, subscriber *entity.Subscriber, expectedState entity.SubscriberState) (bool, error) {
	m := r.mapper.ToModel(subscriber)
	res := r.db.WithContext(ctx).Model(&model.Subscriber{}).
		Where("id = ? AND state = ?", m.Id, string(expectedState)).
		Select("*").Omit("id", "creation_date").
		Updates(m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubscriberRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscriber{})
	return res.RowsAffected, res.Error
}

func (r *SubscriberRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscriber, error) {
	var m model.Subscriber
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscriber, error) {
	var models []*model.Subscriber
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscriber, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriberRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscriber{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
