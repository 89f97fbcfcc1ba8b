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

	"gorm.io/gorm"
)

type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HistoryMapper
}

func NewHistoryRepository(db *gorm.DB) contract.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewHistoryMapper(),
	}
}

func (r *HistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HistoryRepositoryImpl) Create(ctx context.Context, record *entity.AccountHistory) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("interaction %s already exists", record.InteractionId)
		}
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *HistoryRepositoryImpl) UpdateCAS(ctx context.Context, record *entity.AccountHistory, expectedVersion int) (bool, error) {
	m := r.mapper.ToModel(record)
	res := r.db.WithContext(ctx).Model(&model.AccountHistory{}).
		Where("interaction_id = ? AND version = ?", m.InteractionId, expectedVersion).
		Select("*").Omit("interaction_id", "creation_date").
		Updates(m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *HistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AccountHistory, error) {
	var m model.AccountHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccountHistory, error) {
	var models []*model.AccountHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AccountHistory, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *HistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AccountHistory{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
