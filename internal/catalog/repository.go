package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("catalog entry not found")

type Repository interface {
	ListIDs(ctx context.Context, kind Kind) ([]int, error)

	GetGrape(ctx context.Context, id int) (*GrapeVariety, error)
	PageGrapes(ctx context.Context, offset, limit int) ([]GrapeVariety, int64, error)
	UpsertGrapes(ctx context.Context, grapes []GrapeVariety) error

	GetDesignation(ctx context.Context, id int) (*WineDesignation, error)
	PageDesignations(ctx context.Context, offset, limit int) ([]WineDesignation, int64, error)
	UpsertDesignations(ctx context.Context, designations []WineDesignation) error

	Neighbors(ctx context.Context, kind Kind, id int) (prev, next *int, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func modelFor(kind Kind) interface{} {
	if kind == KindDesignation {
		return &WineDesignation{}
	}
	return &GrapeVariety{}
}

func (r *repository) ListIDs(ctx context.Context, kind Kind) ([]int, error) {
	var ids []int
	if err := r.db.WithContext(ctx).
		Model(modelFor(kind)).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) GetGrape(ctx context.Context, id int) (*GrapeVariety, error) {
	var grape GrapeVariety
	if err := r.db.WithContext(ctx).First(&grape, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &grape, nil
}

func (r *repository) PageGrapes(ctx context.Context, offset, limit int) ([]GrapeVariety, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&GrapeVariety{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var grapes []GrapeVariety
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&grapes).Error; err != nil {
		return nil, 0, err
	}
	return grapes, total, nil
}

func (r *repository) UpsertGrapes(ctx context.Context, grapes []GrapeVariety) error {
	if len(grapes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&grapes, 100).Error
}

func (r *repository) GetDesignation(ctx context.Context, id int) (*WineDesignation, error) {
	var designation WineDesignation
	if err := r.db.WithContext(ctx).First(&designation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &designation, nil
}

func (r *repository) PageDesignations(ctx context.Context, offset, limit int) ([]WineDesignation, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&WineDesignation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var designations []WineDesignation
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&designations).Error; err != nil {
		return nil, 0, err
	}
	return designations, total, nil
}

func (r *repository) UpsertDesignations(ctx context.Context, designations []WineDesignation) error {
	if len(designations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&designations, 100).Error
}

func (r *repository) Neighbors(ctx context.Context, kind Kind, id int) (*int, *int, error) {
	var prev, next []int

	if err := r.db.WithContext(ctx).
		Model(modelFor(kind)).
		Where("id < ?", id).
		Order("id DESC").
		Limit(1).
		Pluck("id", &prev).Error; err != nil {
		return nil, nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(modelFor(kind)).
		Where("id > ?", id).
		Order("id ASC").
		Limit(1).
		Pluck("id", &next).Error; err != nil {
		return nil, nil, err
	}

	return firstOrNil(prev), firstOrNil(next), nil
}

func firstOrNil(ids []int) *int {
	if len(ids) == 0 {
		return nil
	}
	id := ids[0]
	return &id
}
