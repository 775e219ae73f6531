package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/photographer"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

type PhotographerGormRepository struct {
	db *gorm.DB
}

func NewPhotographerGormRepository(db *gorm.DB) *PhotographerGormRepository {
	return &PhotographerGormRepository{db: db}
}

func (r *PhotographerGormRepository) GetByUser(
	ctx context.Context,
	userID string,
) (*models.PhotographerProfile, error) {

	var profile models.PhotographerProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *PhotographerGormRepository) Create(
	ctx context.Context,
	p *models.PhotographerProfile,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PhotographerGormRepository) Update(
	ctx context.Context,
	p *models.PhotographerProfile,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Compile-time check
var _ domain.Repository = (*PhotographerGormRepository)(nil)
