package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/discovery"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

type DiscoveryGormRepository struct {
	db *gorm.DB
}

func NewDiscoveryGormRepository(db *gorm.DB) *DiscoveryGormRepository {
	return &DiscoveryGormRepository{db: db}
}

func (r *DiscoveryGormRepository) ListAvailable(
	ctx context.Context,
) ([]models.PhotographerProfile, error) {

	var profiles []models.PhotographerProfile
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("available = ?", true).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *DiscoveryGormRepository) GetByUser(
	ctx context.Context,
	userID string,
) (*models.PhotographerProfile, error) {

	var profile models.PhotographerProfile
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// Compile-time check
var _ domain.Repository = (*DiscoveryGormRepository)(nil)
