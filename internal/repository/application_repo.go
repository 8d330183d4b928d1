package repository

import (
	"context"

	"github.com/renterra/rental-service/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, application *models.Application) error
	FindByID(ctx context.Context, id uint) (*models.Application, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]models.Application, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Application, error)
	FindRecentByOwner(ctx context.Context, tx *gorm.DB, ownerID uint, limit int) ([]models.Application, error)
	CountPendingByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (int64, error)
	CountPendingByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (int64, error)
	// UpdateStatusIf flips the status only when the current status matches
	// from, reporting whether a row was updated. Concurrent deciders are
	// serialized by this guard: the loser sees zero rows affected.
	UpdateStatusIf(ctx context.Context, tx *gorm.DB, id uint, from, to models.ApplicationStatus) (bool, error)
	DeleteByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) error
	GetDB() *gorm.DB
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *applicationRepository) Create(ctx context.Context, tx *gorm.DB, application *models.Application) error {
	return tx.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).Preload("Property").First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByTenant(ctx context.Context, tenantID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Joins("JOIN properties ON properties.id = applications.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("applications.created_at DESC, applications.id DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindRecentByOwner(ctx context.Context, tx *gorm.DB, ownerID uint, limit int) ([]models.Application, error) {
	var applications []models.Application
	err := tx.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Joins("JOIN properties ON properties.id = applications.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("applications.created_at DESC, applications.id DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) CountPendingByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Application{}).
		Joins("JOIN properties ON properties.id = applications.property_id").
		Where("properties.owner_id = ? AND applications.status = ?", ownerID, models.ApplicationPending).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) CountPendingByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Application{}).
		Where("tenant_id = ? AND status = ?", tenantID, models.ApplicationPending).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) UpdateStatusIf(ctx context.Context, tx *gorm.DB, id uint, from, to models.ApplicationStatus) (bool, error) {
	result := tx.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected > 0, result.Error
}

func (r *applicationRepository) DeleteByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) error {
	return tx.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&models.Application{}).Error
}
