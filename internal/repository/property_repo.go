package repository

import (
	"context"
	"strings"

	"github.com/renterra/rental-service/internal/models"
	"gorm.io/gorm"
)

// PropertyFilter holds the listing filters. Nil/zero fields are not applied.
type PropertyFilter struct {
	District     string
	MaxRent      *float64
	Bedrooms     *int
	PropertyType string
	Query        string
}

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	Save(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	FindByIDWithOwner(ctx context.Context, id uint) (*models.Property, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	CountByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) Save(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindByIDWithOwner(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).Preload("Owner").First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) List(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	var properties []models.Property
	q := r.db.WithContext(ctx).Model(&models.Property{})
	if filter.District != "" {
		q = q.Where("district = ?", filter.District)
	}
	if filter.MaxRent != nil {
		q = q.Where("rent <= ?", *filter.MaxRent)
	}
	if filter.Bedrooms != nil {
		q = q.Where("bedrooms = ?", *filter.Bedrooms)
	}
	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}
	if filter.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}
	err := q.Order("created_at DESC, id DESC").Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) CountByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Property{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *propertyRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Property{}, id).Error
}
