package repository

import (
	"context"
	"errors"

	"github.com/renterra/rental-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDWithProperty(ctx context.Context, id uint) (*models.Booking, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]models.Booking, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error)
	// FindCurrentByTenant resolves the tenant's "current" booking: the
	// newest approved one, falling back to the newest pending one.
	FindCurrentByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (*models.Booking, error)
	FindLatestApprovedByTenant(ctx context.Context, tenantID uint) (*models.Booking, error)
	CountApprovedByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (int64, error)
	UpdateStatusIf(ctx context.Context, tx *gorm.DB, id uint, from, to models.BookingStatus) (bool, error)
	FindIDsByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) ([]uint, error)
	DeleteByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDWithProperty(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Property").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByTenant(ctx context.Context, tenantID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("bookings.created_at DESC, bookings.id DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindCurrentByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ? AND status = ?", tenantID, models.BookingApproved).
		Order("created_at DESC, id DESC").
		First(&booking).Error
	if err == nil {
		return &booking, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = tx.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ? AND status = ?", tenantID, models.BookingPending).
		Order("created_at DESC, id DESC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindLatestApprovedByTenant(ctx context.Context, tenantID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ? AND status = ?", tenantID, models.BookingApproved).
		Order("created_at DESC, id DESC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CountApprovedByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ? AND bookings.status = ?", ownerID, models.BookingApproved).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) UpdateStatusIf(ctx context.Context, tx *gorm.DB, id uint, from, to models.BookingStatus) (bool, error) {
	result := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected > 0, result.Error
}

func (r *bookingRepository) FindIDsByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) ([]uint, error) {
	var ids []uint
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("property_id = ?", propertyID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *bookingRepository) DeleteByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) error {
	return tx.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&models.Booking{}).Error
}
