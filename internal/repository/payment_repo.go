package repository

import (
	"context"

	"github.com/renterra/rental-service/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	FindByTenant(ctx context.Context, tenantID uint) ([]models.Payment, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Payment, error)
	FindRecentByTenant(ctx context.Context, tx *gorm.DB, tenantID uint, limit int) ([]models.Payment, error)
	FindRecentByOwner(ctx context.Context, tx *gorm.DB, ownerID uint, limit int) ([]models.Payment, error)
	SumReceivedByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (float64, error)
	SumReceivedByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (float64, error)
	DeleteByBookingIDs(ctx context.Context, tx *gorm.DB, bookingIDs []uint) error
	GetDB() *gorm.DB
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByTenant(ctx context.Context, tenantID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Booking").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.tenant_id = ?", tenantID).
		Order("payments.created_at DESC, payments.id DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Booking").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("payments.created_at DESC, payments.id DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) FindRecentByTenant(ctx context.Context, tx *gorm.DB, tenantID uint, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := tx.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.tenant_id = ?", tenantID).
		Order("payments.created_at DESC, payments.id DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) FindRecentByOwner(ctx context.Context, tx *gorm.DB, ownerID uint, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := tx.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("payments.created_at DESC, payments.id DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) SumReceivedByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (float64, error) {
	var total float64
	err := tx.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.tenant_id = ? AND payments.status = ?", tenantID, models.PaymentReceived).
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) SumReceivedByOwner(ctx context.Context, tx *gorm.DB, ownerID uint) (float64, error) {
	var total float64
	err := tx.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ? AND payments.status = ?", ownerID, models.PaymentReceived).
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) DeleteByBookingIDs(ctx context.Context, tx *gorm.DB, bookingIDs []uint) error {
	if len(bookingIDs) == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Where("booking_id IN ?", bookingIDs).
		Delete(&models.Payment{}).Error
}
