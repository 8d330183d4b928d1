package repository

import (
	"context"
	"time"

	"github.com/renterra/rental-service/internal/models"
	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, ticket *models.MaintenanceTicket) error
	FindByID(ctx context.Context, id uint) (*models.MaintenanceTicket, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]models.MaintenanceTicket, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.MaintenanceTicket, error)
	FindRecentByOwner(ctx context.Context, tx *gorm.DB, ownerID uint, limit int) ([]models.MaintenanceTicket, error)
	CountByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (int64, error)
	// AdvanceStatusIf moves the ticket forward only while it has not
	// completed yet; completed tickets stay final.
	AdvanceStatusIf(ctx context.Context, tx *gorm.DB, id uint, to models.TicketStatus, completedAt *time.Time) (bool, error)
	DeleteByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) error
	GetDB() *gorm.DB
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *maintenanceRepository) Create(ctx context.Context, tx *gorm.DB, ticket *models.MaintenanceTicket) error {
	return tx.WithContext(ctx).Create(ticket).Error
}

func (r *maintenanceRepository) FindByID(ctx context.Context, id uint) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if err := r.db.WithContext(ctx).Preload("Property").First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *maintenanceRepository) FindByTenant(ctx context.Context, tenantID uint) ([]models.MaintenanceTicket, error) {
	var tickets []models.MaintenanceTicket
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *maintenanceRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.MaintenanceTicket, error) {
	var tickets []models.MaintenanceTicket
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Joins("JOIN properties ON properties.id = maintenance_tickets.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("maintenance_tickets.created_at DESC, maintenance_tickets.id DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *maintenanceRepository) FindRecentByOwner(ctx context.Context, tx *gorm.DB, ownerID uint, limit int) ([]models.MaintenanceTicket, error) {
	var tickets []models.MaintenanceTicket
	err := tx.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Joins("JOIN properties ON properties.id = maintenance_tickets.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("maintenance_tickets.created_at DESC, maintenance_tickets.id DESC").
		Limit(limit).
		Find(&tickets).Error
	return tickets, err
}

func (r *maintenanceRepository) CountByTenant(ctx context.Context, tx *gorm.DB, tenantID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.MaintenanceTicket{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *maintenanceRepository) AdvanceStatusIf(ctx context.Context, tx *gorm.DB, id uint, to models.TicketStatus, completedAt *time.Time) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}
	result := tx.WithContext(ctx).
		Model(&models.MaintenanceTicket{}).
		Where("id = ? AND status <> ?", id, models.TicketCompleted).
		Updates(updates)
	return result.RowsAffected > 0, result.Error
}

func (r *maintenanceRepository) DeleteByPropertyID(ctx context.Context, tx *gorm.DB, propertyID uint) error {
	return tx.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&models.MaintenanceTicket{}).Error
}
