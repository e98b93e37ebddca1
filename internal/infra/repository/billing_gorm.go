package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/ericmelomp/PetFacil/internal/domain/billing"
	"github.com/ericmelomp/PetFacil/internal/models"
)

type BillingGormRepository struct {
	db *gorm.DB
}

func NewBillingGormRepository(db *gorm.DB) *BillingGormRepository {
	return &BillingGormRepository{db: db}
}

func (r *BillingGormRepository) ListBillableForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"appointment_date >= ? AND appointment_date <= ? AND status <> ?",
			start,
			end,
			"cancelled",
		).
		Order("appointment_date ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BillingGormRepository)(nil)
