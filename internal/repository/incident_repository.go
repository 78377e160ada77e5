package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

type IncidentRepository struct {
	db *gorm.DB
}

func NewIncidentRepository(db *gorm.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func (r *IncidentRepository) Create(ctx context.Context, incident *model.Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

func (r *IncidentRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID, limit int) ([]model.Incident, error) {
	var incidents []model.Incident
	if err := r.db.WithContext(ctx).
		Where("reported_by_id = ?", reporterID).
		Preload("Trip").
		Preload("Trip.Route").
		Order("reported_at DESC").
		Limit(limit).
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *IncidentRepository) ListRecent(ctx context.Context, limit int) ([]model.Incident, error) {
	var incidents []model.Incident
	if err := r.db.WithContext(ctx).
		Preload("Trip").
		Preload("Trip.Route").
		Preload("ReportedBy").
		Order("reported_at DESC").
		Limit(limit).
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}
