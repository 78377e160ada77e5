package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/domyusuf/safeschooltransport/internal/model"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *StudentRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// GetOwned returns the student only when it belongs to the given parent.
func (r *StudentRepository) GetOwned(ctx context.Context, studentID, parentID uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		First(&student, "id = ? AND parent_id = ?", studentID, parentID).Error; err != nil {
		return nil, err
	}
	return &student, nil
}
