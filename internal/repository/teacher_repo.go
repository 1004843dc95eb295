package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mergington/activities-api/internal/models"
)

// TeacherRepository provides read access to teacher accounts. Accounts are
// provisioned out of band; nothing here mutates them.
type TeacherRepository interface {
	GetByUsername(ctx context.Context, username string) (models.Teacher, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, teachers []models.Teacher) error
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository constructs the database-backed teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) GetByUsername(ctx context.Context, username string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, ErrNotFound
		}
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (r *teacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Teacher{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *teacherRepository) CreateBatch(ctx context.Context, teachers []models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&teachers).Error
}
