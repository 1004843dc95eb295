package repository

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mergington/activities-api/internal/models"
)

// ErrNotFound is returned when a looked-up record does not exist. Both
// backends report it so callers never depend on driver error types.
var ErrNotFound = errors.New("record not found")

// ErrNotModified is returned when a participant update touched zero records,
// typically because a concurrent request already applied the same change.
var ErrNotModified = errors.New("no records modified")

// ParticipantOp selects the mutation applied to an activity roster.
type ParticipantOp string

// Supported roster mutations.
const (
	ParticipantAdd    ParticipantOp = "add"
	ParticipantRemove ParticipantOp = "remove"
)

// ActivityFilter narrows activity listings. Zero-value fields are ignored and
// the populated ones combine conjunctively.
type ActivityFilter struct {
	Day       string
	StartTime string
	EndTime   string
}

// Empty reports whether the filter constrains anything.
func (f ActivityFilter) Empty() bool {
	return f.Day == "" && f.StartTime == "" && f.EndTime == ""
}

// Matches evaluates the filter against a single activity. Activities without
// schedule details pass an empty filter and fail any constrained one, so the
// outcome is the same whichever backend produced the record.
func (f ActivityFilter) Matches(activity models.Activity) bool {
	if f.Empty() {
		return true
	}

	details := activity.ScheduleDetails
	if details == nil {
		return false
	}

	if f.Day != "" && !containsDay(details.Days, f.Day) {
		return false
	}

	// HH:MM strings compare lexicographically; callers must zero-pad hours.
	if f.StartTime != "" && details.StartTime < f.StartTime {
		return false
	}

	if f.EndTime != "" && details.EndTime > f.EndTime {
		return false
	}

	return true
}

func containsDay(days []string, day string) bool {
	for _, candidate := range days {
		if candidate == day {
			return true
		}
	}
	return false
}

// ActivityRepository provides access to the activities collection.
type ActivityRepository interface {
	GetByName(ctx context.Context, name string) (models.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]models.Activity, error)
	UpdateParticipants(ctx context.Context, name string, op ParticipantOp, email string) error
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, activities []models.Activity) error
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs the database-backed activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, ErrNotFound
		}
		return models.Activity{}, err
	}

	return activity, nil
}

func (r *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.WithContext(ctx).Find(&activities).Error; err != nil {
		return nil, err
	}

	if filter.Empty() {
		return activities, nil
	}

	// Day containment has no portable SQL form for a JSON array column, so
	// the filter runs over the fetched rows. Result order stays
	// backend-defined either way.
	filtered := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if filter.Matches(activity) {
			filtered = append(filtered, activity)
		}
	}

	return filtered, nil
}

func (r *activityRepository) UpdateParticipants(ctx context.Context, name string, op ParticipantOp, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity models.Activity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&activity, "name = ?", name).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		participants, changed := applyParticipantOp(activity.Participants, op, email)
		if !changed {
			return ErrNotModified
		}

		result := tx.Model(&models.Activity{}).
			Where("name = ?", name).
			Update("participants", datatypes.NewJSONSlice(participants))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotModified
		}

		return nil
	})
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Activity{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *activityRepository) CreateBatch(ctx context.Context, activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&activities).Error
}

// applyParticipantOp returns the roster after the mutation and whether the
// mutation changed anything. Add appends to the end; remove drops the single
// matching entry and keeps the order of the rest.
func applyParticipantOp(participants []string, op ParticipantOp, email string) ([]string, bool) {
	switch op {
	case ParticipantAdd:
		for _, participant := range participants {
			if participant == email {
				return participants, false
			}
		}
		updated := make([]string, 0, len(participants)+1)
		updated = append(updated, participants...)
		updated = append(updated, email)
		return updated, true
	case ParticipantRemove:
		updated := make([]string, 0, len(participants))
		removed := false
		for _, participant := range participants {
			if !removed && participant == email {
				removed = true
				continue
			}
			updated = append(updated, participant)
		}
		return updated, removed
	default:
		return participants, false
	}
}
