package repository

import (
	"context"
	"sync"

	"github.com/mergington/activities-api/internal/models"
)

// memoryActivityRepository keeps the activities collection in process memory.
// It is the fallback backend used when no database is reachable at startup;
// listings preserve insertion order and a single mutex serializes mutations.
type memoryActivityRepository struct {
	mu         sync.Mutex
	activities map[string]models.Activity
	order      []string
}

// NewMemoryActivityRepository constructs an empty in-memory activity store.
func NewMemoryActivityRepository() ActivityRepository {
	return &memoryActivityRepository{activities: make(map[string]models.Activity)}
}

func (r *memoryActivityRepository) GetByName(_ context.Context, name string) (models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrNotFound
	}

	return copyActivity(activity), nil
}

func (r *memoryActivityRepository) List(_ context.Context, filter ActivityFilter) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activities := make([]models.Activity, 0, len(r.order))
	for _, name := range r.order {
		activity := r.activities[name]
		if filter.Matches(activity) {
			activities = append(activities, copyActivity(activity))
		}
	}

	return activities, nil
}

func (r *memoryActivityRepository) UpdateParticipants(_ context.Context, name string, op ParticipantOp, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}

	participants, changed := applyParticipantOp(activity.Participants, op, email)
	if !changed {
		return ErrNotModified
	}

	activity.Participants = participants
	r.activities[name] = activity

	return nil
}

func (r *memoryActivityRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.activities)), nil
}

func (r *memoryActivityRepository) CreateBatch(_ context.Context, activities []models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, activity := range activities {
		if _, exists := r.activities[activity.Name]; !exists {
			r.order = append(r.order, activity.Name)
		}
		r.activities[activity.Name] = copyActivity(activity)
	}

	return nil
}

// copyActivity clones the slices so callers never alias the stored record.
func copyActivity(activity models.Activity) models.Activity {
	cloned := activity
	cloned.Participants = append([]string(nil), activity.Participants...)
	if activity.ScheduleDetails != nil {
		details := *activity.ScheduleDetails
		details.Days = append([]string(nil), activity.ScheduleDetails.Days...)
		cloned.ScheduleDetails = &details
	}
	return cloned
}

// memoryTeacherRepository keeps teacher accounts in process memory.
type memoryTeacherRepository struct {
	mu       sync.Mutex
	teachers map[string]models.Teacher
}

// NewMemoryTeacherRepository constructs an empty in-memory teacher store.
func NewMemoryTeacherRepository() TeacherRepository {
	return &memoryTeacherRepository{teachers: make(map[string]models.Teacher)}
}

func (r *memoryTeacherRepository) GetByUsername(_ context.Context, username string) (models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teacher, ok := r.teachers[username]
	if !ok {
		return models.Teacher{}, ErrNotFound
	}

	return teacher, nil
}

func (r *memoryTeacherRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.teachers)), nil
}

func (r *memoryTeacherRepository) CreateBatch(_ context.Context, teachers []models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, teacher := range teachers {
		r.teachers[teacher.Username] = teacher
	}

	return nil
}
