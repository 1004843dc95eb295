package service

import (
	"context"

	"github.com/mergington/activities-api/internal/models"
	"github.com/mergington/activities-api/internal/repository"
)

type activityRepoStub struct {
	activities []models.Activity
	lastFilter repository.ActivityFilter
	updateErr  error
}

func (s *activityRepoStub) GetByName(_ context.Context, name string) (models.Activity, error) {
	for _, activity := range s.activities {
		if activity.Name == name {
			return activity, nil
		}
	}
	return models.Activity{}, repository.ErrNotFound
}

func (s *activityRepoStub) List(_ context.Context, filter repository.ActivityFilter) ([]models.Activity, error) {
	s.lastFilter = filter
	matched := make([]models.Activity, 0, len(s.activities))
	for _, activity := range s.activities {
		if filter.Matches(activity) {
			matched = append(matched, activity)
		}
	}
	return matched, nil
}

func (s *activityRepoStub) UpdateParticipants(_ context.Context, name string, op repository.ParticipantOp, email string) error {
	if s.updateErr != nil {
		return s.updateErr
	}

	for i, activity := range s.activities {
		if activity.Name != name {
			continue
		}
		switch op {
		case repository.ParticipantAdd:
			if activity.HasParticipant(email) {
				return repository.ErrNotModified
			}
			s.activities[i].Participants = append(activity.Participants, email)
		case repository.ParticipantRemove:
			if !activity.HasParticipant(email) {
				return repository.ErrNotModified
			}
			remaining := make([]string, 0, len(activity.Participants))
			for _, participant := range activity.Participants {
				if participant != email {
					remaining = append(remaining, participant)
				}
			}
			s.activities[i].Participants = remaining
		}
		return nil
	}

	return repository.ErrNotFound
}

func (s *activityRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.activities)), nil
}

func (s *activityRepoStub) CreateBatch(_ context.Context, activities []models.Activity) error {
	s.activities = append(s.activities, activities...)
	return nil
}

type teacherRepoStub struct {
	teachers map[string]models.Teacher
	err      error
}

func (s *teacherRepoStub) GetByUsername(_ context.Context, username string) (models.Teacher, error) {
	if s.err != nil {
		return models.Teacher{}, s.err
	}
	teacher, ok := s.teachers[username]
	if !ok {
		return models.Teacher{}, repository.ErrNotFound
	}
	return teacher, nil
}

func (s *teacherRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.teachers)), nil
}

func (s *teacherRepoStub) CreateBatch(_ context.Context, teachers []models.Teacher) error {
	if s.teachers == nil {
		s.teachers = make(map[string]models.Teacher, len(teachers))
	}
	for _, teacher := range teachers {
		s.teachers[teacher.Username] = teacher
	}
	return nil
}
