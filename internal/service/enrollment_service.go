package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mergington/activities-api/internal/repository"
)

// ErrAuthenticationRequired is returned when no teacher username accompanies
// a roster mutation.
var ErrAuthenticationRequired = errors.New("authentication required for this action")

// ErrInvalidTeacher is returned when the supplied teacher username is unknown.
var ErrInvalidTeacher = errors.New("invalid teacher credentials")

// ErrActivityNotFound is returned when the named activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the student is already on the roster.
var ErrAlreadySignedUp = errors.New("already signed up for this activity")

// ErrNotRegistered is returned when unregistering a student who is not on the
// roster.
var ErrNotRegistered = errors.New("not registered for this activity")

// ErrUpdateFailed is returned when the backend modified nothing even though
// every precondition passed; the request is not retried.
var ErrUpdateFailed = errors.New("failed to update activity")

// EnrollmentService mutates activity rosters on behalf of a teacher.
type EnrollmentService interface {
	Signup(ctx context.Context, activityName, email, teacherUsername string) (string, error)
	Unregister(ctx context.Context, activityName, email, teacherUsername string) (string, error)
}

type enrollmentService struct {
	activities repository.ActivityRepository
	teachers   repository.TeacherRepository
	logger     zerolog.Logger
}

// NewEnrollmentService builds the enrollment service.
func NewEnrollmentService(activities repository.ActivityRepository, teachers repository.TeacherRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		activities: activities,
		teachers:   teachers,
		logger:     logger.With().Str("component", "enrollment_service").Logger(),
	}
}

func (s *enrollmentService) Signup(ctx context.Context, activityName, email, teacherUsername string) (string, error) {
	if err := s.mutate(ctx, activityName, email, teacherUsername, repository.ParticipantAdd); err != nil {
		return "", err
	}

	s.logger.Info().Str("activity", activityName).Str("email", email).Str("teacher", teacherUsername).Msg("student signed up")

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *enrollmentService) Unregister(ctx context.Context, activityName, email, teacherUsername string) (string, error) {
	if err := s.mutate(ctx, activityName, email, teacherUsername, repository.ParticipantRemove); err != nil {
		return "", err
	}

	s.logger.Info().Str("activity", activityName).Str("email", email).Str("teacher", teacherUsername).Msg("student unregistered")

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// mutate runs the shared precondition chain. The first failing check decides
// the error: missing username, unknown teacher, unknown activity, then the
// roster membership check for the requested operation.
//
// Teacher presence alone authorizes the mutation; no password is re-verified
// here. That is intentionally weaker than login.
func (s *enrollmentService) mutate(ctx context.Context, activityName, email, teacherUsername string, op repository.ParticipantOp) error {
	if teacherUsername == "" {
		return ErrAuthenticationRequired
	}

	if _, err := s.teachers.GetByUsername(ctx, teacherUsername); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidTeacher
		}
		return err
	}

	activity, err := s.activities.GetByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		return err
	}

	registered := activity.HasParticipant(email)
	switch op {
	case repository.ParticipantAdd:
		if registered {
			return ErrAlreadySignedUp
		}
	case repository.ParticipantRemove:
		if !registered {
			return ErrNotRegistered
		}
	}

	if err := s.activities.UpdateParticipants(ctx, activityName, op, email); err != nil {
		// The membership check passed, so a not-modified or vanished record
		// means a concurrent request got there first.
		if errors.Is(err, repository.ErrNotModified) || errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().Err(err).Str("activity", activityName).Str("email", email).Msg("roster update modified nothing")
			return ErrUpdateFailed
		}
		return err
	}

	return nil
}
