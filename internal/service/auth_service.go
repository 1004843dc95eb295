package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mergington/activities-api/internal/dto"
	"github.com/mergington/activities-api/internal/password"
	"github.com/mergington/activities-api/internal/repository"
)

// ErrInvalidCredentials is returned by Login for an unknown username and for
// a wrong password alike; callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrTeacherNotFound is returned by CheckSession when the username is
// unknown. Unlike Login this error is specific.
var ErrTeacherNotFound = errors.New("teacher not found")

// AuthService verifies teacher credentials and reports teacher identity.
type AuthService interface {
	Login(ctx context.Context, username, plaintext string) (dto.TeacherIdentity, error)
	CheckSession(ctx context.Context, username string) (dto.TeacherIdentity, error)
}

type authService struct {
	teachers repository.TeacherRepository
	logger   zerolog.Logger
}

// NewAuthService builds the auth service.
func NewAuthService(teachers repository.TeacherRepository, logger zerolog.Logger) AuthService {
	return &authService{
		teachers: teachers,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, username, plaintext string) (dto.TeacherIdentity, error) {
	teacher, err := s.teachers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.TeacherIdentity{}, ErrInvalidCredentials
		}
		return dto.TeacherIdentity{}, err
	}

	// Any verification failure, including a malformed stored hash, collapses
	// into the same credential error so nothing internal leaks to the caller.
	if err := password.Verify(teacher.Password, plaintext); err != nil {
		s.logger.Debug().Str("username", username).Msg("password verification failed")
		return dto.TeacherIdentity{}, ErrInvalidCredentials
	}

	return dto.TeacherIdentityFromModel(teacher), nil
}

func (s *authService) CheckSession(ctx context.Context, username string) (dto.TeacherIdentity, error) {
	teacher, err := s.teachers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.TeacherIdentity{}, ErrTeacherNotFound
		}
		return dto.TeacherIdentity{}, err
	}

	return dto.TeacherIdentityFromModel(teacher), nil
}
