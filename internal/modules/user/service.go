package user

import (
	"context"
	"errors"
	"strings"

	"lendshare/internal/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	users UserStore
	log   zerolog.Logger
}

func NewService(users UserStore, log zerolog.Logger) *Service {
	return &Service{users: users, log: log}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email != u.Email {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			u.Email = email
		}
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *Service) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
