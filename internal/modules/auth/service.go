package auth

import (
	"context"
	"errors"
	"strings"

	"lendshare/internal/domain"
	"lendshare/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

type Service struct {
	users UserStore
	jwt   tokenIssuer
	log   zerolog.Logger
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserStore, jwt tokenIssuer, log zerolog.Logger) *Service {
	return &Service{users: users, jwt: jwt, log: log}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// the unique index catches a concurrent registration of the same email
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info().Int64("user_id", u.ID).Msg("user registered")
	return u, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, AccessToken: token}, nil
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
