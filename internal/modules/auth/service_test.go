package auth

import (
	"context"
	"testing"

	"lendshare/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(userID int64) (string, error) { return "token", nil }

func TestRegister_Success(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeTokenIssuer{}, zerolog.Nop())

	users.On("GetByEmail", mock.Anything, "ann@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email: "Ann@Example.com", Name: "Ann", Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-password")))
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeTokenIssuer{}, zerolog.Nop())

	users.On("GetByEmail", mock.Anything, "ann@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "ann@example.com", Name: "Ann", Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeTokenIssuer{}, zerolog.Nop())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "ann@example.com").Return(&domain.User{
		ID: 1, Email: "ann@example.com", PasswordHash: string(hash),
	}, nil)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "ann@example.com", Password: "secret-password"})
	assert.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeTokenIssuer{}, zerolog.Nop())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "ann@example.com").Return(&domain.User{
		ID: 1, Email: "ann@example.com", PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ann@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeTokenIssuer{}, zerolog.Nop())

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
