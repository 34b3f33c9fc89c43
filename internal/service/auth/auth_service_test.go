package auth

import (
	"context"
	"testing"
	"time"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, "secret", time.Hour)

	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*domain.User)
		user.ID = 1
	}).Return(nil).Once()

	user, err := service.Register(ctx, RegisterInput{
		Email:    "test@example.com",
		Password: "supersecret",
		Name:     "Test User",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, domain.UserRoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, "secret", time.Hour)

	user, err := service.Register(context.Background(), RegisterInput{
		Email:    "test@example.com",
		Password: "short",
		Name:     "Test User",
	})

	assert.Nil(t, user)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_LoginAndParseToken(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, "secret", time.Hour)

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{
		ID:           7,
		Email:        "test@example.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}

	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

	token, err := service.Login(ctx, "test@example.com", "supersecret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := service.ParseToken(token.Value)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, string(domain.UserRoleAdmin), claims.Role)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, "secret", time.Hour)

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{ID: 7, Email: "test@example.com", PasswordHash: string(hash)}

	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

	token, err := service.Login(ctx, "test@example.com", "wrong-password")

	assert.Nil(t, token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, "secret", time.Hour)

	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound).Once()

	token, err := service.Login(ctx, "nobody@example.com", "supersecret")

	assert.Nil(t, token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ParseToken_WrongSecret(t *testing.T) {
	mockRepo := &MockUserRepository{}
	issuer := NewAuthService(mockRepo, "secret-a", time.Hour)
	verifier := NewAuthService(mockRepo, "secret-b", time.Hour)

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{ID: 7, Email: "test@example.com", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

	token, err := issuer.Login(ctx, "test@example.com", "supersecret")
	assert.NoError(t, err)

	claims, err := verifier.ParseToken(token.Value)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, "secret", -time.Minute)

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{ID: 7, Email: "test@example.com", PasswordHash: string(hash)}
	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

	token, err := service.Login(ctx, "test@example.com", "supersecret")
	assert.NoError(t, err)

	claims, err := service.ParseToken(token.Value)
	assert.Nil(t, claims)
	assert.Error(t, err)
}
