package impl

import (
	"context"
	"log/slog"
	"testing"

	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/repository"
	mockRepo "helppro/internal/mocks/repository"
	mockService "helppro/internal/mocks/service"
	"helppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// passthroughTxManager returns a transaction manager that simply runs the
// callback against the given factory, standing in for a real transaction.
func passthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func TestAuthService_Signup_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("password123").Return("hashed-password", nil)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    passthroughTxManager(t, factory),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "mario@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 42

			return nil
		})

	user, err := svc.Signup(ctx, &usecase.SignupInput{
		Email:    "mario@example.com",
		FullName: "Mario Rossi",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "mario@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.HashedPassword)
	assert.Equal(t, entity.RoleClient, user.Role)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("password123").Return("hashed-password", nil)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    passthroughTxManager(t, factory),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "mario@example.com").
		Return(&entity.User{ID: 1, Email: "mario@example.com"}, nil)

	_, err := svc.Signup(ctx, &usecase.SignupInput{
		Email:    "mario@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "mario@example.com").
		Return(&entity.User{ID: 1, Email: "mario@example.com", HashedPassword: "hashed"}, nil)
	hasher.EXPECT().Check("password123", "hashed").Return(true)
	tokenService.EXPECT().GenerateToken("mario@example.com").Return("signed-token", nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "mario@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "mario@example.com").
		Return(&entity.User{ID: 1, Email: "mario@example.com", HashedPassword: "hashed"}, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "mario@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	// Unknown email and wrong password must be indistinguishable to callers.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_CurrentUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "mario@example.com").
		Return(&entity.User{ID: 1, Email: "mario@example.com"}, nil)

	user, err := svc.CurrentUser(ctx, "mario@example.com")
	require.NoError(t, err)
	assert.Equal(t, "mario@example.com", user.Email)
}

func TestAuthService_CurrentUser_Disabled(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "mario@example.com").
		Return(&entity.User{ID: 1, Email: "mario@example.com", Disabled: true}, nil)

	_, err := svc.CurrentUser(ctx, "mario@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)
}

func TestAuthService_CurrentUser_UnknownSubject(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       testLogger(),
	})

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.CurrentUser(ctx, "ghost@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
