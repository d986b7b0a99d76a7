package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"marketplace_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	return "mock-jwt-token", nil
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if user.Password == "" || user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 7
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		res, err := uc.Register(ctx, "John Doe", "test@example.com", "+91 1234", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "mock-jwt-token" {
			t.Errorf("expected token, got %q", res.Token)
		}
		if res.User.ID != 7 || res.User.Name != "John Doe" || res.User.Phone != "+91 1234" {
			t.Errorf("unexpected user: %+v", res.User)
		}
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Register(ctx, "John", "test@example.com", "", "short")

		if err == nil {
			t.Fatal("expected error for short password")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(ctx, "John", "existing@example.com", "", "password123")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Name:     "John Doe",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockTokenIssuer{})
		res, err := uc.Login(ctx, testUser.Email, password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "mock-jwt-token" {
			t.Errorf("expected token, got %q", res.Token)
		}
		if res.User.ID != testUser.ID {
			t.Errorf("expected user %d, got %d", testUser.ID, res.User.ID)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockTokenIssuer{})

		_, wrongPassErr := uc.Login(ctx, testUser.Email, "wrong-password")
		_, unknownErr := uc.Login(ctx, "nobody@example.com", password)

		if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for wrong password, got: %v", wrongPassErr)
		}
		if !errors.Is(unknownErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown email, got: %v", unknownErr)
		}
		if wrongPassErr.Error() != unknownErr.Error() {
			t.Errorf("errors differ: %q vs %q", wrongPassErr, unknownErr)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		issuer := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				return "", errors.New("signing failed")
			},
		}
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, issuer)

		_, err := uc.Login(ctx, testUser.Email, password)
		if err == nil {
			t.Fatal("expected error when token generation fails")
		}
	})
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves existing user", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				if id == 42 {
					return &entity.User{ID: 42, Email: "found@example.com"}, nil
				}
				return nil, ErrUserNotFound
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})

		user, err := uc.CurrentUser(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 42 {
			t.Errorf("expected user 42, got %d", user.ID)
		}
	})

	t.Run("deleted identity", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})

		_, err := uc.CurrentUser(ctx, 99)
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}
