package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"marketplace_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a
	// user with the same email is already present.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (platform/jwt).
type TokenIssuer interface {
	// GenerateToken creates a signed token carrying the user's identity.
	GenerateToken(userID uint, email string) (string, error)
}

// AuthResult carries the outcome of a successful registration or login.
type AuthResult struct {
	Token string
	User  *entity.User
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// validatePassword checks the password against the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and issues a token.
// It returns ErrEmailAlreadyExists when the email is taken.
func (u *authUsecase) Register(ctx context.Context, name, email, phone, password string) (*AuthResult, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Phone: phone, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates a user and issues a token on success.
// A dummy bcrypt comparison runs even when the email is unknown so that the
// response time does not reveal whether the account exists.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown emails.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Unknown email and wrong password collapse into the same error.
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// CurrentUser resolves a verified token subject to the stored user.
// It returns ErrUserNotFound when the identity no longer exists.
func (u *authUsecase) CurrentUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
