package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "fitness-app/internal/domain/user"
	repo "fitness-app/internal/repository/interfaces"
	jwtsvc "fitness-app/pkg/jwt"
	"fitness-app/pkg/password"
)

// Service отвечает за регистрацию, вход и обновление токенов.
type Service interface {
	// Register создаёт пользователя и сразу выдаёт ему пару токенов.
	Register(ctx context.Context, email, password, username string) (*Session, error)

	// Login выполняет вход по email и паролю.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Refresh выдаёт новую пару токенов по действительному refresh-токену.
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
}

// Session связывает пользователя с выданной ему парой токенов.
type Session struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// Ошибки бизнес-логики.
var (
	ErrMissingFields       = errors.New("email, password and username are required")
	ErrWeakPassword        = errors.New("password does not meet requirements")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type service struct {
	users repo.UserRepository
	jwt   jwtsvc.Service
}

func NewService(users repo.UserRepository, jwt jwtsvc.Service) Service {
	return &service{users: users, jwt: jwt}
}

func (s *service) Register(ctx context.Context, email, rawPassword, username string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" || rawPassword == "" || username == "" {
		return nil, ErrMissingFields
	}
	if err := password.Validate(rawPassword); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(email, hashed, username)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *service) Login(ctx context.Context, email, rawPassword string) (*Session, error) {
	if email == "" || rawPassword == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := s.jwt.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	// мягко удалённым токены не выдаём
	if user.IsDeleted() {
		return nil, ErrInvalidRefreshToken
	}
	return s.issue(user)
}

func (s *service) issue(user *domain.User) (*Session, error) {
	pair, err := s.jwt.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, AccessToken: pair.Access, RefreshToken: pair.Refresh}, nil
}
