package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fitness-app/internal/config"
	domain "fitness-app/internal/domain/user"
)

// TokenType различает access и refresh токены внутри пейлоада.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// ErrWrongTokenType: токен подписан верно, но выпущен для другой цели.
var ErrWrongTokenType = errors.New("wrong token type")

// Claims — пейлоад токена. Идентификатор пользователя лежит в sub.
// Email и роль есть только в access-токене.
type Claims struct {
	Type  TokenType `json:"typ"`
	Email string    `json:"email,omitempty"`
	Role  string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID разбирает sub как uuid пользователя.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Pair — выданная пользователю пара токенов.
type Pair struct {
	Access           string
	Refresh          string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Service выпускает и проверяет токены сессии.
type Service interface {
	Issue(user *domain.User) (Pair, error)
	ParseAccess(token string) (*Claims, error)
	ParseRefresh(token string) (*Claims, error)
}

type service struct {
	cfg    *config.JWTConfig
	parser *jwt.Parser
	now    func() time.Time
}

func NewService(cfg *config.JWTConfig) Service {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return &service{
		cfg:    cfg,
		parser: jwt.NewParser(opts...),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Issue(user *domain.User) (Pair, error) {
	now := s.now()
	pair := Pair{
		AccessExpiresAt:  now.Add(s.cfg.AccessTTL),
		RefreshExpiresAt: now.Add(s.cfg.RefreshTTL),
	}

	var err error
	pair.Access, err = s.sign(&Claims{
		Type:             TokenAccess,
		Email:            user.Email,
		Role:             string(user.Role),
		RegisteredClaims: s.registered(user, now, pair.AccessExpiresAt),
	}, s.cfg.AccessSecret)
	if err != nil {
		return Pair{}, fmt.Errorf("sign access token: %w", err)
	}

	pair.Refresh, err = s.sign(&Claims{
		Type:             TokenRefresh,
		RegisteredClaims: s.registered(user, now, pair.RefreshExpiresAt),
	}, s.cfg.RefreshSecret)
	if err != nil {
		return Pair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return pair, nil
}

func (s *service) ParseAccess(token string) (*Claims, error) {
	return s.parse(token, TokenAccess, s.cfg.AccessSecret)
}

func (s *service) ParseRefresh(token string) (*Claims, error) {
	return s.parse(token, TokenRefresh, s.cfg.RefreshSecret)
}

func (s *service) registered(user *domain.User, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    s.cfg.Issuer,
		Subject:   user.ID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (s *service) sign(claims *Claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (s *service) parse(token string, want TokenType, secret string) (*Claims, error) {
	claims := &Claims{}
	if _, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, err
	}
	// при совпадающих секретах подпись не отличает access от refresh
	if claims.Type != want {
		return nil, ErrWrongTokenType
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", jwt.ErrTokenInvalidClaims)
	}
	return claims, nil
}
