package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "fitness-app/internal/domain/user"
	repo "fitness-app/internal/repository/interfaces"
)

const (
	constraintUsersEmail    = "idx_users_email_unique"
	constraintUsersUsername = "idx_users_username_unique"
)

// pgUser описывает строку таблицы users.
type pgUser struct {
	ID           string     `gorm:"column:id;type:uuid;primaryKey"`
	Email        string     `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null"`
	Username     string     `gorm:"column:username;type:varchar(50);not null"`
	FirstName    string     `gorm:"column:first_name;type:varchar(100)"`
	LastName     string     `gorm:"column:last_name;type:varchar(100)"`
	Role         string     `gorm:"column:role;type:text;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;type:timestamptz;not null"`
	DeletedAt    *time.Time `gorm:"column:deleted_at;type:timestamptz"`
}

func (pgUser) TableName() string {
	return "users"
}

// UserRepository реализует repo.UserRepository на GORM.
type UserRepository struct {
	db *gorm.DB
}

var _ repo.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (m *pgUser) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           id,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Username:     m.Username,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}, nil
}

func userFromDomain(u *domain.User) *pgUser {
	return &pgUser{
		ID:           u.ID.String(),
		Email:        strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		DeletedAt:    u.DeletedAt,
	}
}

// mapUserWriteError переводит конфликты уникальности в доменные ошибки.
func mapUserWriteError(err error) error {
	switch {
	case isUniqueViolation(err, constraintUsersEmail):
		return repo.ErrEmailExists
	case isUniqueViolation(err, constraintUsersUsername):
		return repo.ErrUsernameExists
	case isConstraintViolation(err):
		return repo.ErrConstraintViolation
	}
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(userFromDomain(user)).Error; err != nil {
		return mapUserWriteError(err)
	}
	return nil
}

// oneByCondition возвращает одну активную запись по условию.
func (r *UserRepository) oneByCondition(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var model pgUser
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Where(query, args...).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.oneByCondition(ctx, "id = ?", id.String())
}

// GetByEmail ищет без учёта регистра, как и уникальный индекс.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.oneByCondition(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.oneByCondition(ctx, "username = ?", username)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var models []pgUser
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(models))
	for i := range models {
		u, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	model := userFromDomain(user)

	// updated_at выставляет триггер update_users_updated_at
	result := r.db.WithContext(ctx).
		Model(&pgUser{}).
		Where("id = ? AND deleted_at IS NULL", model.ID).
		Updates(map[string]any{
			"email":      model.Email,
			"username":   model.Username,
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"role":       model.Role,
		})
	if result.Error != nil {
		return mapUserWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&pgUser{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
