package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitness-app/internal/domain/profile"
	repo "fitness-app/internal/repository/interfaces"
)

// pgProfile описывает строку таблицы user_profiles.
type pgProfile struct {
	ID               string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID           string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Gender           string    `gorm:"column:gender;type:char(1);not null"`
	Weight           float64   `gorm:"column:weight;type:numeric(5,2);not null"`
	Height           float64   `gorm:"column:height;type:numeric(5,2);not null"`
	Age              int       `gorm:"column:age;not null"`
	ExperienceLevel  string    `gorm:"column:experience_level;type:varchar(3);not null"`
	FitnessGoal      string    `gorm:"column:fitness_goal;type:varchar(20);not null"`
	AvailableDays    int       `gorm:"column:available_days;not null"`
	HealthConditions string    `gorm:"column:health_conditions;type:text;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (pgProfile) TableName() string {
	return "user_profiles"
}

// ProfileRepository реализует repo.ProfileRepository на GORM.
type ProfileRepository struct {
	db *gorm.DB
}

var _ repo.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (m *pgProfile) toDomain() (*profile.Profile, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	return &profile.Profile{
		ID:               id,
		UserID:           userID,
		Gender:           profile.Gender(m.Gender),
		Weight:           m.Weight,
		Height:           m.Height,
		Age:              m.Age,
		ExperienceLevel:  profile.ExperienceLevel(m.ExperienceLevel),
		FitnessGoal:      profile.FitnessGoal(m.FitnessGoal),
		AvailableDays:    m.AvailableDays,
		HealthConditions: m.HealthConditions,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

func profileFromDomain(p *profile.Profile) *pgProfile {
	return &pgProfile{
		ID:               p.ID.String(),
		UserID:           p.UserID.String(),
		Gender:           string(p.Gender),
		Weight:           p.Weight,
		Height:           p.Height,
		Age:              p.Age,
		ExperienceLevel:  string(p.ExperienceLevel),
		FitnessGoal:      string(p.FitnessGoal),
		AvailableDays:    p.AvailableDays,
		HealthConditions: p.HealthConditions,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	var model pgProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

// Upsert проверяет инварианты профиля, затем вставляет строку или
// обновляет существующую по user_id. id и created_at существующей строки сохраняются.
func (r *ProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return errors.Join(repo.ErrConstraintViolation, err)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gender", "weight", "height", "age", "experience_level",
				"fitness_goal", "available_days", "health_conditions", "updated_at",
			}),
		}).
		Create(profileFromDomain(p)).Error
	if err != nil {
		if isConstraintViolation(err) {
			return errors.Join(repo.ErrConstraintViolation, err)
		}
		return err
	}
	return nil
}
