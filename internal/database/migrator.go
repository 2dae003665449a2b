package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // драйвер database/sql для отдельного подключения мигратора

	"fitness-app/internal/config"
	"fitness-app/internal/database/migrations"
	"fitness-app/pkg/logger"
)

var (
	// ErrNoChange: нет миграций для применения или отката.
	ErrNoChange = errors.New("no change")

	// ErrDirtyState: предыдущая миграция прервана, нужна ручная правка версии.
	ErrDirtyState = errors.New("database is in dirty state")
)

// Migrator управляет версиями схемы через golang-migrate и встроенные SQL-файлы.
type Migrator struct {
	m   *migrate.Migrate
	log logger.Logger
}

// NewMigrator создаёт мигратор поверх уже открытого подключения.
func NewMigrator(db *DB) (*Migrator, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения sql.DB: %w", err)
	}
	return newMigrator(sqlDB, db.log)
}

// NewMigratorFromConfig открывает отдельное подключение через lib/pq.
func NewMigratorFromConfig(cfg *config.DatabaseConfig, log logger.Logger) (*Migrator, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия подключения: %w", err)
	}
	m, err := newMigrator(sqlDB, log)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return m, nil
}

func newMigrator(sqlDB *sql.DB, log logger.Logger) (*Migrator, error) {
	if log == nil {
		log = logger.Nop()
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания драйвера PostgreSQL: %w", err)
	}

	src, err := Source()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания экземпляра migrate: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

// Source возвращает источник встроенных миграций.
func Source() (source.Driver, error) {
	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("ошибка создания источника миграций: %w", err)
	}
	return src, nil
}

// Close освобождает источник и подключение мигратора.
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("ошибка закрытия источника миграций: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("ошибка закрытия подключения к БД: %w", dbErr)
	}
	return nil
}

// Up применяет все миграции. Возвращает ErrNoChange, если схема актуальна.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return ErrNoChange
		}
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}
	m.log.Info("migrations applied", nil)
	return nil
}

// UpIfNeeded применяет миграции и считает актуальную схему нормой. Используется при старте сервера.
func (m *Migrator) UpIfNeeded() error {
	if dirty, err := m.CheckDirty(); dirty || err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, ErrNoChange) {
		return err
	}
	return nil
}

// Down откатывает одну последнюю миграцию.
func (m *Migrator) Down() error {
	return m.Steps(-1)
}

// Steps применяет (n > 0) или откатывает (n < 0) n миграций.
func (m *Migrator) Steps(n int) error {
	if err := m.m.Steps(n); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return ErrNoChange
		}
		return fmt.Errorf("ошибка выполнения %d шагов миграции: %w", n, err)
	}
	m.log.Info("migration steps applied", map[string]any{"steps": n})
	return nil
}

// Version возвращает текущую версию схемы и флаг dirty.
// Если миграции не применялись, версия 0.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("ошибка получения версии: %w", err)
	}
	return version, dirty, nil
}

// Force выставляет версию без выполнения миграций. Только для восстановления после dirty.
func (m *Migrator) Force(version int) error {
	if err := m.m.Force(version); err != nil {
		return fmt.Errorf("ошибка принудительной установки версии %d: %w", version, err)
	}
	m.log.Warn("migration version forced", map[string]any{"version": version})
	return nil
}

// CheckDirty возвращает (true, ErrDirtyState), если схема в грязном состоянии.
func (m *Migrator) CheckDirty() (bool, error) {
	_, dirty, err := m.Version()
	if err != nil {
		return false, err
	}
	if dirty {
		return true, ErrDirtyState
	}
	return false, nil
}
