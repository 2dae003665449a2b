// dbcheck ждёт готовности PostgreSQL и проверяет, что схема приложения применена.
// Используется перед запуском сервера в docker-compose и CI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fitness-app/internal/config"
	"fitness-app/internal/database"
	"fitness-app/pkg/logger"
)

var requiredTables = []string{"users", "user_profiles", "training_plans"}

func main() {
	var (
		attempts = flag.Int("attempts", 10, "Сколько раз пытаться подключиться")
		interval = flag.Duration("interval", 2*time.Second, "Пауза между попытками")
		schema   = flag.Bool("schema", true, "Проверять версию схемы и наличие таблиц")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}

	// вне контейнера docker-имя хоста не резолвится
	if cfg.Database.Host == "postgres" && !inDocker() {
		appLog.Warn("DB_HOST=postgres outside docker, using localhost", nil)
		cfg.Database.Host = "localhost"
	}

	opts := options{attempts: *attempts, interval: *interval, schema: *schema}
	if err := run(cfg, appLog, opts); err != nil {
		appLog.Error("database check failed", map[string]any{"error": err, "host": cfg.Database.Host})
		os.Exit(1)
	}
	fmt.Println("База данных готова к работе.")
}

type options struct {
	attempts int
	interval time.Duration
	schema   bool
}

// run проверяет базу и закрывает соединение до возврата; os.Exit вызывает только main.
func run(cfg *config.Config, log logger.Logger, opts options) error {
	db, err := connect(cfg, log, opts.attempts, opts.interval)
	if err != nil {
		return fmt.Errorf("база недоступна: %w", err)
	}
	defer func() { _ = db.Close() }()

	if !opts.schema {
		return nil
	}
	if err := checkSchema(cfg, db, log); err != nil {
		return fmt.Errorf("проверка схемы: %w", err)
	}
	return nil
}

func connect(cfg *config.Config, log logger.Logger, attempts int, interval time.Duration) (*database.DB, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := database.NewConnection(&cfg.Database, cfg.AppEnv, log)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = db.Ping(ctx)
			cancel()
			if err == nil {
				return db, nil
			}
			_ = db.Close()
		}
		lastErr = err
		log.Warn("database not ready", map[string]any{"attempt": i, "error": err})
		time.Sleep(interval)
	}
	return nil, fmt.Errorf("после %d попыток: %w", attempts, lastErr)
}

func checkSchema(cfg *config.Config, db *database.DB, log logger.Logger) error {
	m, err := database.NewMigratorFromConfig(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if dirty {
		return database.ErrDirtyState
	}
	if version == 0 {
		return errors.New("миграции не применены, запустите cmd/migrate")
	}

	for _, table := range requiredTables {
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("таблица %s отсутствует", table)
		}
	}
	log.Info("schema ok", map[string]any{"version": version})
	return nil
}

func inDocker() bool {
	if os.Getenv("container") != "" {
		return true
	}
	_, err := os.Stat("/.dockerenv")
	return err == nil
}
