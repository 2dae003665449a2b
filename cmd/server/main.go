// @title                       Fitness App API
// @version                     1.0
// @description                 Профили, тренировочные планы и их генерация.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"log"

	"fitness-app/internal/config"
	"fitness-app/internal/database"
	"fitness-app/internal/server"
	"fitness-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}

	appLog.Info("configuration loaded", map[string]any{
		"address":      cfg.Server.Address(),
		"env":          cfg.AppEnv,
		"db":           cfg.Database.User + "@" + cfg.Database.Host + ":" + cfg.Database.Port + "/" + cfg.Database.DBName,
		"llm_provider": cfg.LLM.Provider,
		"llm_model":    cfg.LLM.Model,
	})

	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv, appLog)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLog.Error("database close failed", map[string]any{"error": err})
		}
	}()

	if cfg.MigrateOnStart {
		if err := migrate(cfg, appLog); err != nil {
			log.Fatalf("Ошибка применения миграций: %v", err)
		}
	}

	srv, err := server.NewServer(cfg, db, appLog)
	if err != nil {
		log.Fatalf("Ошибка инициализации сервера: %v", err)
	}
	if err := srv.Start(); err != nil {
		appLog.Error("server stopped with error", map[string]any{"error": err})
	}
}

// migrate работает через отдельное подключение: Close мигратора закрывает и его базу.
func migrate(cfg *config.Config, log logger.Logger) error {
	m, err := database.NewMigratorFromConfig(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("migrator close failed", map[string]any{"error": err})
		}
	}()
	return m.UpIfNeeded()
}
