package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"fitness-app/internal/config"
	"fitness-app/internal/database"
	"fitness-app/pkg/logger"
)

func main() {
	var (
		up      = flag.Bool("up", false, "Применить все доступные миграции (по умолчанию)")
		down    = flag.Bool("down", false, "Откатить последнюю миграцию")
		steps   = flag.Int("steps", 0, "Применить (N > 0) или откатить (N < 0) N миграций")
		version = flag.Bool("version", false, "Показать текущую версию миграции")
		force   = flag.Int("force", -1, "Принудительно выставить версию после прерванной миграции")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Использование: %s [опции]\n\nОпции:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nПримеры:\n")
		fmt.Fprintf(os.Stderr, "  %s              # Применить все миграции\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -down        # Откатить последнюю миграцию\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -steps -2    # Откатить 2 миграции\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -force 2     # Снять dirty, выставив версию 2\n", os.Args[0])
	}
	flag.Parse()

	actions := 0
	for _, set := range []bool{*up, *down, *steps != 0, *version, *force >= 0} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		log.Fatal("Ошибка: можно указать только одно действие за раз")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}

	migrator, err := database.NewMigratorFromConfig(&cfg.Database, appLog)
	if err != nil {
		log.Fatalf("Ошибка создания мигратора: %v", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			appLog.Warn("migrator close failed", map[string]any{"error": err})
		}
	}()

	switch {
	case *version:
		err = printVersion(migrator)
	case *force >= 0:
		err = migrator.Force(*force)
	case *down:
		err = noChangeOK(migrator.Down(), appLog)
	case *steps != 0:
		err = noChangeOK(migrator.Steps(*steps), appLog)
	default:
		err = noChangeOK(migrator.Up(), appLog)
	}
	if err != nil {
		appLog.Error("migration failed", map[string]any{"error": err})
		os.Exit(1)
	}
}

func noChangeOK(err error, log logger.Logger) error {
	if errors.Is(err, database.ErrNoChange) {
		log.Info("no migrations to apply", nil)
		return nil
	}
	return err
}

func printVersion(m *database.Migrator) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	switch {
	case v == 0:
		fmt.Println("Версия: нет примененных миграций")
	case dirty:
		fmt.Printf("Версия: %d (dirty, требуется -force)\n", v)
		return database.ErrDirtyState
	default:
		fmt.Printf("Версия: %d\n", v)
	}
	return nil
}
