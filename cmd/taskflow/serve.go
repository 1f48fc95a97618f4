package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/taskflow/internal/api"
	"github.com/terraincognita07/taskflow/internal/db"
	"github.com/terraincognita07/taskflow/internal/i18n"
	"github.com/terraincognita07/taskflow/internal/notify"
	"github.com/terraincognita07/taskflow/internal/services"
	"gorm.io/gorm"
)

type application struct {
	app        *fiber.App
	database   *gorm.DB
	scheduler  *services.ReminderScheduler
	dispatcher *notify.Dispatcher
}

// closeDatabase releases the sqlite handle.
var closeDatabase = func(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (built *application) close() {
	if err := closeDatabase(built.database); err != nil {
		log.Printf("database close failed: %v", err)
	}
}

// buildApplication closes the database again when any later step fails.
func buildApplication(ctx context.Context, cfg config) (built *application, err error) {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if closeErr := closeDatabase(database); closeErr != nil {
			log.Printf("database close failed: %v", closeErr)
		}
	}()

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	platform, err := buildNotificationPlatform(ctx, cfg, repositories)
	if err != nil {
		return nil, err
	}

	scheduler := services.NewReminderScheduler(platform, i18nManager.Reminders(i18nManager.DefaultLanguage()), cfg.Location)
	accounts := services.NewAccountService(repositories.Store)
	tasks := services.NewTaskService(repositories.Store, scheduler)

	handler, err := api.NewHandler(api.Services{
		Accounts:  accounts,
		Tasks:     tasks,
		Subjects:  services.NewSubjectService(repositories.Store, tasks),
		Summary:   services.NewSummaryService(accounts, tasks),
		Reminders: scheduler,
	}, i18nManager)
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "TaskFlow",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	built = &application{app: app, database: database, scheduler: scheduler}
	if cfg.ReminderBackend == reminderBackendLocal {
		built.dispatcher = notify.NewDispatcher(repositories.Reminders, reminderSender(), cfg.PollInterval)
	}
	return built, nil
}

// buildNotificationPlatform picks where reminders live. The google backend
// needs a token from authorize-calendar.
func buildNotificationPlatform(ctx context.Context, cfg config, repositories *db.Repositories) (services.NotificationPlatform, error) {
	switch cfg.ReminderBackend {
	case reminderBackendGoogle:
		service, err := notify.NewCalendarService(ctx, cfg.CredentialsFile, cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("calendar init failed: %w", err)
		}
		calendarID, err := notify.ResolveCalendarID(ctx, service, cfg.CalendarName)
		if err != nil {
			return nil, fmt.Errorf("calendar init failed: %w", err)
		}
		return notify.NewCalendarPlatform(service, calendarID), nil
	case reminderBackendOff:
		return notify.NewLocalPlatform(repositories.Reminders, cfg.ReminderQuota, false), nil
	default:
		return notify.NewLocalPlatform(repositories.Reminders, cfg.ReminderQuota, true), nil
	}
}

func reminderSender() notify.Sender {
	if sender, ok := notify.NewTelegramSenderFromEnv(); ok {
		return sender
	}
	return notify.LogSender{}
}

func runServe(cfg config) error {
	time.Local = cfg.Location

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	built, err := buildApplication(lifecycleCtx, cfg)
	if err != nil {
		return err
	}
	defer built.close()

	if !built.scheduler.RequestPermission(lifecycleCtx) {
		log.Printf("reminders: permission denied, tasks will be saved without reminders")
	}
	if built.dispatcher != nil {
		built.dispatcher.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := built.app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("TaskFlow listening on http://0.0.0.0:%s (db: %s, tz: %s, reminders: %s)", cfg.Port, cfg.DBPath, cfg.Location.String(), cfg.ReminderBackend)
	if err := built.app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
