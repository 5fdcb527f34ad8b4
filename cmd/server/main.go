// @title           MyCondominium API
// @version         1.0
// @description     Multi-tenant condominium management backend: communities, residents, reservations, invoices, incidents, parcels, vehicles, elections and maintenance schedules.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        X-Auth-Token
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/app/routes"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/tasks"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/database"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/notification"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "mycondominium-backend",
		Usage: "Condominium management REST backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the API server, mail consumer and background tasks",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return serve(ctx)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations and exit",
				Action: func(ctx context.Context, _ *cli.Command) error {
					cfg, err := bootstrap()
					if err != nil {
						return err
					}
					pool, err := database.NewConnectionPool(cfg)
					if err != nil {
						return fmt.Errorf("connect database: %w", err)
					}
					defer pool.Close()
					return migrate(pool.GetDB())
				},
			},
			{
				Name:  "docs",
				Usage: "Regenerate the swagger documentation",
				Action: func(ctx context.Context, _ *cli.Command) error {
					// Generation runs through the swag CLI; this command
					// only points there so `docs` shows up in help output.
					fmt.Println("run: swag init -g cmd/server/main.go -o docs")
					return nil
				},
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return serve(ctx)
		},
	}
}

// bootstrap sets up logging and loads configuration from the environment,
// reading .env first when present.
func bootstrap() (*config.Config, error) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("loaded .env file")
	}

	cfg := config.GetConfig()
	if err := logger.SetupLogger(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := seedRootAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed root admin: %w", err)
	}

	// Mail pipeline: producers publish to NATS, the in-process consumer
	// delivers over SMTP.
	nc, err := notification.ConnectNATS(cfg.NATSURL)
	if err != nil {
		return fmt.Errorf("connect NATS: %w", err)
	}
	defer nc.Drain()

	mailPublisher := notification.NewNATSMailPublisher(nc, cfg.MailSubject)
	mailConsumer := notification.NewMailConsumer(nc, cfg.MailSubject, cfg.MailQueue, notification.NewSMTPSender(cfg))
	if err := mailConsumer.Start(); err != nil {
		return fmt.Errorf("start mail consumer: %w", err)
	}
	defer mailConsumer.Stop()

	// Community notices go out over MQTT. The broker being down degrades
	// notices to log lines, it does not block startup.
	var notices notification.NoticePublisher
	if broker, err := notification.NewMQTTNoticeBroker(cfg); err != nil {
		logger.Warning("MQTT broker unavailable, community notices disabled: %v", err)
	} else {
		notices = broker
		defer broker.Disconnect()
	}

	serviceContainer := container.NewServiceContainer(db, cfg, mailPublisher, notices)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	sweeper := tasks.NewReservationSweeper(
		serviceContainer.GetService("reservation").(services.InterfaceReservationService))
	cleaner := tasks.NewResetTokenCleaner(
		serviceContainer.GetService("password_reset").(services.InterfacePasswordResetService))
	wg.Add(2)
	go func() { defer wg.Done(); sweeper.Start(runCtx) }()
	go func() { defer wg.Done(); cleaner.Start(runCtx) }()

	router := routes.SetupRouter(db, cfg, serviceContainer)
	srv := &http.Server{
		Addr:              cfg.GetServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-runCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			stop()
			wg.Wait()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown: %v", err)
	}

	stop()
	wg.Wait()
	return nil
}

// migrate creates or updates every table.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Community{},
		&models.Admin{},
		&models.Resident{},
		&models.User{},
		&models.UserRole{},
		&models.AuthToken{},
		&models.PasswordResetToken{},
		&models.CommonArea{},
		&models.Reservation{},
		&models.Invoice{},
		&models.Incident{},
		&models.Parcel{},
		&models.Vehicle{},
		&models.Election{},
		&models.ElectionCandidate{},
		&models.ElectionVote{},
		&models.MaintenanceSchedule{},
	)
}

// seedRootAdmin guarantees one root login exists. Runs on every start and
// does nothing when the configured root email is already registered.
func seedRootAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.RootAdminEmail == "" || cfg.RootAdminPassword == "" {
		logger.Warning("root admin credentials not configured, skipping seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).
		Where("email = ?", cfg.RootAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.RootAdminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.Admin{
			FirstName: "Root",
			LastName:  "Admin",
			Email:     cfg.RootAdminEmail,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		user := models.User{
			EntityID:     admin.ID,
			EntityType:   models.EntityAdmin,
			PasswordHash: hash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		role := models.UserRole{
			UserID: user.ID,
			Role:   models.RoleRoot,
		}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		logger.Info("seeded root admin %s", cfg.RootAdminEmail)
		return nil
	})
}
