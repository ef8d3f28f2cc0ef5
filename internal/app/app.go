package app

import (
	"fmt"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logging, database, migrations and
// the HTTP server. It blocks until the server exits.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate applies the schema. uuid_generate_v4 defaults need the uuid-ossp
// extension.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.CandidateProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
	)
}

// SetupRouter assembles storage, mailer, services, handlers and routes into a
// ready gin engine. Split from Run so tests can build one against their own
// database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer := initializeMailer(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, store, mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, cfg.Storage.BasePath)

	return router
}

func initializeMailer(cfg *config.Config) email.Mailer {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, using noop mailer")
		return email.NoopMailer{}
	}

	mailer, err := email.NewSMTPMailer(cfg)
	if err != nil {
		logger.Warn("SMTP misconfigured, falling back to noop mailer", "error", err)
		return email.NoopMailer{}
	}
	logger.Info("SMTP mailer initialized", "host", cfg.Email.SMTPHost)
	return mailer
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
