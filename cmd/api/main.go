package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/herbarium/herbarium-backend/internal/config"
	"github.com/herbarium/herbarium-backend/internal/handler"
	"github.com/herbarium/herbarium-backend/internal/middleware"
	"github.com/herbarium/herbarium-backend/internal/repository"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/database"
	"github.com/herbarium/herbarium-backend/pkg/email"
	"github.com/herbarium/herbarium-backend/pkg/logger"
	"github.com/herbarium/herbarium-backend/pkg/storage"
	"github.com/herbarium/herbarium-backend/pkg/token"
	"github.com/herbarium/herbarium-backend/pkg/utils"
)

func main() {
	// .env is optional outside development.
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	herbariumTypeRepo := repository.NewHerbariumTypeRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	plantImageRepo := repository.NewPlantImageRepository(db)
	logRepo := repository.NewLogEventRepository(db)

	// File storage
	fileStorage, err := newStorage(cfg)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	// Services
	tokenService := token.NewService(cfg.JWTSecret, cfg.TokenExpiry)
	emailService := email.NewEmailService(cfg.Email)
	authService := service.NewAuthService(userRepo, tokenService, emailService, log)
	herbariumTypeService := service.NewHerbariumTypeService(herbariumTypeRepo, logRepo, log)
	familyService := service.NewFamilyService(familyRepo, herbariumTypeRepo, logRepo, log)
	plantService := service.NewPlantService(plantRepo, familyRepo, logRepo, log)
	plantImageService := service.NewPlantImageService(plantImageRepo, plantRepo, fileStorage, logRepo, log)
	logService := service.NewLogService(logRepo)

	// Handlers
	validator := utils.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator)
	herbariumTypeHandler := handler.NewHerbariumTypeHandler(herbariumTypeService, validator)
	familyHandler := handler.NewFamilyHandler(familyService, validator)
	plantHandler := handler.NewPlantHandler(plantService, validator)
	plantImageHandler := handler.NewPlantImageHandler(plantImageService, validator)
	logHandler := handler.NewLogHandler(logService)

	app := newApp(cfg, authService, authHandler, herbariumTypeHandler, familyHandler, plantHandler, plantImageHandler, logHandler)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newApp(
	cfg *config.Config,
	authService *service.AuthService,
	authHandler *handler.AuthHandler,
	herbariumTypeHandler *handler.HerbariumTypeHandler,
	familyHandler *handler.FamilyHandler,
	plantHandler *handler.PlantHandler,
	plantImageHandler *handler.PlantImageHandler,
	logHandler *handler.LogHandler,
) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	}))
	app.Use(fiberLogger.New())

	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	api := app.Group("/api")

	// Auth routes are rate limited per client IP. The limiter storage is
	// swappable for a shared store when running more than one instance.
	auth := api.Group("/auth", middleware.AuthRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, nil))
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/validate-code", authHandler.ValidateCode)
	auth.Post("/register", requireAuth, authHandler.Register)
	auth.Put("/update-password", requireAuth, authHandler.ChangePassword)
	auth.Put("/reset-password", requireAuth, authHandler.ResetPassword)
	auth.Post("/logout", requireAuth, authHandler.Logout)

	// Public reads upgrade to the status-agnostic view with a valid token.
	herbariums := api.Group("/herbariums")
	herbariums.Get("/", optionalAuth, herbariumTypeHandler.GetAll)
	herbariums.Get("/:id", optionalAuth, herbariumTypeHandler.GetByID)
	herbariums.Post("/", requireAuth, herbariumTypeHandler.Create)
	herbariums.Put("/:id", requireAuth, herbariumTypeHandler.Update)
	herbariums.Patch("/:id/toggle-status", requireAuth, herbariumTypeHandler.ToggleStatus)
	herbariums.Patch("/:id/soft-delete", requireAuth, herbariumTypeHandler.SoftDelete)

	families := api.Group("/families")
	families.Get("/", optionalAuth, familyHandler.GetAll)
	families.Get("/herbarium/:herbariumTypeId", optionalAuth, familyHandler.GetByHerbariumType)
	families.Post("/", requireAuth, familyHandler.Create)
	families.Put("/:id", requireAuth, familyHandler.Update)
	families.Patch("/:id/toggle-status", requireAuth, familyHandler.ToggleStatus)
	families.Patch("/:id/soft-delete", requireAuth, familyHandler.SoftDelete)

	plants := api.Group("/plants")
	plants.Get("/", optionalAuth, plantHandler.GetAll)
	plants.Get("/taxonomy/:herbariumTypeId/:familyId", optionalAuth, plantHandler.GetByTaxonomy)
	plants.Get("/:id", optionalAuth, plantHandler.GetByID)
	plants.Post("/", requireAuth, plantHandler.Create)
	plants.Put("/:id", requireAuth, plantHandler.Update)
	plants.Patch("/:id/toggle-status", requireAuth, plantHandler.ToggleStatus)
	plants.Patch("/:id/soft-delete", requireAuth, plantHandler.SoftDelete)

	images := api.Group("/plant-images")
	images.Get("/", optionalAuth, plantImageHandler.GetAll)
	images.Get("/plant/:plantId", optionalAuth, plantImageHandler.GetByPlantID)
	images.Post("/plant/:plantId", requireAuth, plantImageHandler.Upload)
	images.Put("/:id", requireAuth, plantImageHandler.Replace)
	images.Patch("/:id/toggle-status", requireAuth, plantImageHandler.ToggleStatus)
	images.Patch("/:id/soft-delete", requireAuth, plantImageHandler.SoftDelete)

	api.Get("/logs", requireAuth, logHandler.GetAll)

	// Local uploads are served directly; S3 URLs point elsewhere.
	app.Static("/uploads", "./uploads")

	return app
}

func newStorage(cfg *config.Config) (storage.StorageService, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Storage(cfg.S3)
	}
	return storage.NewLocalStorage(cfg.UploadDir)
}
