package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/smartschool/backend/internal/app/controllers"
	appRepos "github.com/smartschool/backend/internal/app/repositories"
	appRoutes "github.com/smartschool/backend/internal/app/routes"
	"github.com/smartschool/backend/internal/app/upload"
	"github.com/smartschool/backend/internal/config"
	"github.com/smartschool/backend/internal/db"
	appMiddleware "github.com/smartschool/backend/internal/middleware"
	"github.com/smartschool/backend/internal/pkg/filestorage"
	"github.com/smartschool/backend/internal/pkg/logger"
	"github.com/smartschool/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	FileStorage filestorage.FileStorage
	Pipeline    *upload.Pipeline

	AuthController      *appControllers.AuthController
	GalleryController   *appControllers.GalleryController
	HeroSlideController *appControllers.HeroSlideController
	FacultyController   *appControllers.FacultyController
	CourseController    *appControllers.CourseController
	AdmissionController *appControllers.AdmissionController
	ContactController   *appControllers.ContactController
	NoticeController    *appControllers.NoticeController
	EventController     *appControllers.EventController
	ReviewController    *appControllers.ReviewController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, ensures indexes and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Mongo, error) {
	lgr.Info().Msg("Establishing database connection...")
	mongo, err := db.NewMongo(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.EnsureIndexes(ctx, mongo.Database); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		_ = mongo.Close(context.Background())
		return nil, err
	}

	if err := seed.EnsureDefaultAdmin(ctx, appRepos.NewAdminRepository(mongo.Database), lgr); err != nil {
		// Seeding failure is logged but does not block startup
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return mongo, nil
}

// NewFileStorage selects the storage backend variant from configuration.
// Route and pipeline code depend only on the FileStorage interface.
func NewFileStorage(cfg *config.Config) (filestorage.FileStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverLocal:
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.BaseURL)
	case config.StorageDriverCloudinary:
		return filestorage.NewCloudinaryStorage(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
		)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes repositories, the upload pipeline and controllers.
func BuildDependencies(cfg *config.Config, mongo *db.Mongo, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(mongo.Database)

	storage, err := NewFileStorage(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage
	deps.Pipeline = upload.NewPipeline(storage)
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("File storage initialized")

	deps.AuthController = appControllers.NewAuthController(deps.Repos.Admins)
	deps.GalleryController = appControllers.NewGalleryController(deps.Repos.Gallery, deps.Pipeline)
	deps.HeroSlideController = appControllers.NewHeroSlideController(deps.Repos.HeroSlides, deps.Pipeline)
	deps.FacultyController = appControllers.NewFacultyController(deps.Repos.Faculty, deps.Pipeline)
	deps.CourseController = appControllers.NewCourseController(deps.Repos.Courses)
	deps.AdmissionController = appControllers.NewAdmissionController(deps.Repos.Admissions)
	deps.ContactController = appControllers.NewContactController(deps.Repos.Contacts)
	deps.NoticeController = appControllers.NewNoticeController(deps.Repos.Notices, deps.Pipeline)
	deps.EventController = appControllers.NewEventController(deps.Repos.Events)
	deps.ReviewController = appControllers.NewReviewController(deps.Repos.Reviews)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.GalleryController,
		deps.HeroSlideController,
		deps.FacultyController,
		deps.CourseController,
		deps.AdmissionController,
		deps.ContactController,
		deps.NoticeController,
		deps.EventController,
		deps.ReviewController,
	)

	return router
}
