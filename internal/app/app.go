package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/optifit/web"
	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/config"
	"github.com/optifit/web/internal/db"
	"github.com/optifit/web/internal/events"
	"github.com/optifit/web/internal/repository"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	API              *apiclient.Client
	PlanBus          *events.PlanBus
	SessionService   *service.SessionService
	ProfileService   *service.ProfileService
	PlanService      *service.PlanService
	DashboardService *service.DashboardService
	ExerciseService  *service.ExerciseService
	ProgressService  *service.ProgressService
	ExportService    *service.ExportService
	ChatService      *service.ChatService
	EducationService *service.EducationService
}

// New wires the application. ctx bounds background subscriptions; cancel it
// before Close.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	sessionRepository := repository.NewSessionRepository(database)
	snapshotRepository := repository.NewPlanSnapshotRepository(database)

	// Backend
	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	bus := events.NewPlanBus()

	// Storage (optional)
	var exportStorage storage.Storage
	if cfg.ExportEnabled() {
		s3Storage, err := storage.New(ctx, cfg)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		exportStorage = s3Storage
	}

	// Services
	sessionService := service.NewSessionService(
		api,
		sessionRepository,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	profileService := service.NewProfileService(api, cfg.ProfileTimeout)
	planService := service.NewPlanService(api, snapshotRepository)
	dashboardService := service.NewDashboardService(planService, api, cfg.DashboardTimeout)
	exerciseService := service.NewExerciseService(api)
	progressService := service.NewProgressService(api)
	exportService := service.NewExportService(api, exportStorage, cfg.S3PresignExpiry)
	chatService := service.NewChatService(api, bus)
	educationService := service.NewEducationService(contentFS(cfg.ContentPath), cfg.IsDevelopment())

	// Plans changed by the assistant replace the stored snapshot
	bus.Subscribe(ctx, planService.OnPlanUpdated)

	return &App{
		Cfg:              cfg,
		DB:               database,
		API:              api,
		PlanBus:          bus,
		SessionService:   sessionService,
		ProfileService:   profileService,
		PlanService:      planService,
		DashboardService: dashboardService,
		ExerciseService:  exerciseService,
		ProgressService:  progressService,
		ExportService:    exportService,
		ChatService:      chatService,
		EducationService: educationService,
	}, nil
}

// contentFS prefers the content directory on disk and falls back to the
// bundled copy.
func contentFS(dir string) fs.FS {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(web.ContentFS, "content")
	if err != nil {
		// fs.Sub only fails on an invalid path
		panic(err)
	}
	slog.Info("content directory not found, using bundled content", "path", dir)
	return sub
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
