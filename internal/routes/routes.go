package routes

import (
	"context"
	"net/http"

	"github.com/optifit/web/internal/app"
	"github.com/optifit/web/internal/handler"
	"github.com/optifit/web/internal/middleware"
	"github.com/optifit/web/internal/plan"
)

// SetupRoutes builds the handler tree. ctx bounds background work owned by
// the routes, such as the rate limiter's cleanup loop.
func SetupRoutes(ctx context.Context, app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.SessionService)
	onboarding := handler.NewOnboardingHandler(app.ProfileService, app.SessionService)
	dashboard := handler.NewDashboardHandler(app.DashboardService, app.SessionService)
	workoutPlan := handler.NewPlanHandler(plan.KindWorkout, app.PlanService, app.SessionService)
	dietPlan := handler.NewPlanHandler(plan.KindDiet, app.PlanService, app.SessionService)
	workoutSession := handler.NewWorkoutSessionHandler(app.PlanService, app.ProgressService, app.SessionService)
	exercises := handler.NewExerciseHandler(app.ExerciseService, app.SessionService)
	progress := handler.NewProgressHandler(app.ProgressService, app.ExportService, app.SessionService)
	education := handler.NewEducationHandler(app.EducationService)
	chat := handler.NewChatHandler(app.ChatService, app.SessionService)
	stream := handler.NewEventsHandler(app.PlanBus)

	// Views that need a completed profile. The gate also covers login, and
	// shows a loading page while the session or profile is unresolved.
	gated := middleware.RequireProfile(app.ProfileService, app.SessionService, http.HandlerFunc(home.LoadingPage))

	rateLimiter := middleware.RateLimit(middleware.NewRateLimiter(ctx, app.Cfg.AuthRateLimit, app.Cfg.AuthRateWindow))

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", home.Health)
	mux.HandleFunc("GET /robots.txt", home.Robots)
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Auth
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("GET /signup", middleware.RequireGuest(auth.SignupPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /signup", rateLimiter(middleware.RequireGuest(auth.Signup)))
	mux.HandleFunc("POST /logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Onboarding
	mux.HandleFunc("GET /onboarding", middleware.RequireAuth(onboarding.OnboardingPage))
	mux.HandleFunc("POST /onboarding", middleware.RequireAuth(onboarding.SaveProfile))

	// Dashboard
	mux.HandleFunc("GET /dashboard", gated(dashboard.DashboardPage))

	// Plans
	mux.HandleFunc("GET /workout-plan", gated(workoutPlan.PlanPage))
	mux.HandleFunc("POST /workout-plan/generate", middleware.RequireAuth(workoutPlan.Generate))
	mux.HandleFunc("GET /diet-plan", gated(dietPlan.PlanPage))
	mux.HandleFunc("POST /diet-plan/generate", middleware.RequireAuth(dietPlan.Generate))

	// Workout session
	mux.HandleFunc("GET /workout-session", gated(workoutSession.SessionPage))
	mux.HandleFunc("POST /workout-session", middleware.RequireAuth(workoutSession.SaveSession))

	// Exercises
	mux.HandleFunc("GET /exercises", middleware.RequireAuth(exercises.ExercisesPage))
	mux.HandleFunc("GET /exercises/{id}", middleware.RequireAuth(exercises.ExerciseDetailPage))

	// Progress
	mux.HandleFunc("GET /progress", gated(progress.ProgressPage))
	mux.HandleFunc("POST /progress/metric", middleware.RequireAuth(progress.AddMetric))
	mux.HandleFunc("POST /progress/exercise", middleware.RequireAuth(progress.LogExercise))
	mux.HandleFunc("GET /progress/history", middleware.RequireAuth(progress.History))
	mux.HandleFunc("GET /progress/export", middleware.RequireAuth(progress.Export))

	// Education
	mux.HandleFunc("GET /education", middleware.RequireAuth(education.EducationPage))

	// Assistant
	if app.Cfg.ChatEnabled {
		mux.HandleFunc("POST /chat", middleware.RequireAuth(chat.Send))
	}
	mux.HandleFunc("GET /events", middleware.RequireAuth(stream.Stream))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // first: SecurityHeaders and CSRF read it
		middleware.NonceMiddleware, // before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.SessionAuth(app.SessionService),
		middleware.WithURLPath,
	)
}
