package routes

import (
	"context"
	"log"
	"time"

	"gradebench-backend/internal/api/handlers"
	"gradebench-backend/internal/api/middleware"
	"gradebench-backend/internal/auth"
	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/config"
	"gradebench-backend/internal/progress"
	"gradebench-backend/internal/repository"
	"gradebench-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Initialize repositories
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	categoryRepo := repository.NewGroupCategoryRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	changeRepo := repository.NewMembershipChangeRepository(db)
	syncRunRepo := repository.NewSyncRunRepository(db)

	// Progress store: Redis when configured, in-memory otherwise
	var store progress.Store
	if cfg.RedisURL != "" {
		client, err := progress.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, using in-memory progress store: %v", err)
			store = progress.NewMemoryStore(cfg.ProgressTTL())
		} else {
			store = progress.NewRedisStore(client, cfg.ProgressTTL())
		}
	} else {
		store = progress.NewMemoryStore(cfg.ProgressTTL())
	}

	// Initialize services
	canvasClient := canvas.FromConfig(cfg)
	upserter := service.NewUpserter(courseRepo, enrollmentRepo, studentRepo, assignmentRepo, submissionRepo, categoryRepo, validate)

	githubService, err := service.NewGitHubService(cfg)
	if err != nil {
		log.Printf("Warning: GitHub service disabled: %v", err)
	}
	directoryService := service.NewDirectoryService(cfg)

	reconciler := service.NewReconciler(teamRepo, studentRepo, enrollmentRepo, changeRepo, directoryService, cfg.IdentityFallback)
	syncService := service.NewSyncService(canvasClient, upserter, reconciler, courseRepo, syncRunRepo, store, cfg.DeleteStaleTeams)
	pushService := service.NewPushService(canvasClient, teamRepo, studentRepo, categoryRepo, courseRepo)
	teamService := service.NewTeamService(teamRepo, courseRepo, studentRepo, changeRepo, validate)
	courseService := service.NewCourseService(courseRepo)

	var studentService *service.StudentService
	if githubService != nil {
		studentService = service.NewStudentService(studentRepo, githubService)
	} else {
		studentService = service.NewStudentService(studentRepo, nil)
	}

	// Auth
	authService, err := auth.NewService(cfg.JWTSecret, time.Hour)
	if err != nil {
		log.Printf("Warning: auth disabled: %v", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	syncHandler := handlers.NewSyncHandler(syncService)
	pushHandler := handlers.NewPushHandler(pushService)
	teamHandler := handlers.NewTeamHandler(teamService)
	courseHandler := handlers.NewCourseHandler(courseService)
	studentHandler := handlers.NewStudentHandler(studentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API routes
	api := router.Group("/api/v1")
	if authService != nil {
		authMiddleware := auth.NewMiddleware(authService)
		api.Use(authMiddleware.RequireAuth())
	}
	{
		api.POST("/sync/courses/:canvas_id", syncHandler.StartCourseSync)
		api.POST("/sync/all", syncHandler.StartSyncAll)
		api.GET("/sync/progress/:target", syncHandler.GetProgress)

		api.POST("/push/teams/:id", pushHandler.PushTeam)
		api.POST("/push/teams/:id/remote-group", pushHandler.EnsureRemoteGroup)
		api.POST("/push/courses/:canvas_id", pushHandler.PushCourse)

		api.POST("/teams", teamHandler.CreateTeam)
		api.GET("/teams/:id", teamHandler.GetTeam)
		api.GET("/courses", courseHandler.GetCourses)
		api.GET("/courses/:canvas_id", courseHandler.GetCourse)
		api.GET("/courses/:canvas_id/teams", teamHandler.GetCourseTeams)

		api.GET("/students", studentHandler.GetStudents)
		api.PUT("/students/:id/github", studentHandler.LinkGitHub)
	}

	return router
}
