package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/learnhub-ng/backend/docs"
	authMiddleware "github.com/learnhub-ng/backend/internal/auth/middleware"
	authService "github.com/learnhub-ng/backend/internal/auth/service"
	"github.com/learnhub-ng/backend/internal/config"
	"github.com/learnhub-ng/backend/internal/handlers"
	"github.com/learnhub-ng/backend/internal/logger"
	"github.com/learnhub-ng/backend/internal/middlewares"
	"github.com/learnhub-ng/backend/internal/models"
	"github.com/learnhub-ng/backend/internal/repositories"
	"github.com/learnhub-ng/backend/internal/services"
	"github.com/learnhub-ng/backend/internal/storage"
	"github.com/learnhub-ng/backend/internal/uploads"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 600 * 1024 * 1024 // headroom for video uploads

// @title LearnHub API
// @version 1.0
// @description Course marketplace API: catalog browsing, enrollment, lesson authoring and media uploads

// @contact.name API Support
// @contact.email support@learnhub.ng

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, also accepted as the access_token cookie
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting LearnHub backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db, cfg.Database.MigrationsPath); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := authService.NewTokenGenerator(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize storage and upload tracker
	fileStorage := storage.NewLocalStorage(cfg.Upload.BasePath)
	tracker := uploads.NewTracker(fileStorage, uploads.Limits{
		MaxVideoSize: cfg.Upload.MaxVideoSize,
		MaxFileSize:  cfg.Upload.MaxFileSize,
	}, cfg.Server.BaseURL, logger.Logger)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	quizRepo := repositories.NewQuizRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	metadataRepo := repositories.NewMetadataRepository(db)

	// Initialize services
	authSvc := services.NewAuthService(userRepo, tokenGenerator)
	catalogSvc := services.NewCatalogService(courseRepo)
	enrollmentSvc := services.NewEnrollmentService(enrollmentRepo, courseRepo)
	tutorCourseSvc := services.NewTutorCourseService(courseRepo)
	tutorLessonSvc := services.NewTutorLessonService(lessonRepo, quizRepo, courseRepo)
	studentLessonSvc := services.NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)
	mediaSvc := services.NewMediaService(tracker, metadataRepo, fileStorage)

	// Initialize middleware
	authMw := authMiddleware.AuthMiddleware(tokenGenerator)
	optionalAuthMw := authMiddleware.OptionalAuthMiddleware(tokenGenerator)
	teacherMw := authMiddleware.RequireRole(models.RoleTeacher)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, logger.Logger, authMw)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, logger.Logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentSvc, logger.Logger, authMw)
	tutorCourseHandler := handlers.NewTutorCourseHandler(tutorCourseSvc, logger.Logger)
	tutorLessonHandler := handlers.NewTutorLessonHandler(tutorLessonSvc, logger.Logger)
	studentLessonHandler := handlers.NewStudentLessonHandler(studentLessonSvc, logger.Logger, authMw)
	mediaHandler := handlers.NewMediaHandler(mediaSvc, logger.Logger, authMw, teacherMw)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r)
		mediaHandler.RegisterRoutes(r)
		studentLessonHandler.RegisterRoutes(r)

		// Public catalog and enrollment gate, viewer resolved when a token
		// is present
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMw)
			catalogHandler.RegisterRoutes(r)
			enrollmentHandler.RegisterRoutes(r)
		})

		// Course and lesson authoring is for signed-in teachers
		r.Group(func(r chi.Router) {
			r.Use(authMw, teacherMw)
			tutorCourseHandler.RegisterRoutes(r)
			tutorLessonHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Minute, // video uploads can be slow
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations applies pending database migrations
func runMigrations(db *sql.DB, sourceURL string) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
