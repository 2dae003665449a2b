package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitness-app/docs"
	"fitness-app/internal/config"
	"fitness-app/internal/database"
	authhandler "fitness-app/internal/handler/auth"
	"fitness-app/internal/handler/health"
	"fitness-app/internal/handler/middleware"
	planhandler "fitness-app/internal/handler/plan"
	profilehandler "fitness-app/internal/handler/profile"
	userhandler "fitness-app/internal/handler/user"
	pgrepo "fitness-app/internal/repository/postgres"
	authuc "fitness-app/internal/usecase/auth"
	planuc "fitness-app/internal/usecase/plan"
	profileuc "fitness-app/internal/usecase/profile"
	useruc "fitness-app/internal/usecase/user"
	jwtsvc "fitness-app/pkg/jwt"
	"fitness-app/pkg/llm"
	"fitness-app/pkg/logger"
)

const (
	shutdownTimeout = 30 * time.Second
	// запас сверх таймаута модели на запись в базу и ответ клиенту
	writeTimeoutMargin = 15 * time.Second
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config
	log        logger.Logger

	completion llm.Client

	jwtService     jwtsvc.Service
	authHandler    *authhandler.Handler
	userHandler    *userhandler.Handler
	profileHandler *profilehandler.Handler
	planHandler    *planhandler.Handler
}

// Option настраивает сервер при создании.
type Option func(*Server)

// WithCompletionClient подменяет клиент модели, например в тестах.
func WithCompletionClient(c llm.Client) Option {
	return func(s *Server) {
		s.completion = c
	}
}

// NewServer создает сервер и связывает все зависимости.
func NewServer(cfg *config.Config, db *database.DB, log logger.Logger, opts ...Option) (*Server, error) {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	s := &Server{
		router: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.completion == nil {
		client, err := llm.New(context.Background(), &cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания клиента модели: %w", err)
		}
		s.completion = client
	}

	gormDB := db.DB
	userRepo := pgrepo.NewUserRepository(gormDB)
	profileRepo := pgrepo.NewProfileRepository(gormDB)
	planRepo := pgrepo.NewTrainingPlanRepository(gormDB)

	s.jwtService = jwtsvc.NewService(&cfg.JWT)
	generator := planuc.NewGenerator(s.completion, &cfg.LLM, log)

	s.authHandler = authhandler.NewHandler(authuc.NewService(userRepo, s.jwtService), log)
	s.userHandler = userhandler.NewHandler(useruc.NewService(userRepo), log)
	s.profileHandler = profilehandler.NewHandler(profileuc.NewService(profileRepo), log)
	s.planHandler = planhandler.NewHandler(planuc.NewService(planRepo, profileRepo, generator, log), log)

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery первым, чтобы перехватывать паники остальных
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.LoggerStructured(s.log))
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupDocsRoutes()

	v1 := s.router.Group("/api/v1")
	v1.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Fitness App API v1",
			"version": docs.SwaggerInfo.Version,
		})
	})

	s.setupAuthRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(s.jwtService, s.log))
	s.setupUserRoutes(protected)
	s.setupPlanRoutes(protected)
	s.setupAdminRoutes(protected)
}

func (s *Server) setupHealthRoutes() {
	healthHandler := health.NewHandler(s.db, s.cfg.AppEnv, s.log)
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/db", healthHandler.HealthDB)
}

// setupDocsRoutes публикует swagger UI только в development с ENABLE_API_DOCS.
func (s *Server) setupDocsRoutes() {
	if !s.cfg.DocsEnabled() {
		return
	}
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) setupAuthRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", s.authHandler.Register)
		authGroup.POST("/login", s.authHandler.Login)
		authGroup.POST("/refresh", s.authHandler.Refresh)
	}
}

func (s *Server) setupUserRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", s.userHandler.GetMe)
		userGroup.PUT("/me", s.userHandler.UpdateMe)
		// мягкое удаление аккаунта
		userGroup.DELETE("/me", s.userHandler.DeleteMe)

		userGroup.GET("/me/profile", s.profileHandler.Get)
		userGroup.PUT("/me/profile", s.profileHandler.Upsert)
	}
}

func (s *Server) setupPlanRoutes(protected *gin.RouterGroup) {
	plans := protected.Group("/training-plans")
	{
		plans.GET("", s.planHandler.List)
		plans.POST("", s.planHandler.Create)
		plans.POST("/generate", s.planHandler.Generate)
		plans.GET("/:id", s.planHandler.Get)
		plans.PUT("/:id", s.planHandler.Update)
		plans.DELETE("/:id", s.planHandler.Delete)
	}
}

func (s *Server) setupAdminRoutes(protected *gin.RouterGroup) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(s.log, "admin"))
	{
		admin.GET("/users", s.userHandler.ListUsers)
	}
}

// Start запускает HTTP сервер и блокируется до SIGINT/SIGTERM, после чего
// корректно завершает активные запросы.
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	// генерация плана держит запрос открытым до таймаута модели
	writeTimeout := 15 * time.Second
	if t := s.cfg.LLM.Timeout + writeTimeoutMargin; t > writeTimeout {
		writeTimeout = t
	}

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)

	go func() {
		s.log.Info("http server started", map[string]any{"address": address})
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		s.log.Error("http server failed", map[string]any{"error": err})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		return err
	case sig := <-quit:
		s.log.Info("shutdown signal received", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	s.log.Info("http server stopped", nil)
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
