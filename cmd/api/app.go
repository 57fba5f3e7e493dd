package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/docs"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/route"
	"github.com/hugohenrick/voice-productivity/internal/adapter/repository"
	"github.com/hugohenrick/voice-productivity/internal/adapter/repository/memory"
	"github.com/hugohenrick/voice-productivity/internal/domain/chat"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/hugohenrick/voice-productivity/internal/infrastructure/config"
	"github.com/hugohenrick/voice-productivity/internal/infrastructure/database"
	"github.com/hugohenrick/voice-productivity/internal/service/assistant"
	"github.com/hugohenrick/voice-productivity/internal/service/planner"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
	"github.com/hugohenrick/voice-productivity/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version é a versão informada no health check
const Version = "1.0.0"

// repositories agrupa as implementações escolhidas pelo driver de armazenamento
type repositories struct {
	users user.Repository
	goals goal.Repository
	tasks task.Repository
	chat  chat.Repository
}

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	app := &App{cfg: cfg, logger: log}

	repos, err := app.setupStorage()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Serviços
	plannerService := planner.NewService(repos.goals, repos.tasks, log)
	voiceAssistant := assistant.New(repos.users, repos.goals, repos.tasks, repos.chat, plannerService, log)

	// Configurar router com modo correto
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": Version,
			"storage": cfg.Storage.Driver,
		})
	})
	router.GET("/metrics", metrics.Handler())

	docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.Server.BasePath)
	authMiddleware := auth.JWTAuthMiddleware(jwtService)

	route.SetupAuthRoutes(api, controller.NewAuthController(repos.users, jwtService, log), authMiddleware)
	route.SetupGoalRoutes(api, controller.NewGoalController(repos.goals, log), authMiddleware)
	route.SetupTaskRoutes(api, controller.NewTaskController(repos.tasks, log), authMiddleware)
	route.SetupVoiceRoutes(api, controller.NewVoiceController(voiceAssistant, log), authMiddleware)
	route.SetupAIRoutes(api, controller.NewAIController(plannerService, log), authMiddleware)

	app.router = router
	return app, nil
}

// setupStorage cria os repositórios conforme o driver configurado
func (a *App) setupStorage() (*repositories, error) {
	if a.cfg.Storage.Driver == config.StorageDriverMemory {
		a.logger.Warn("Usando armazenamento em memória; os dados serão perdidos ao reiniciar")
		return &repositories{
			users: memory.NewUserRepository(),
			goals: memory.NewGoalRepository(),
			tasks: memory.NewTaskRepository(),
			chat:  memory.NewChatRepository(),
		}, nil
	}

	if a.cfg.Database.MigrateOnStart {
		if err := database.RunMigrations(a.cfg.Database.ConnectionString(), database.DirectionUp, 0); err != nil {
			return nil, fmt.Errorf("erro ao executar migrações: %w", err)
		}
		a.logger.Info("Migrações aplicadas")
	}

	db, err := database.NewPostgresDB(context.Background(), a.cfg.Database)
	if err != nil {
		return nil, err
	}
	a.db = db

	return &repositories{
		users: repository.NewUserRepository(db),
		goals: repository.NewGoalRepository(db),
		tasks: repository.NewTaskRepository(db),
		chat:  repository.NewChatRepository(db),
	}, nil
}

func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowedOrigins
	}
	return cfg
}

// Start inicia o servidor HTTP e aguarda SIGINT/SIGTERM para desligar
func (a *App) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", "addr", srv.Addr, "base_path", a.cfg.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Desligando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if z, ok := a.logger.(interface{ Sync() error }); ok {
		_ = z.Sync()
	}
}
