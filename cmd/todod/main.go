package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/xxxsen/todod/internal/config"
	"github.com/xxxsen/todod/internal/handler"
	"github.com/xxxsen/todod/internal/middleware"
	"github.com/xxxsen/todod/internal/repo"
	"github.com/xxxsen/todod/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "todod",
		Short: "todod backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run todod server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			db, closer, err := repo.Open(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer closer()
			if err := repo.EnsureIndexes(context.Background(), db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			return runServer(cfg, db)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, db *mongo.Database) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.MongoDatabase),
	)

	userRepo := repo.NewUserRepo(db)
	todoRepo := repo.NewTodoRepo(db)

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	todoService := service.NewTodoService(todoRepo)

	deps := handler.RouterDeps{
		Users: handler.NewUserHandler(authService),
		Todos: handler.NewTodoHandler(todoService),
		Auth:  authService,
	}

	engine, err := webapi.NewEngine(
		"/",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			middleware.Timeout(time.Duration(cfg.RequestTimeoutSec)*time.Second),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
