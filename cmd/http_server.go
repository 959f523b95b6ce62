package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/idea-box/internal"
	"github.com/frahmantamala/idea-box/internal/activity"
	activityPostgres "github.com/frahmantamala/idea-box/internal/activity/postgres"
	"github.com/frahmantamala/idea-box/internal/admin"
	"github.com/frahmantamala/idea-box/internal/auth"
	"github.com/frahmantamala/idea-box/internal/category"
	categoryPostgres "github.com/frahmantamala/idea-box/internal/category/postgres"
	"github.com/frahmantamala/idea-box/internal/comment"
	commentPostgres "github.com/frahmantamala/idea-box/internal/comment/postgres"
	"github.com/frahmantamala/idea-box/internal/core/events"
	"github.com/frahmantamala/idea-box/internal/dashboard"
	"github.com/frahmantamala/idea-box/internal/idea"
	ideaPostgres "github.com/frahmantamala/idea-box/internal/idea/postgres"
	"github.com/frahmantamala/idea-box/internal/transport/rest"
	"github.com/frahmantamala/idea-box/internal/user"
	userPostgres "github.com/frahmantamala/idea-box/internal/user/postgres"
	"github.com/frahmantamala/idea-box/internal/vote"
	votePostgres "github.com/frahmantamala/idea-box/internal/vote/postgres"
	"github.com/frahmantamala/idea-box/pkg/logger"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	handlers := buildHandlers(config, gormDB, lg)

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

// buildHandlers wires repositories, services and handlers together.
func buildHandlers(config *internal.Config, gormDB *gorm.DB, lg *slog.Logger) rest.Handlers {
	userRepo := userPostgres.NewUserRepository(gormDB)
	ideaRepo := ideaPostgres.NewIdeaRepository(gormDB)
	voteRepo := votePostgres.NewVoteRepository(gormDB)
	commentRepo := commentPostgres.NewCommentRepository(gormDB)
	activityRepo := activityPostgres.NewActivityRepository(gormDB)
	categoryRepo := categoryPostgres.NewCategoryRepository(gormDB)

	bus := events.NewEventBus(lg)
	subscribeLogObserver(bus, lg)

	activityService := activity.NewService(activityRepo, activity.Limits{
		Feed:   config.App.ActivityFeedLimit,
		Filter: config.App.ActivityFilterLimit,
	}, lg)

	userService := user.NewService(userRepo, ideaRepo, lg)
	ideaService := idea.NewService(ideaRepo, activityService, bus, userService, lg)
	voteService := vote.NewService(voteRepo, ideaRepo, activityService, bus, lg)
	commentService := comment.NewService(commentRepo, ideaRepo, activityService, lg)
	dashboardService := dashboard.NewService(ideaService, dashboard.Config{
		Goal:           config.App.DashboardGoal,
		TopIdeasWindow: config.App.TopIdeasWindow,
	}, lg)
	adminService := admin.NewService(ideaRepo, voteRepo, commentRepo, userRepo, lg)
	categoryService := category.NewService(categoryRepo, lg)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(userRepo, tokenGen, lg)

	return rest.Handlers{
		Auth:      auth.NewHandler(authService),
		User:      user.NewHandler(userService),
		Idea:      idea.NewHandler(ideaService),
		Vote:      vote.NewHandler(voteService),
		Comment:   comment.NewHandler(commentService),
		Activity:  activity.NewHandler(activityService),
		Dashboard: dashboard.NewHandler(dashboardService),
		Admin:     admin.NewHandler(adminService),
		Category:  category.NewHandler(categoryService),
	}
}

// subscribeLogObserver attaches the structured-log observer for every
// domain event type.
func subscribeLogObserver(bus *events.EventBus, lg *slog.Logger) {
	observer := func(ctx context.Context, event events.Event) error {
		lg.Info("domain event",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.EventTypeIdeaSubmitted, observer)
	bus.Subscribe(events.EventTypeIdeaVoted, observer)
	bus.Subscribe(events.EventTypeIdeaStatusChanged, observer)
}

// initDB opens one pgx connection pool and hands it to both sqlx (raw
// reads, health checks) and GORM (repositories).
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, *gorm.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: dbConn.DB,
	}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	return dbConn, gormDB, nil
}
