package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/adapter/postgres"
	calendarrepo "github.com/tjwls11/diary111/internal/adapter/postgres/calendar"
	diaryrepo "github.com/tjwls11/diary111/internal/adapter/postgres/diary"
	quoterepo "github.com/tjwls11/diary111/internal/adapter/postgres/quote"
	stickerrepo "github.com/tjwls11/diary111/internal/adapter/postgres/sticker"
	userrepo "github.com/tjwls11/diary111/internal/adapter/postgres/user"
	"github.com/tjwls11/diary111/internal/auth"
	"github.com/tjwls11/diary111/internal/config"
	authsvc "github.com/tjwls11/diary111/internal/service/auth"
	calendarsvc "github.com/tjwls11/diary111/internal/service/calendar"
	diarysvc "github.com/tjwls11/diary111/internal/service/diary"
	quotesvc "github.com/tjwls11/diary111/internal/service/quote"
	stickersvc "github.com/tjwls11/diary111/internal/service/sticker"
	usersvc "github.com/tjwls11/diary111/internal/service/user"
	"github.com/tjwls11/diary111/internal/transport/rest"
	"github.com/tjwls11/diary111/internal/upload"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	uploads, err := upload.NewStore(cfg.Upload.Dir)
	if err != nil {
		return err
	}

	users := userrepo.New(pool)
	diaries := diaryrepo.New(pool)
	marks := calendarrepo.New(pool)
	stickers := stickerrepo.New(pool)
	quotes := quoterepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, uploads)
	diaryService := diarysvc.NewService(logger, diaries)
	calendarService := calendarsvc.NewService(logger, marks)
	stickerService := stickersvc.NewService(logger, stickers, users, txManager)
	quoteService := quotesvc.NewService(logger, quotes)

	handler := rest.NewRouter(rest.RouterDeps{
		Log:        logger,
		CORS:       cfg.CORS,
		Validator:  jwtManager,
		Auth:       rest.NewAuthHandler(logger, authService),
		User:       rest.NewUserHandler(logger, userService, cfg.Upload.MaxSizeBytes),
		Diary:      rest.NewDiaryHandler(logger, diaryService),
		Calendar:   rest.NewCalendarHandler(logger, calendarService),
		Sticker:    rest.NewStickerHandler(logger, stickerService),
		Quote:      rest.NewQuoteHandler(logger, quoteService),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		UploadsDir: uploads.Dir(),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
