package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/notify"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/postgres"
	annotationrepo "github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/postgres/annotation"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/postgres/audit"
	submissionrepo "github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/postgres/submission"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/storage"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/auth"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/annotation"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/review"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/submission"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/upload"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/transport/middleware"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/transport/rest"
)

// multipartOverhead is the allowance for form fields and part headers on
// top of the two files of a submission upload.
const multipartOverhead = 1 << 20

type dispatcher interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent) error
}

// Run is the application entry point. It loads configuration, connects the
// database, object storage and notification transport, and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}

	notifier, closers, err := newNotifier(cfg.Notify, logger)
	if err != nil {
		return fmt.Errorf("create notifier: %w", err)
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("close notifier", slog.String("error", err.Error()))
			}
		}
	}()

	txManager := postgres.NewTxManager(pool)
	submissions := submissionrepo.New(pool)
	annotations := annotationrepo.New(pool)
	auditLog := audit.New(pool)

	uploads := upload.NewCoordinator(logger, store, cfg.Upload)
	submissionSvc := submission.NewService(logger, submissions, uploads, notifier, auditLog, txManager,
		cfg.Chain, cfg.Upload, cfg.Notify)
	reviewSvc := review.NewService(logger, submissions, notifier, auditLog, txManager, cfg.Notify)
	annotationSvc := annotation.NewService(logger, annotations, submissions, auditLog, txManager)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	var uploadLimit middleware.Middleware
	if cfg.RateLimit.UploadsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		uploadLimit = limiter.Limit(cfg.RateLimit.UploadsPerMinute)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, store, Version),
		Submission:  rest.NewSubmissionHandler(submissionSvc, 2*cfg.Upload.AdminMaxBytes+multipartOverhead, logger),
		Review:      rest.NewReviewHandler(reviewSvc, logger),
		Annotation:  rest.NewAnnotationHandler(annotationSvc, logger),
		UploadLimit: uploadLimit,
	},
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// newNotifier picks the notification transport: Kafka when brokers are
// configured, optionally de-duplicated through Redis, otherwise a logger.
func newNotifier(cfg config.NotifyConfig, logger *slog.Logger) (dispatcher, []io.Closer, error) {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		logger.Warn("no kafka brokers configured, notifications are only logged")
		return notify.NewLogDispatcher(logger), nil, nil
	}

	kafka, err := notify.NewKafkaDispatcher(brokers, cfg.Topic, logger)
	if err != nil {
		return nil, nil, err
	}
	closers := []io.Closer{kafka}

	if cfg.RedisURL == "" {
		return kafka, closers, nil
	}

	client, err := notify.ConnectRedis(cfg.RedisURL)
	if err != nil {
		kafka.Close() //nolint:errcheck
		return nil, nil, err
	}
	closers = append(closers, client)

	return notify.NewDedup(kafka, client, cfg.DedupTTL, logger), closers, nil
}
