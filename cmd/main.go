package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SlotScheduler/internal/api"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/config"
	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/infra/slotstorage"
	bookingStore "github.com/m04kA/SMC-SlotScheduler/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotScheduler/internal/notify"
	adminService "github.com/m04kA/SMC-SlotScheduler/internal/service/admin"
	adminModels "github.com/m04kA/SMC-SlotScheduler/internal/service/admin/models"
	schedulerService "github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler"
	createBookingUC "github.com/m04kA/SMC-SlotScheduler/internal/usecase/create_booking"
	declineBookingUC "github.com/m04kA/SMC-SlotScheduler/internal/usecase/decline_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SlotScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotScheduler/pkg/logger"
	"github.com/m04kA/SMC-SlotScheduler/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SlotScheduler...")
	log.Info("Configuration loaded from config.toml (mode=%s, storage=%s)", cfg.Scheduler.Mode, cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	location, err := cfg.Scheduler.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	publicURL, err := url.Parse(cfg.Server.PublicURL)
	if err != nil {
		log.Fatal("Invalid public URL %q: %v", cfg.Server.PublicURL, err)
	}

	// Подключаем слот хранения
	storage, closeStorage, err := openStorage(cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeStorage()

	mode := domain.Mode(cfg.Scheduler.Mode)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	// Загружаем бронирования
	store := bookingStore.Open(startupCtx, storage, cfg.Storage.SlotName, mode, metricsCollector, log)
	log.Info("Booking store loaded: %d bookings in slot %q", store.Len(), cfg.Storage.SlotName)

	// Инициализируем use cases
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}
	getAvailableSlotsUseCase, err := getAvailableSlotsUC.NewUseCase(
		store,
		getAvailableSlotsUC.Config{
			StartMinute:     cfg.Scheduler.StartHour * 60,
			EndMinute:       cfg.Scheduler.EndHour * 60,
			IntervalMinutes: cfg.Scheduler.IntervalMinutes,
			MonthsForward:   cfg.Scheduler.MonthsForward,
		},
		timeProvider,
		log,
	)
	if err != nil {
		log.Fatal("Invalid slot configuration: %v", err)
	}

	var emailSender createBookingUC.EmailSender = notify.NewStubEmailSender(log)
	if sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.Mail.SendGridAPIKey,
		FromEmail: cfg.Mail.FromEmail,
		FromName:  cfg.Mail.FromName,
	}, log); sender != nil {
		emailSender = sender
		log.Info("SendGrid relay enabled (from=%s)", cfg.Mail.FromEmail)
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		getAvailableSlotsUseCase,
		emailSender,
		metricsCollector,
		createBookingUC.Config{
			PhoneDigits:     cfg.Scheduler.PhoneDigits,
			CountryCode:     cfg.Scheduler.CountryCode,
			Recipient:       cfg.Scheduler.Recipient,
			DefaultLocation: publicURL,
		},
		log,
	)

	declineBookingUseCase := declineBookingUC.NewUseCase(store, metricsCollector, log)

	// Инициализируем сервисы
	newToaster := func() schedulerService.Toaster {
		return notify.NewToaster(cfg.Scheduler.ToastDelay())
	}

	scheduler := schedulerService.NewService(
		store,
		getAvailableSlotsUseCase,
		declineBookingUseCase,
		createBookingUseCase,
		schedulerService.NewLogRenderer(log),
		newToaster,
		log,
	)
	defer scheduler.Close()
	if _, err := scheduler.Start(startupCtx, publicURL); err != nil {
		log.Fatal("Failed to start scheduler: %v", err)
	}

	admin := adminService.NewService(
		store,
		adminModels.Credentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
		timeProvider,
		log,
	)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		log.Info("Rate limit enabled: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	router := api.NewRouter(api.Deps{
		Mode:        mode,
		Scheduler:   scheduler,
		Admin:       admin,
		Calendar:    getAvailableSlotsUseCase,
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		ServiceName: cfg.Metrics.ServiceName,
		RateLimiter: rateLimiter,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Финальное сохранение слота
	store.Persist(shutdownCtx)

	log.Info("Server stopped gracefully")
}

// openStorage подключает драйвер слота хранения из конфигурации
func openStorage(cfg config.StorageConfig, log *logger.Logger) (bookingStore.SlotStorage, func(), error) {
	switch cfg.Driver {
	case "memory":
		log.Warn("Using in-memory storage: bookings are lost on restart")
		return slotstorage.NewMemoryStorage(), func() {}, nil

	case "file":
		storage, err := slotstorage.NewFileStorage(cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using file storage in %s", cfg.FilePath)
		return storage, func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("Using redis storage at %s (prefix=%q)", cfg.Redis.Addr, cfg.Redis.Prefix)
		return slotstorage.NewRedisStorage(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil

	case "postgres":
		pg := cfg.Postgres
		db, err := sql.Open("postgres", pg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(pg.MaxOpenConns)
		db.SetMaxIdleConns(pg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Using postgres storage (host=%s, port=%d, db=%s, table=%s)", pg.Host, pg.Port, pg.DBName, pg.Table)
		return slotstorage.NewPostgresStorage(db, pg.Table), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
