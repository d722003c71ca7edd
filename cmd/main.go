package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBoatHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/create_boat"
	createCheckoutSessionHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/create_checkout_session"
	getAvailableSlotsHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/get_available_slots"
	getBoatHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/get_boat"
	getBoatBookingsHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/get_boat_bookings"
	getBoatReviewsHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/get_boat_reviews"
	getBookingHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/get_user_bookings"
	listBoatsHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/list_boats"
	stripeWebhookHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/stripe_webhook"
	submitReviewHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/submit_review"
	verifyCheckoutSessionHandler "github.com/m04kA/BCM-BookingService/internal/api/handlers/verify_checkout_session"
	"github.com/m04kA/BCM-BookingService/internal/api/middleware"
	"github.com/m04kA/BCM-BookingService/internal/app"
	"github.com/m04kA/BCM-BookingService/internal/config"
	boatRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
	bookingRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/review"
	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
	boatsService "github.com/m04kA/BCM-BookingService/internal/service/boats"
	bookingsService "github.com/m04kA/BCM-BookingService/internal/service/bookings"
	reviewsService "github.com/m04kA/BCM-BookingService/internal/service/reviews"
	confirmBookingUC "github.com/m04kA/BCM-BookingService/internal/usecase/confirm_booking"
	createCheckoutSessionUC "github.com/m04kA/BCM-BookingService/internal/usecase/create_checkout_session"
	getAvailableSlotsUC "github.com/m04kA/BCM-BookingService/internal/usecase/get_available_slots"
	submitReviewUC "github.com/m04kA/BCM-BookingService/internal/usecase/submit_review"
	verifySessionUC "github.com/m04kA/BCM-BookingService/internal/usecase/verify_session"
	"github.com/m04kA/BCM-BookingService/migrations"
	"github.com/m04kA/BCM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BCM-BookingService/pkg/logger"
	"github.com/m04kA/BCM-BookingService/pkg/metrics"
	"github.com/m04kA/BCM-BookingService/pkg/mq"
	"github.com/m04kA/BCM-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/BCM-BookingService/pkg/txmanager"
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

	log.Info("Starting BCM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции схемы
	migrator, err := app.NewMigrator(db, migrations.FS, ".")
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database schema at version %d", version)
	}

	// Инициализируем клиента платёжной платформы
	stripeClient := stripeclient.NewClient(cfg.Stripe.SecretKey, log)
	log.Info("Stripe client initialized")

	// Инициализируем publisher событий (если включён)
	var publisher *mq.Publisher
	if cfg.Events.Enabled {
		publisher, err = mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		defer publisher.Close()
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		boatRepository    *boatRepo.Repository
		reviewRepository  *reviewRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		boatRepository = boatRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		boatRepository = boatRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, boatRepository, log)
	boatSvc := boatsService.NewService(boatRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, boatRepository, log)

	// Инициализируем use cases
	createCheckoutSessionUseCase := createCheckoutSessionUC.NewUseCase(
		stripeClient,
		cfg.Stripe.PublicAppURL,
		log,
	)

	var eventPublisher confirmBookingUC.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		boatRepository,
		eventPublisher,
		log,
	)

	verifySessionUseCase := verifySessionUC.NewUseCase(stripeClient, confirmBookingUseCase, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(boatRepository, bookingRepository, log)

	submitReviewUseCase := submitReviewUC.NewUseCase(
		boatRepository,
		bookingRepository,
		reviewRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(createCheckoutSessionUseCase, log)
	verifyCheckoutSession := verifyCheckoutSessionHandler.NewHandler(verifySessionUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(confirmBookingUseCase, cfg.Stripe.WebhookSecret, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBoatBookings := getBoatBookingsHandler.NewHandler(bookingSvc, log)
	submitReview := submitReviewHandler.NewHandler(submitReviewUseCase, log)
	getBoatReviews := getBoatReviewsHandler.NewHandler(reviewSvc, log)
	createBoat := createBoatHandler.NewHandler(boatSvc, log)
	getBoat := getBoatHandler.NewHandler(boatSvc, log)
	listBoats := listBoatsHandler.NewHandler(boatSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Webhook платёжной платформы (подпись события вместо аутентификации)
	r.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог лодок
	api.HandleFunc("/boats", listBoats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/boats/{boatId}", getBoat.Handle).Methods(http.MethodGet)

	// Доступные слоты лодки на дату
	api.HandleFunc("/boats/{boatId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Отзывы лодки
	api.HandleFunc("/boats/{boatId}/reviews", getBoatReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Оплата ---
	// Создание checkout session
	protected.HandleFunc("/checkout/sessions", createCheckoutSession.Handle).Methods(http.MethodPost)

	// Верификация сессии после redirect
	protected.HandleFunc("/checkout/verify", verifyCheckoutSession.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Бронирования лодки (только для владельца)
	protected.HandleFunc("/boats/{boatId}/bookings", getBoatBookings.Handle).Methods(http.MethodGet)

	// --- Лодки и отзывы ---
	// Создание карточки лодки
	protected.HandleFunc("/boats", createBoat.Handle).Methods(http.MethodPost)

	// Публикация отзыва
	protected.HandleFunc("/boats/{boatId}/reviews", submitReview.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
