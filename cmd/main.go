package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createSlotBookingHandler "github.com/zemzen/booking-service/internal/api/handlers/create_slot_booking"
	createStayBookingHandler "github.com/zemzen/booking-service/internal/api/handlers/create_stay_booking"
	getBookedDatesHandler "github.com/zemzen/booking-service/internal/api/handlers/get_booked_dates"
	getBookedSlotsHandler "github.com/zemzen/booking-service/internal/api/handlers/get_booked_slots"
	getBookedStayDatesHandler "github.com/zemzen/booking-service/internal/api/handlers/get_booked_stay_dates"
	healthHandler "github.com/zemzen/booking-service/internal/api/handlers/health"
	"github.com/zemzen/booking-service/internal/api/middleware"
	"github.com/zemzen/booking-service/internal/config"
	"github.com/zemzen/booking-service/internal/infra/migrator"
	slotBookingRepo "github.com/zemzen/booking-service/internal/infra/storage/slotbooking"
	stayBookingRepo "github.com/zemzen/booking-service/internal/infra/storage/staybooking"
	"github.com/zemzen/booking-service/internal/integrations/gcalendar"
	"github.com/zemzen/booking-service/internal/integrations/mailer"
	"github.com/zemzen/booking-service/internal/service/availability"
	"github.com/zemzen/booking-service/internal/service/dispatch"
	createSlotBookingUC "github.com/zemzen/booking-service/internal/usecase/create_slot_booking"
	createStayBookingUC "github.com/zemzen/booking-service/internal/usecase/create_stay_booking"
	"github.com/zemzen/booking-service/migrations"
	"github.com/zemzen/booking-service/pkg/dbmetrics"
	"github.com/zemzen/booking-service/pkg/logger"
	"github.com/zemzen/booking-service/pkg/metrics"
	"github.com/zemzen/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Миграции
	if cfg.Database.AutoMigrate {
		mg, err := migrator.NewMigrator(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to create migrator: %v", err)
		}
		if err := mg.Run(startupCtx); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Обёртка над БД: с метриками запросов и пула или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории
	slotRepository := slotBookingRepo.NewRepository(wrappedDB)
	stayRepository := stayBookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Интеграции. nil означает, что интеграция выключена
	var mailClient dispatch.Mailer
	if cfg.SMTP.Enabled {
		mailClient = mailer.NewClient(mailer.Config{
			Host:       cfg.SMTP.Host,
			Port:       cfg.SMTP.Port,
			Username:   cfg.SMTP.Username,
			Password:   cfg.SMTP.Password,
			From:       cfg.SMTP.From,
			AdminEmail: cfg.SMTP.AdminEmail,
		}, log)
		log.Info("SMTP notifications enabled (host=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Warn("SMTP notifications disabled")
	}

	var calendarClient dispatch.Calendar
	if cfg.Calendar.Enabled {
		// контекст живет все время работы сервиса: через него обновляется токен
		client, err := gcalendar.NewClient(context.Background(), gcalendar.Config{
			CalendarID:        cfg.Calendar.CalendarID,
			CredentialsFile:   cfg.Calendar.CredentialsFile,
			Location:          cfg.Booking.Location(),
			SlotEventDuration: cfg.Booking.SlotEventDuration(),
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		calendarClient = client
		log.Info("Google Calendar sync enabled (calendar=%s)", cfg.Calendar.CalendarID)
	} else {
		log.Warn("Google Calendar sync disabled")
	}

	// Сервисы
	policy := cfg.Booking.Policy()
	availabilitySvc := availability.NewService(slotRepository, stayRepository, policy, log)
	dispatchSvc := dispatch.NewService(
		mailClient,
		calendarClient,
		metricsCollector,
		time.Duration(cfg.Booking.SideEffectsTimeout)*time.Second,
		log,
	)

	// Use cases
	createSlotBookingUseCase := createSlotBookingUC.NewUseCase(
		slotRepository,
		dispatchSvc,
		metricsCollector,
		policy,
		log,
	)
	createStayBookingUseCase := createStayBookingUC.NewUseCase(
		stayRepository,
		txMgr,
		dispatchSvc,
		metricsCollector,
		policy,
		log,
	)

	// Handlers
	getBookedSlots := getBookedSlotsHandler.NewHandler(availabilitySvc, log)
	getBookedDates := getBookedDatesHandler.NewHandler(availabilitySvc, log)
	getBookedStayDates := getBookedStayDatesHandler.NewHandler(availabilitySvc, log)
	createSlotBooking := createSlotBookingHandler.NewHandler(createSlotBookingUseCase, log)
	createStayBooking := createStayBookingHandler.NewHandler(createStayBookingUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// Ограничение частоты только для создания бронирований
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			10*time.Minute,
			cfg.RateLimit.TrustedProxies,
			log,
		)
		limit = func(h http.HandlerFunc) http.Handler { return rl.Limit(h) }
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/booked-timeslots", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booked-dates", getBookedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booked-stay-dates", getBookedStayDates.Handle).Methods(http.MethodGet)
	api.Handle("/bookings", limit(createSlotBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/stays", limit(createStayBooking.Handle)).Methods(http.MethodPost)

	// Пути, которые вызывает текущая версия сайта
	r.HandleFunc("/booked-timeslots", getBookedSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/booked-dates", getBookedDates.Handle).Methods(http.MethodGet)
	r.HandleFunc("/booked-stay-dates", getBookedStayDates.Handle).Methods(http.MethodGet)
	r.Handle("/book", limit(createSlotBooking.Handle)).Methods(http.MethodPost)
	r.Handle("/book-stay", limit(createStayBooking.Handle)).Methods(http.MethodPost)

	// CORS оборачивает роутер целиком, чтобы preflight OPTIONS не упирался в Methods()
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORS.AllowedOrigins)(r)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
