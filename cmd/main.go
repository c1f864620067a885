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

	cancelReservationHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/create_reservation"
	getCalendarHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/get_calendar"
	getDaySlotsHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/get_day_slots"
	getReservationHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/get_reservation"
	getResidentReservationsHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/get_resident_reservations"
	getSpaceScheduleHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/get_space_schedule"
	updateSpaceScheduleHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/update_space_schedule"
	validateReservationHandler "github.com/m04kA/Condo-ReservationService/internal/api/handlers/validate_reservation"
	"github.com/m04kA/Condo-ReservationService/internal/api/middleware"
	"github.com/m04kA/Condo-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
	residentServiceClient "github.com/m04kA/Condo-ReservationService/internal/integrations/residentservice"
	reservationsService "github.com/m04kA/Condo-ReservationService/internal/service/reservations"
	scheduleService "github.com/m04kA/Condo-ReservationService/internal/service/schedule"
	createReservationUC "github.com/m04kA/Condo-ReservationService/internal/usecase/create_reservation"
	getCalendarUC "github.com/m04kA/Condo-ReservationService/internal/usecase/get_calendar_availability"
	getDaySlotsUC "github.com/m04kA/Condo-ReservationService/internal/usecase/get_day_slots"
	validateReservationUC "github.com/m04kA/Condo-ReservationService/internal/usecase/validate_reservation"
	"github.com/m04kA/Condo-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Condo-ReservationService/pkg/logger"
	"github.com/m04kA/Condo-ReservationService/pkg/metrics"
	"github.com/m04kA/Condo-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/Condo-ReservationService/pkg/txmanager"
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

	log.Info("Starting Condo-ReservationService...")
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

	// Инициализируем клиент ResidentService
	residentClient := residentServiceClient.NewClient(
		cfg.ResidentService.URL,
		time.Duration(cfg.ResidentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ResidentService=%s timeout=%ds)",
		cfg.ResidentService.URL, cfg.ResidentService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		spaceRepository       *spaceRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		spaceRepository = spaceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		spaceRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		residentClient,
		txMgr,
		log,
	)

	validateReservationUseCase := validateReservationUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		log,
	)

	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	validateReservation := validateReservationHandler.NewHandler(validateReservationUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getResidentReservations := getResidentReservationsHandler.NewHandler(reservationSvc, log)
	getSpaceSchedule := getSpaceScheduleHandler.NewHandler(scheduleSvc, log)
	updateSpaceSchedule := updateSpaceScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты помещения на дату
	api.HandleFunc("/spaces/{spaceId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Месячная сетка доступности помещения
	api.HandleFunc("/spaces/{spaceId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Недельное расписание помещения
	api.HandleFunc("/spaces/{spaceId}/schedule", getSpaceSchedule.Handle).Methods(http.MethodGet)

	// Консультативная проверка кандидата на бронь
	api.HandleFunc("/reservations/validate", validateReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История броней резидента
	protected.HandleFunc("/residents/{residentId}/reservations", getResidentReservations.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для менеджеров) ---
	protected.HandleFunc("/spaces/{spaceId}/schedule", updateSpaceSchedule.Handle).Methods(http.MethodPut)

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
