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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/restburger/reservation-service/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/restburger/reservation-service/internal/api/handlers/delete_reservation"
	getClosedDaysHandler "github.com/restburger/reservation-service/internal/api/handlers/get_closed_days"
	getDaySlotsHandler "github.com/restburger/reservation-service/internal/api/handlers/get_day_slots"
	getReservationHandler "github.com/restburger/reservation-service/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/restburger/reservation-service/internal/api/handlers/get_settings"
	listReservationsHandler "github.com/restburger/reservation-service/internal/api/handlers/list_reservations"
	moveReservationHandler "github.com/restburger/reservation-service/internal/api/handlers/move_reservation"
	updateClosedDaysHandler "github.com/restburger/reservation-service/internal/api/handlers/update_closed_days"
	updateReservationHandler "github.com/restburger/reservation-service/internal/api/handlers/update_reservation"
	updateSettingsHandler "github.com/restburger/reservation-service/internal/api/handlers/update_settings"
	"github.com/restburger/reservation-service/internal/api/middleware"
	"github.com/restburger/reservation-service/internal/config"
	"github.com/restburger/reservation-service/internal/infra/storage"
	kvRepo "github.com/restburger/reservation-service/internal/infra/storage/kv"
	reservationRepo "github.com/restburger/reservation-service/internal/infra/storage/reservation"
	reservationsService "github.com/restburger/reservation-service/internal/service/reservations"
	scheduleService "github.com/restburger/reservation-service/internal/service/schedule"
	createReservationUC "github.com/restburger/reservation-service/internal/usecase/create_reservation"
	moveReservationUC "github.com/restburger/reservation-service/internal/usecase/move_reservation"
	updateReservationUC "github.com/restburger/reservation-service/internal/usecase/update_reservation"
	"github.com/restburger/reservation-service/pkg/dbstats"
	"github.com/restburger/reservation-service/pkg/logger"
	"github.com/restburger/reservation-service/pkg/metrics"
	"github.com/restburger/reservation-service/pkg/txmanager"
)

func main() {
	// .env опционален: переменные окружения имеют приоритет над config.toml
	_ = godotenv.Load()

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

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		kvRepository          *kvRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbstats.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		kvRepository = kvRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		kvRepository = kvRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(dbstats.Adapt(db))
	}

	// Создаем схему и сажаем дефолтные документы settings/closed
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 30*time.Second)
	if err := storage.Bootstrap(bootstrapCtx, db, kvRepository); err != nil {
		cancelBootstrap()
		log.Fatal("Failed to bootstrap storage: %v", err)
	}
	cancelBootstrap()
	log.Info("Storage schema ready, default documents seeded")

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(kvRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		scheduleSvc,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		scheduleSvc,
		txMgr,
		log,
	)
	moveReservationUseCase := moveReservationUC.NewUseCase(
		reservationRepository,
		scheduleSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	moveReservation := moveReservationHandler.NewHandler(moveReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getSettings := getSettingsHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(scheduleSvc, log)
	getClosedDays := getClosedDaysHandler.NewHandler(scheduleSvc, log)
	updateClosedDays := updateClosedDaysHandler.NewHandler(scheduleSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Брони ---
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}/move", moveReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Настройки и календарь закрытий ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/closed", getClosedDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/closed", updateClosedDays.Handle).Methods(http.MethodPut)

	// --- Слоты дня ---
	api.HandleFunc("/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr: addr,
		// CORS оборачивает весь роутер: preflight OPTIONS обслуживается
		// до маршрутизации и не требует отдельных роутов
		Handler:      middleware.CORS(r),
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
