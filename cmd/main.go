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

	createBookingHandler "github.com/m04kA/OBT-TerminService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/OBT-TerminService/internal/api/handlers/get_booking"
	getFreeSlotsHandler "github.com/m04kA/OBT-TerminService/internal/api/handlers/get_free_slots"
	listBeraterHandler "github.com/m04kA/OBT-TerminService/internal/api/handlers/list_berater"
	listTerminartenHandler "github.com/m04kA/OBT-TerminService/internal/api/handlers/list_terminarten"
	"github.com/m04kA/OBT-TerminService/internal/api/middleware"
	"github.com/m04kA/OBT-TerminService/internal/config"
	"github.com/m04kA/OBT-TerminService/internal/domain"
	bookingRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/booking"
	referenceRepo "github.com/m04kA/OBT-TerminService/internal/infra/storage/reference"
	referenceService "github.com/m04kA/OBT-TerminService/internal/service/reference"
	termineService "github.com/m04kA/OBT-TerminService/internal/service/termine"
	createBookingUC "github.com/m04kA/OBT-TerminService/internal/usecase/create_booking"
	getFreeSlotsUC "github.com/m04kA/OBT-TerminService/internal/usecase/get_free_slots"
	"github.com/m04kA/OBT-TerminService/pkg/dbmetrics"
	"github.com/m04kA/OBT-TerminService/pkg/kalenderwoche"
	"github.com/m04kA/OBT-TerminService/pkg/logger"
	"github.com/m04kA/OBT-TerminService/pkg/metrics"
	"github.com/m04kA/OBT-TerminService/pkg/simpletxmanager"
	"github.com/m04kA/OBT-TerminService/pkg/txmanager"
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

	log.Info("Starting OBT-TerminService...")
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

	// Правило нумерации календарных недель
	firstDay, err := cfg.Scheduling.FirstDay()
	if err != nil {
		log.Fatal("Invalid scheduling config: %v", err)
	}
	weekResolver := kalenderwoche.NewResolver(kalenderwoche.Rule{
		FirstDay:           firstDay,
		MinDaysInFirstWeek: cfg.Scheduling.MinDaysInFirstWeek,
	})
	log.Info("Week numbering rule: first_day=%s, min_days_in_first_week=%d",
		firstDay, cfg.Scheduling.MinDaysInFirstWeek)

	// Рабочие часы консультантов
	schedule := domain.DefaultWeekSchedule()

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		referenceRepository *referenceRepo.Repository
		txMgr               TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		referenceRepository = referenceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		referenceRepository = referenceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	termineSvc := termineService.NewService(bookingRepository, log)
	referenceSvc := referenceService.NewService(referenceRepository, log)

	// Инициализируем use cases
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		bookingRepository,
		referenceRepository,
		weekResolver,
		schedule,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		referenceRepository,
		txMgr,
		schedule,
		log,
	)

	// Инициализируем handlers
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(termineSvc, log)
	listTerminarten := listTerminartenHandler.NewHandler(referenceSvc, log)
	listBerater := listBeraterHandler.NewHandler(referenceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные слоты на календарную неделю
	api.HandleFunc("/termine/available", getFreeSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/termine", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/termine/{terminId}", getBooking.Handle).Methods(http.MethodGet)

	// Справочники
	api.HandleFunc("/terminarten", listTerminarten.Handle).Methods(http.MethodGet)
	api.HandleFunc("/berater", listBerater.Handle).Methods(http.MethodGet)

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
