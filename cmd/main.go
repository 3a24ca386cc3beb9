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

	courtsHandler "github.com/m04kA/SMC-CourtReservationService/internal/api/handlers/courts"
	createReservationHandler "github.com/m04kA/SMC-CourtReservationService/internal/api/handlers/create_reservation"
	reservationsHandler "github.com/m04kA/SMC-CourtReservationService/internal/api/handlers/reservations"
	surfaceTypesHandler "github.com/m04kA/SMC-CourtReservationService/internal/api/handlers/surface_types"
	updateReservationHandler "github.com/m04kA/SMC-CourtReservationService/internal/api/handlers/update_reservation"
	usersHandler "github.com/m04kA/SMC-CourtReservationService/internal/api/handlers/users"
	"github.com/m04kA/SMC-CourtReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtReservationService/internal/bootstrap"
	"github.com/m04kA/SMC-CourtReservationService/internal/config"
	courtRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/reservation"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
	userRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/user"
	courtsService "github.com/m04kA/SMC-CourtReservationService/internal/service/courts"
	reservationsService "github.com/m04kA/SMC-CourtReservationService/internal/service/reservations"
	surfaceTypesService "github.com/m04kA/SMC-CourtReservationService/internal/service/surfacetypes"
	usersService "github.com/m04kA/SMC-CourtReservationService/internal/service/users"
	createReservationUC "github.com/m04kA/SMC-CourtReservationService/internal/usecase/create_reservation"
	updateReservationUC "github.com/m04kA/SMC-CourtReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-CourtReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtReservationService/pkg/logger"
	"github.com/m04kA/SMC-CourtReservationService/pkg/metrics"
	"github.com/m04kA/SMC-CourtReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtReservationService...")
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
		surfaceTypeRepository *surfaceTypeRepo.Repository
		courtRepository       *courtRepo.Repository
		userRepository        *userRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		surfaceTypeRepository = surfaceTypeRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		surfaceTypeRepository = surfaceTypeRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	surfaceTypeSvc := surfaceTypesService.NewService(surfaceTypeRepository, log)
	courtSvc := courtsService.NewService(courtRepository, surfaceTypeRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, userRepository, log)

	// Создаем стартовый каталог кортов (если включено)
	if cfg.Seed.Enabled {
		if err := bootstrap.SeedCatalog(context.Background(), surfaceTypeSvc, courtSvc, log); err != nil {
			log.Fatal("Failed to seed initial data: %v", err)
		}
		log.Info("Initial catalog seeded")
	}

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		courtRepository,
		surfaceTypeRepository,
		userSvc,
		txMgr,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		courtRepository,
		surfaceTypeRepository,
		userSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	reservations := reservationsHandler.NewHandler(reservationSvc, log)
	surfaceTypes := surfaceTypesHandler.NewHandler(surfaceTypeSvc, log)
	courts := courtsHandler.NewHandler(courtSvc, log)
	users := usersHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Типы покрытий ---
	api.HandleFunc("/surface-types", surfaceTypes.Create).Methods(http.MethodPost)
	api.HandleFunc("/surface-types", surfaceTypes.List).Methods(http.MethodGet)
	api.HandleFunc("/surface-types", surfaceTypes.DeleteAll).Methods(http.MethodDelete)
	api.HandleFunc("/surface-types/{surfaceTypeId}", surfaceTypes.Get).Methods(http.MethodGet)
	api.HandleFunc("/surface-types/{surfaceTypeId}", surfaceTypes.Update).Methods(http.MethodPut)
	api.HandleFunc("/surface-types/{surfaceTypeId}", surfaceTypes.Delete).Methods(http.MethodDelete)

	// --- Корты ---
	api.HandleFunc("/courts", courts.Create).Methods(http.MethodPost)
	api.HandleFunc("/courts", courts.List).Methods(http.MethodGet)
	api.HandleFunc("/courts", courts.DeleteAll).Methods(http.MethodDelete)
	api.HandleFunc("/courts/{courtId}", courts.Get).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", courts.Update).Methods(http.MethodPut)
	api.HandleFunc("/courts/{courtId}", courts.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/courts/{courtId}/reservations", reservations.ListByCourt).Methods(http.MethodGet)

	// --- Пользователи ---
	api.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	api.HandleFunc("/users", users.List).Methods(http.MethodGet)
	api.HandleFunc("/users", users.DeleteAll).Methods(http.MethodDelete)
	api.HandleFunc("/users/{userId}", users.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", users.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", users.Delete).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations", reservations.DeleteAll).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{reservationId}", reservations.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}", reservations.Delete).Methods(http.MethodDelete)

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
