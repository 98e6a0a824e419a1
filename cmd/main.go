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

	completeStudentHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/complete_student"
	fillDefaultCapacitiesHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/fill_default_capacities"
	getCapacityHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/get_capacity"
	getCatalogHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/get_catalog"
	getProgressReportHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/get_progress_report"
	getSlotOccupancyHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/get_slot_occupancy"
	getStudentProgressHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/get_student_progress"
	listCapacitiesHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/list_capacities"
	projectCompletionHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/project_completion"
	resetCapacitiesHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/reset_capacities"
	setCapacityHandler "github.com/m04kA/SMC-CourseService/internal/api/handlers/set_capacity"
	"github.com/m04kA/SMC-CourseService/internal/api/middleware"
	"github.com/m04kA/SMC-CourseService/internal/config"
	"github.com/m04kA/SMC-CourseService/internal/engine/occupancy"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
	"github.com/m04kA/SMC-CourseService/internal/engine/schedule"
	attendanceRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/attendance"
	capacityRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/capacity"
	courseRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/course"
	studentRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/student"
	capacityService "github.com/m04kA/SMC-CourseService/internal/service/capacity"
	completeStudentUC "github.com/m04kA/SMC-CourseService/internal/usecase/complete_student"
	getProgressReportUC "github.com/m04kA/SMC-CourseService/internal/usecase/get_progress_report"
	getSlotOccupancyUC "github.com/m04kA/SMC-CourseService/internal/usecase/get_slot_occupancy"
	getStudentProgressUC "github.com/m04kA/SMC-CourseService/internal/usecase/get_student_progress"
	projectCompletionUC "github.com/m04kA/SMC-CourseService/internal/usecase/project_completion"
	"github.com/m04kA/SMC-CourseService/pkg/cache"
	"github.com/m04kA/SMC-CourseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourseService/pkg/logger"
	"github.com/m04kA/SMC-CourseService/pkg/metrics"
	"github.com/m04kA/SMC-CourseService/pkg/migrator"
)

const cachePrefix = "smc-course:"

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

	log.Info("Starting SMC-CourseService...")
	log.Info("Configuration loaded from config.toml")

	// Каталог слотов и календарь пропусков
	slotCatalog, err := cfg.BuildCatalog()
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	skipCalendar, err := cfg.BuildSkipCalendar()
	if err != nil {
		log.Fatal("Failed to build skip calendar: %v", err)
	}
	log.Info("Catalog loaded: %d slots on %d days, %d skip periods",
		slotCatalog.Len(), len(slotCatalog.Days()), len(skipCalendar))

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

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		if err := migrator.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	studentRepository := studentRepo.NewRepository(executor)
	courseRepository := courseRepo.NewRepository(executor)
	attendanceRepository := attendanceRepo.NewRepository(executor)

	var capacityRepository capacityService.CapacityRepository = capacityRepo.NewRepository(executor)

	// Кэш реестра вместимости (если включен)
	if cfg.Redis.Enabled {
		redisCache, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cachePrefix)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()

		capacityRepository = capacityRepo.NewCachedRepository(
			capacityRepository,
			redisCache,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
		log.Info("Capacity cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем движок расчетов
	aggregator := schedule.NewAggregator(slotCatalog)
	projector := projection.NewProjector(skipCalendar)
	calculator := occupancy.NewCalculator(slotCatalog, aggregator)
	tracker := progress.NewTracker(aggregator, projector)

	// Инициализируем сервисы
	capacitySvc := capacityService.NewService(
		capacityRepository,
		slotCatalog,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	getSlotOccupancyUseCase := getSlotOccupancyUC.NewUseCase(
		studentRepository,
		capacitySvc,
		calculator,
		metricsCollector,
		getSlotOccupancyUC.Options{
			AutoInitialize: cfg.Capacity.AutoInitialize,
			DefaultSeats:   cfg.Capacity.DefaultSeats,
		},
		log,
	)

	projectCompletionUseCase := projectCompletionUC.NewUseCase(
		courseRepository,
		aggregator,
		projector,
		metricsCollector,
		log,
	)

	getStudentProgressUseCase := getStudentProgressUC.NewUseCase(
		studentRepository,
		courseRepository,
		attendanceRepository,
		tracker,
		metricsCollector,
		log,
	)

	getProgressReportUseCase := getProgressReportUC.NewUseCase(
		studentRepository,
		courseRepository,
		attendanceRepository,
		tracker,
		metricsCollector,
		log,
	)

	completeStudentUseCase := completeStudentUC.NewUseCase(
		studentRepository,
		courseRepository,
		attendanceRepository,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(slotCatalog, log)
	listCapacities := listCapacitiesHandler.NewHandler(capacitySvc, log)
	getCapacity := getCapacityHandler.NewHandler(capacitySvc, log)
	setCapacity := setCapacityHandler.NewHandler(capacitySvc, log)
	fillDefaultCapacities := fillDefaultCapacitiesHandler.NewHandler(capacitySvc, cfg.Capacity.DefaultSeats, log)
	resetCapacities := resetCapacitiesHandler.NewHandler(capacitySvc, cfg.Capacity.DefaultSeats, log)
	getSlotOccupancy := getSlotOccupancyHandler.NewHandler(getSlotOccupancyUseCase, log)
	projectCompletion := projectCompletionHandler.NewHandler(projectCompletionUseCase, log)
	getStudentProgress := getStudentProgressHandler.NewHandler(getStudentProgressUseCase, log)
	getProgressReport := getProgressReportHandler.NewHandler(getProgressReportUseCase, log)
	completeStudent := completeStudentHandler.NewHandler(completeStudentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// --- Реестр вместимости ---
	// Статические пути регистрируются раньше /time-slots/{slotId}
	api.HandleFunc("/time-slots", listCapacities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/day/{day}", listCapacities.HandleByDay).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/fill-defaults", fillDefaultCapacities.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-slots/reset-defaults", resetCapacities.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-slots/{slotId}", getCapacity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/{slotId}", setCapacity.Handle).Methods(http.MethodPatch)

	// --- Заполненность и прогнозы ---
	api.HandleFunc("/occupancy", getSlotOccupancy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy/{slotId}", getSlotOccupancy.HandleSlot).Methods(http.MethodGet)
	api.HandleFunc("/projections", projectCompletion.Handle).Methods(http.MethodPost)

	// --- Прогресс студентов ---
	api.HandleFunc("/students/{studentId}/progress", getStudentProgress.Handle).Methods(http.MethodGet)
	api.HandleFunc("/students/{studentId}/complete", completeStudent.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	api.HandleFunc("/reports/progress", getProgressReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/progress.xlsx", getProgressReport.HandleXLSX).Methods(http.MethodGet)

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
