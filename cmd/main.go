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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/create_booking"
	createRoomHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/create_room"
	getAvailableSlotsHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/get_business_hours"
	getRoomHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/get_room"
	getTenantBookingsHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/get_tenant_bookings"
	listRoomsHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/list_rooms"
	updateBookingStatusHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/update_booking_status"
	updateBusinessHoursHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/update_business_hours"
	updateRoomHandler "github.com/samueljai120/boom-booking-service/internal/api/handlers/update_room"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/config"
	"github.com/samueljai120/boom-booking-service/internal/infra/cache"
	bookingRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/booking"
	hoursRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/hours"
	roomRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/room"
	tenantRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/tenant"
	bookingsService "github.com/samueljai120/boom-booking-service/internal/service/bookings"
	hoursService "github.com/samueljai120/boom-booking-service/internal/service/hours"
	roomsService "github.com/samueljai120/boom-booking-service/internal/service/rooms"
	tenantsService "github.com/samueljai120/boom-booking-service/internal/service/tenants"
	createBookingUC "github.com/samueljai120/boom-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/samueljai120/boom-booking-service/internal/usecase/get_available_slots"
	"github.com/samueljai120/boom-booking-service/pkg/dbmetrics"
	"github.com/samueljai120/boom-booking-service/pkg/logger"
	"github.com/samueljai120/boom-booking-service/pkg/metrics"
	"github.com/samueljai120/boom-booking-service/pkg/simpletxmanager"
	"github.com/samueljai120/boom-booking-service/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если файл есть)
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

	log.Info("Starting boom-booking-service...")
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

	// Кэш справочника тенантов (опциональный, сервис работает и без него)
	var tenantCache tenantsService.TenantCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		tenantCache = cache.NewTenantCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
		log.Info("Tenant cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		tenantRepository  *tenantRepo.Repository
		roomRepository    *roomRepo.Repository
		hoursRepository   *hoursRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tenantRepository = tenantRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tenantRepository = tenantRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	tenantSvc := tenantsService.NewService(tenantRepository, tenantCache, log)
	roomSvc := roomsService.NewService(roomRepository, log)
	hoursSvc := hoursService.NewService(hoursRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		hoursRepository,
		bookingRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		roomRepository,
		hoursRepository,
		bookingRepository,
		cfg.Booking.SlotSizeMinutes,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getTenantBookings := getTenantBookingsHandler.NewHandler(bookingSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestIDMiddleware)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, вне тенантного контекста)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты работают в контексте тенанта,
	// определяемого заголовком X-Tenant-Subdomain
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.TenantMiddleware(tenantSvc, log))

	// ============================================================
	// PUBLIC ROUTES (тенант обязателен, аутентификация не нужна)
	// ============================================================

	// Список комнат тенанта
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Комната по ID
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Сетка доступных слотов комнаты на дату
	api.HandleFunc("/rooms/{roomId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание рабочих часов
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(log))

	// --- Бронирования ---
	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевод бронирования в completed / no_show
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Список бронирований тенанта с фильтрами
	protected.HandleFunc("/tenant/bookings", getTenantBookings.Handle).Methods(http.MethodGet)

	// --- Управление тенантом ---
	// Создание комнаты
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)

	// Включение/выключение комнаты для бронирования
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)

	// Обновление недельного расписания
	protected.HandleFunc("/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)

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
