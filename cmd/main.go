package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignClientHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/assign_client"
	blockSlotsHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/block_slots"
	cancelBookingHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/create_booking"
	createClientHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/create_client"
	createCoachHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/create_coach"
	createTrainingHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/create_training"
	getAnalyticsHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/get_analytics"
	getClientHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/get_client"
	getDayScheduleHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/get_day_schedule"
	getFinancialsHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/get_financials"
	listClientsHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/list_clients"
	listCoachesHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/list_coaches"
	listCourtsHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/list_courts"
	updateCoachHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/update_coach"
	validateBookingHandler "github.com/tennispark/TP-AdminService/internal/api/handlers/validate_booking"
	"github.com/tennispark/TP-AdminService/internal/api/middleware"
	"github.com/tennispark/TP-AdminService/internal/config"
	"github.com/tennispark/TP-AdminService/internal/demo"
	clientsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/clients"
	coachesRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/coaches"
	courtsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/courts"
	slotsRepo "github.com/tennispark/TP-AdminService/internal/infra/storage/slots"
	analyticsService "github.com/tennispark/TP-AdminService/internal/service/analytics"
	clientsService "github.com/tennispark/TP-AdminService/internal/service/clients"
	coachesService "github.com/tennispark/TP-AdminService/internal/service/coaches"
	financialsService "github.com/tennispark/TP-AdminService/internal/service/financials"
	scheduleService "github.com/tennispark/TP-AdminService/internal/service/schedule"
	createBookingUC "github.com/tennispark/TP-AdminService/internal/usecase/create_booking"
	createTrainingUC "github.com/tennispark/TP-AdminService/internal/usecase/create_training"
	getDayScheduleUC "github.com/tennispark/TP-AdminService/internal/usecase/get_day_schedule"
	"github.com/tennispark/TP-AdminService/pkg/logger"
	"github.com/tennispark/TP-AdminService/pkg/metrics"
)

// systemClock источник текущего времени для сервисов
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

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

	log.Info("Starting TP-AdminService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозитории
	slotRepository := slotsRepo.NewRepository()
	courtRepository := courtsRepo.NewRepository(cfg.Club.DomainCourts())
	coachRepository := coachesRepo.NewRepository()
	clientRepository := clientsRepo.NewRepository()
	log.Info("Repositories initialized (courts=%d)", len(cfg.Club.Courts))

	// Загружаем демо-данные (если включены)
	if cfg.Demo.Enabled {
		if err := slotRepository.Seed(demo.Slots()); err != nil {
			log.Fatal("Failed to seed demo slots: %v", err)
		}
		coachRepository.Seed(demo.Coaches())
		clientRepository.Seed(demo.Clients(), demo.BookingHistory())
		log.Info("Demo data loaded for %s", demo.Date.Format("2006-01-02"))
	}

	clock := systemClock{}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		slotRepository,
		courtRepository,
		&createBookingUC.UUIDGenerator{},
		log,
	)
	financialsSvc := financialsService.NewService(slotRepository, courtRepository, log)
	coachesSvc := coachesService.NewService(coachRepository, clock, log)
	clientsSvc := clientsService.NewService(clientRepository, clock, log)
	analyticsSvc := analyticsService.NewService(log)

	// Интерфейсы метрик use cases остаются nil, когда метрики выключены
	var (
		bookingMetrics  createBookingUC.Metrics
		trainingMetrics createTrainingUC.Metrics
	)
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
		trainingMetrics = metricsCollector
	}

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(slotRepository, courtRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		courtRepository,
		coachRepository,
		&createBookingUC.UUIDGenerator{},
		bookingMetrics,
		log,
	)

	createTrainingUseCase := createTrainingUC.NewUseCase(
		slotRepository,
		courtRepository,
		coachRepository,
		&createBookingUC.UUIDGenerator{},
		trainingMetrics,
		log,
	)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(scheduleSvc, log)
	createTraining := createTrainingHandler.NewHandler(createTrainingUseCase, log)
	assignClient := assignClientHandler.NewHandler(scheduleSvc, log)
	blockSlots := blockSlotsHandler.NewHandler(scheduleSvc, log)
	getFinancials := getFinancialsHandler.NewHandler(financialsSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtRepository, log)
	listCoaches := listCoachesHandler.NewHandler(coachesSvc, log)
	createCoach := createCoachHandler.NewHandler(coachesSvc, log)
	updateCoach := updateCoachHandler.NewHandler(coachesSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Тренировки ---
	api.HandleFunc("/trainings", createTraining.Handle).Methods(http.MethodPost)
	api.HandleFunc("/trainings/client", assignClient.Handle).Methods(http.MethodPatch)

	// --- Блокировка слотов ---
	api.HandleFunc("/slots/block", blockSlots.Handle).Methods(http.MethodPost)

	// --- Финансы и аналитика ---
	api.HandleFunc("/financials", getFinancials.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics", getAnalytics.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches", listCoaches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches", createCoach.Handle).Methods(http.MethodPost)
	api.HandleFunc("/coaches/{coachId}", updateCoach.Handle).Methods(http.MethodPut)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)

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
