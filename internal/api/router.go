package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/admin_login"
	createBookingHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/create_booking"
	declineBookingHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/decline_booking"
	deleteAdminBookingHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/delete_admin_booking"
	getAdminBookingsHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/get_calendar"
	loadPageHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/load_page"
	selectionHandler "github.com/m04kA/SMC-SlotScheduler/internal/api/handlers/selection"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/admin"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler"
	getAvailableSlotsUC "github.com/m04kA/SMC-SlotScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotScheduler/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости HTTP слоя
type Deps struct {
	Mode        domain.Mode
	Scheduler   *scheduler.Service
	Admin       *admin.Service
	Calendar    *getAvailableSlotsUC.UseCase
	Metrics     *metrics.Metrics // nil, если метрики выключены
	MetricsPath string
	ServiceName string
	RateLimiter *middleware.RateLimiter // nil, если ограничение выключено
	CORSOrigins []string
	Logger      Logger
}

// NewRouter собирает маршруты сервиса
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger

	// Инициализируем handlers
	loadPage := loadPageHandler.NewHandler(deps.Scheduler, log)
	getCalendar := getCalendarHandler.NewHandler(deps.Calendar, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(deps.Scheduler, log)
	selection := selectionHandler.NewHandler(deps.Scheduler, log)
	createBooking := createBookingHandler.NewHandler(deps.Scheduler, log)
	declineBooking := declineBookingHandler.NewHandler(deps.Scheduler, log)
	adminLogin := adminLoginHandler.NewHandler(deps.Admin, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(deps.Admin, log)
	deleteAdminBooking := deleteAdminBookingHandler.NewHandler(deps.Admin, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Session)

	// Добавляем metrics middleware (если метрики включены)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics, deps.ServiceName))
		r.Handle(deps.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	// Загрузка страницы: сверка со ссылкой отказа
	r.HandleFunc("/", loadPage.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates/{date}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/selection", selection.HandleSelect).Methods(http.MethodPost)
	api.HandleFunc("/selection", selection.HandleClose).Methods(http.MethodDelete)
	api.HandleFunc("/selection/move", selection.HandleMove).Methods(http.MethodPost)

	api.HandleFunc("/declines", declineBooking.Handle).Methods(http.MethodPost)

	// Запись и вход ограничены по частоте
	limited := api.PathPrefix("").Subrouter()
	if deps.RateLimiter != nil {
		limited.Use(deps.RateLimiter.Limit)
	}
	limited.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/selection/submit", createBooking.HandleSubmit).Methods(http.MethodPost)
	limited.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (basic auth)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AdminBasicAuth(deps.Admin, log))

	protected.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	if deps.Mode.IsDateAware() {
		protected.HandleFunc("/bookings/{date}/{time}", deleteAdminBooking.Handle).Methods(http.MethodDelete)
	} else {
		protected.HandleFunc("/bookings/{time}", deleteAdminBooking.Handle).Methods(http.MethodDelete)
	}

	return middleware.CORS(deps.CORSOrigins)(r)
}
