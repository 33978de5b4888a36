package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках компоненты получают nil
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	declinesTotal       *prometheus.CounterVec
	storageErrorsTotal  *prometheus.CounterVec
	bookingsStored      prometheus.Gauge
}

// New создает и регистрирует метрики. Если reg == nil, используется prometheus.DefaultRegisterer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduler_bookings_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		declinesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduler_declines_total",
			Help:        "Processed decline requests by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		storageErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduler_storage_errors_total",
			Help:        "Soft-failed storage slot operations",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		bookingsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "scheduler_bookings_stored",
			Help:        "Number of bookings currently held by the store",
			ConstLabels: constLabels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.declinesTotal,
		m.storageErrorsTotal,
		m.bookingsStored,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveBooking фиксирует результат попытки бронирования (created, missing_name, bad_phone, slot_taken, ...)
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDecline фиксирует результат обработки ссылки отказа (removed, noop, absent)
func (m *Metrics) ObserveDecline(result string) {
	if m == nil {
		return
	}
	m.declinesTotal.WithLabelValues(result).Inc()
}

// ObserveStorageError фиксирует мягко обработанную ошибку хранилища (load, persist)
func (m *Metrics) ObserveStorageError(operation string) {
	if m == nil {
		return
	}
	m.storageErrorsTotal.WithLabelValues(operation).Inc()
}

// SetBookingsStored обновляет текущее количество бронирований
func (m *Metrics) SetBookingsStored(n int) {
	if m == nil {
		return
	}
	m.bookingsStored.Set(float64(n))
}
