package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     *prometheus.CounterVec
	SlotsWritten        prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created, by booking kind",
			ConstLabels: labels,
		}, []string{"kind"}),

		SlotsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slots_written_total",
			Help:        "Total number of 30-minute slot records written",
			ConstLabels: labels,
		}),
	}
}

// IncBookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncBookingCreated(kind string) {
	m.BookingsCreated.WithLabelValues(kind).Inc()
}

// AddSlotsWritten увеличивает счетчик записанных 30-минутных записей
func (m *Metrics) AddSlotsWritten(n int) {
	m.SlotsWritten.Add(float64(n))
}
