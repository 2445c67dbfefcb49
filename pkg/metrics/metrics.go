package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     *prometheus.GaugeVec
	dbConnsInUse    *prometheus.GaugeVec
	dbConnsIdle     *prometheus.GaugeVec
	dbConnsWaiting  *prometheus.GaugeVec
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections.",
			ConstLabels: constLabels,
		}, nil),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use.",
			ConstLabels: constLabels,
		}, nil),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections.",
			ConstLabels: constLabels,
		}, nil),

		dbConnsWaiting: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}, nil),
	}
}

// ObserveHTTPRequest записывает метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность выполнения запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики состояния connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbConnsOpen.WithLabelValues().Set(float64(stats.OpenConnections))
	m.dbConnsInUse.WithLabelValues().Set(float64(stats.InUse))
	m.dbConnsIdle.WithLabelValues().Set(float64(stats.Idle))
	m.dbConnsWaiting.WithLabelValues().Set(float64(stats.WaitCount))
}
