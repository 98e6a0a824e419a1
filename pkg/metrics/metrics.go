package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы безопасны для вызова на nil-указателе (метрики выключены)
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge

	projectionsTotal      *prometheus.CounterVec
	inconsistentSchedules prometheus.Counter
	capacityWritesTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		projectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "completion_projections_total",
			Help:        "Completion date projections by kind and outcome",
			ConstLabels: labels,
		}, []string{"kind", "outcome"}),
		inconsistentSchedules: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "inconsistent_schedules_total",
			Help:        "Student schedules referencing slots missing from the catalog",
			ConstLabels: labels,
		}),
		capacityWritesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "capacity_writes_total",
			Help:        "Capacity ledger rows written by operation",
			ConstLabels: labels,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.projectionsTotal,
		m.inconsistentSchedules,
		m.capacityWritesTotal,
	)

	return m
}

// Handler возвращает HTTP handler для отдачи метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse int) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
}

// ObserveProjection фиксирует расчет даты окончания курса
// kind: original | remaining; outcome: projected | unprojectable | ready
func (m *Metrics) ObserveProjection(kind, outcome string) {
	if m == nil {
		return
	}
	m.projectionsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveInconsistentSchedule фиксирует расписание с несуществующими слотами
func (m *Metrics) ObserveInconsistentSchedule() {
	if m == nil {
		return
	}
	m.inconsistentSchedules.Inc()
}

// ObserveCapacityWrites фиксирует количество записанных строк вместимости
func (m *Metrics) ObserveCapacityWrites(operation string, rows int) {
	if m == nil {
		return
	}
	m.capacityWritesTotal.WithLabelValues(operation).Add(float64(rows))
}
