// metrics — prometheus-метрики HTTP-слоя и состояния хранилища.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — набор коллекторов сервиса.
// Регистрируется в переданном Registerer (в main — prometheus.DefaultRegisterer,
// в тестах — отдельный prometheus.NewRegistry()).
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	storeUp  prometheus.Gauge
}

// New создаёт и регистрирует коллекторы.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "classifieds",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "classifieds",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		storeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "classifieds",
			Subsystem: "store",
			Name:      "up",
			Help:      "1 if the database is reachable, 0 otherwise.",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.storeUp)

	return m
}

// ObserveRequest учитывает завершённый HTTP-запрос.
func (m *Metrics) ObserveRequest(route, method string, code int, dur time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route, method).Observe(dur.Seconds())
}

// SetStoreUp выставляет gauge доступности хранилища. Сигнатура подходит для status.State.OnChange.
func (m *Metrics) SetStoreUp(up bool) {
	if up {
		m.storeUp.Set(1)
		return
	}

	m.storeUp.Set(0)
}
