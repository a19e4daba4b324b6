package shine

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metric descriptors for the mod. All counting is
// fire-and-forget; a nil *Metrics disables it without touching dispatch
// behavior.
type Metrics struct {
	reg       *Registry
	startTime time.Time

	commandsRun    prometheus.Counter
	commandAborts  *prometheus.CounterVec
	chatCommands   prometheus.Counter
	chatSuppressed prometheus.Counter
	commandsKnown  prometheus.Gauge
	uptimeSeconds  prometheus.Gauge
	goroutines     prometheus.Gauge
}

// NewMetrics creates and registers Prometheus metrics over the registry.
func NewMetrics(reg *Registry, startTime time.Time) *Metrics {
	m := &Metrics{
		reg:       reg,
		startTime: startTime,
		commandsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shine_commands_run_total",
			Help: "Commands that passed validation and invoked their handler.",
		}),
		commandAborts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shine_command_aborts_total",
			Help: "Dispatches aborted before the handler, by reason.",
		}, []string{"reason"}),
		chatCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shine_chat_commands_total",
			Help: "Chat messages recognized as command invocations.",
		}),
		chatSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shine_chat_commands_suppressed_total",
			Help: "Chat command invocations whose echo was suppressed.",
		}),
		commandsKnown: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shine_commands_registered",
			Help: "Console commands currently registered.",
		}),
		uptimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shine_uptime_seconds",
			Help: "Mod uptime in seconds.",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shine_goroutines",
			Help: "Number of active goroutines.",
		}),
	}

	prometheus.MustRegister(
		m.commandsRun,
		m.commandAborts,
		m.chatCommands,
		m.chatSuppressed,
		m.commandsKnown,
		m.uptimeSeconds,
		m.goroutines,
	)

	return m
}

// Update refreshes the gauge metrics from current state.
func (m *Metrics) Update() {
	m.commandsKnown.Set(float64(len(m.reg.commands)))
	m.uptimeSeconds.Set(time.Since(m.startTime).Seconds())
	m.goroutines.Set(float64(runtime.NumGoroutine()))
}

// Handler returns an http.Handler that updates metrics before serving them.
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.Update()
		promhttp.Handler().ServeHTTP(w, r)
	})
}

func (m *Metrics) commandRun() {
	if m == nil {
		return
	}
	m.commandsRun.Inc()
}

func (m *Metrics) commandAbort(reason string) {
	if m == nil {
		return
	}
	m.commandAborts.WithLabelValues(reason).Inc()
}

func (m *Metrics) chatRun() {
	if m == nil {
		return
	}
	m.chatCommands.Inc()
}

func (m *Metrics) chatSuppress() {
	if m == nil {
		return
	}
	m.chatSuppressed.Inc()
}
