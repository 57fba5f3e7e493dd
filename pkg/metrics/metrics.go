package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	VoiceCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_commands_total",
			Help: "Total de comandos de voz interpretados, por intenção",
		},
		[]string{"intent"},
	)

	VoiceClarifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_clarifications_total",
			Help: "Total de comandos que exigiram pergunta de esclarecimento",
		},
		[]string{"intent"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// IntentLabel converte a intenção para o rótulo usado nas métricas
func IntentLabel(intent string) string {
	if intent == "" {
		return "none"
	}
	return intent
}

// Middleware registra contagem e duração das requisições por rota
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler expõe as métricas no formato do Prometheus
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
