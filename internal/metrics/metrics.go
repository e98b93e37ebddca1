package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petfacil_http_requests_total",
			Help: "Total de requisições HTTP por método, rota e status.",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petfacil_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BillingReportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petfacil_billing_reports_total",
			Help: "Relatórios de faturamento gerados com sucesso.",
		},
	)
)
