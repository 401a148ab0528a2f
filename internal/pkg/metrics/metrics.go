package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Marketplace
	TicketsListed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_listed_total",
			Help: "Total tickets listed for resale",
		},
	)
	PNRValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pnr_validations_total",
			Help: "Total PNR validations by outcome",
		},
		[]string{"outcome"}, // verified|not_found|name_mismatch|invalid_format|error
	)
	ReservationsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticket_reservations_active",
			Help: "Tickets currently reserved",
		},
	)

	// Payments
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total payments by outcome",
		},
		[]string{"status"}, // completed|failed|refunded
	)
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total gateway webhook events by type",
		},
		[]string{"event"},
	)
)

// Handler serves the /metrics endpoint
var Handler = promhttp.Handler

// Init registers all collectors with the default registry
func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(TicketsListed)
	prometheus.MustRegister(PNRValidations)
	prometheus.MustRegister(ReservationsActive)
	prometheus.MustRegister(PaymentsTotal)
	prometheus.MustRegister(WebhookEvents)
}
