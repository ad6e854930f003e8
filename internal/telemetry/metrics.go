package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentAttempts counts /api/pay outcomes by result label
	// (accepted, rejected, processor_error).
	PaymentAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "give_payment_attempts_total",
		Help: "Donation payment attempts by outcome.",
	}, []string{"outcome"})

	// DomainRegistrations counts Apple Pay domain registration calls.
	DomainRegistrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "give_apple_domain_registrations_total",
		Help: "Apple Pay domain registration attempts by outcome.",
	}, []string{"outcome"})
)
