// Package metrics defines and registers all custom Prometheus metrics for
// the energy tracker API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "energy"

// OTPRequestsTotal counts OTP request attempts.
// Label:
//   - result: "ok", "invalid", "throttled", "store_error", "dispatch_error"
var OTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_requests_total",
		Help:      "Total number of OTP requests, labelled by outcome.",
	},
	[]string{"result"},
)

// OTPVerificationsTotal counts OTP verification attempts.
// Label:
//   - result: "ok", "invalid", "unknown_email"
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of OTP verification attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// AppliancesCreatedTotal counts newly created appliance records.
var AppliancesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appliances_created_total",
		Help:      "Total number of appliance records created.",
	},
)

// ApplianceWritesTotal counts mutations of existing appliance records.
// Label:
//   - op: "update" or "delete"
var ApplianceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appliance_writes_total",
		Help:      "Total number of appliance updates and deletes, by operation.",
	},
	[]string{"op"},
)
