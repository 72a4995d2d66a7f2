package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sparkleclean", Name: "bookings_created_total", Help: "Number of booking submissions accepted."},
	)
	BookingsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sparkleclean", Name: "bookings_updated_total", Help: "Number of admin status/notes updates applied."},
	)
	BookingsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sparkleclean", Name: "bookings_deleted_total", Help: "Number of bookings deleted by the admin."},
	)
	AdminRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sparkleclean", Name: "admin_unauthorized_total", Help: "Number of admin requests rejected by the token guard."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sparkleclean", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sparkleclean", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(BookingsCreated)
	reg.MustRegister(BookingsUpdated)
	reg.MustRegister(BookingsDeleted)
	reg.MustRegister(AdminRejected)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
