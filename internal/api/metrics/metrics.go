// Package metrics defines and registers all custom Prometheus metrics for
// the user-administration API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "majunkita"

// UsersCreatedTotal counts accounts created successfully.
// Label:
//   - role: the role assigned to the new account (e.g. "driver")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by assigned role.",
	},
	[]string{"role"},
)

// UsersUpdatedTotal counts successful user updates.
var UsersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of user accounts updated.",
	},
)

// UsersDeletedTotal counts successful user deletions.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// AuthFailuresTotal counts rejected bearer credentials.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", "missing_subject"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during bearer-token verification.",
	},
	[]string{"reason"},
)

// ProviderErrorsTotal counts failures reported by the identity provider's
// admin API that surfaced as request failures.
// Label:
//   - path: the route on which the failure occurred
var ProviderErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_errors_total",
		Help:      "Total number of identity-provider admin API failures, by route.",
	},
	[]string{"path"},
)
