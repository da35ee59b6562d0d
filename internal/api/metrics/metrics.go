// Package metrics defines all custom Prometheus metrics for the CMS admin
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unauthorized", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts successfully created user accounts.
// Label:
//   - role_id: numeric role of the created account
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role id.",
	},
	[]string{"role_id"},
)

// MembershipChangesTotal counts association assignment operations.
// Label:
//   - action: "assign" or "unassign"
var MembershipChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "membership_changes_total",
		Help:      "Total number of association membership changes, by action.",
	},
	[]string{"action"},
)

// ChargerUpdatesTotal counts charger mutations.
// Label:
//   - action: "network" (UpdateDevice) or "status"
var ChargerUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charger_updates_total",
		Help:      "Total number of charger device updates, by action.",
	},
	[]string{"action"},
)
