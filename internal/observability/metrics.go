// Package observability provides prometheus metrics for content operations.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContentMutations counts admin create/update/delete/upsert operations
	// by entity and operation.
	ContentMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_content_mutations_total",
		Help: "Total number of admin content mutations by entity and operation",
	}, []string{"entity", "operation"})

	// ContactSubmissions counts accepted contact form submissions.
	ContactSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_contact_submissions_total",
		Help: "Total number of accepted contact form submissions",
	})

	// AdminAuthFailures counts rejected admin requests.
	AdminAuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_admin_auth_failures_total",
		Help: "Total number of admin requests rejected by the token gate",
	})
)

// RecordMutation increments the mutation counter for an entity/operation pair.
func RecordMutation(entity, operation string) {
	ContentMutations.WithLabelValues(entity, operation).Inc()
}
