// Package metrics provides Prometheus metrics for the claims-review service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WorkflowMetrics contains Prometheus metrics for claim workflow operations.
type WorkflowMetrics struct {
	TransitionsTotal *prometheus.CounterVec // Successful transitions by action
	TransitionErrors *prometheus.CounterVec // Failed operations by action and reason
	BatchApproved    prometheus.Counter     // Claims approved through batch approval
}

// NewWorkflowMetrics creates workflow metrics registered on the given registry.
func NewWorkflowMetrics(registry *prometheus.Registry) (*WorkflowMetrics, error) {
	m := &WorkflowMetrics{
		TransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claims_workflow_transitions_total",
				Help: "Total number of successful claim workflow transitions by action",
			},
			[]string{"action"},
		),
		TransitionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claims_workflow_transition_errors_total",
				Help: "Total number of failed claim workflow operations by action and reason",
			},
			[]string{"action", "reason"}, // reason: not_found, validation, state_conflict
		),
		BatchApproved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "claims_batch_approved_total",
				Help: "Total number of claims approved through batch approval",
			},
		),
	}

	collectors := []prometheus.Collector{m.TransitionsTotal, m.TransitionErrors, m.BatchApproved}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register workflow metrics: %w", err)
		}
	}

	return m, nil
}
