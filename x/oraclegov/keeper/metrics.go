package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GovMetrics holds all Prometheus metrics for the oracle governance module
type GovMetrics struct {
	// Proposal lifecycle metrics
	ProposalsCreated  *prometheus.CounterVec
	ProposalsExecuted *prometheus.CounterVec
	ProposalsFailed   *prometheus.CounterVec
	ExecutionFailures *prometheus.CounterVec

	// Voting metrics
	VotesCast *prometheus.CounterVec

	// Stake and deposit metrics
	DepositsSettled *prometheus.CounterVec
	TotalStaked     prometheus.Gauge

	// Sweep metrics
	ExpiredSwept prometheus.Counter
}

var (
	govMetricsOnce sync.Once
	govMetrics     *GovMetrics
)

// NewGovMetrics creates and registers governance metrics (singleton pattern)
func NewGovMetrics() *GovMetrics {
	govMetricsOnce.Do(func() {
		govMetrics = &GovMetrics{
			// Proposal lifecycle metrics
			ProposalsCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "proposals_created_total",
					Help:      "Total proposals created by kind",
				},
				[]string{"kind"},
			),
			ProposalsExecuted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "proposals_executed_total",
					Help:      "Total proposals executed by kind",
				},
				[]string{"kind"},
			),
			ProposalsFailed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "proposals_failed_total",
					Help:      "Proposals that expired without approval",
				},
				[]string{"kind"},
			),
			ExecutionFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "execution_failures_total",
					Help:      "Approved proposals whose dispatch failed",
				},
				[]string{"kind"},
			),

			// Voting metrics
			VotesCast: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "votes_cast_total",
					Help:      "Ballots cast by support",
				},
				[]string{"support"},
			),

			// Stake and deposit metrics
			DepositsSettled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "deposits_settled_total",
					Help:      "Proposal deposits settled by outcome",
				},
				[]string{"outcome"},
			),
			TotalStaked: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "total_staked",
					Help:      "Total stake recorded in the ledger",
				},
			),

			// Sweep metrics
			ExpiredSwept: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "swipe",
					Subsystem: "oraclegov",
					Name:      "expired_proposals_swept_total",
					Help:      "Expired proposals settled by the end-block sweep",
				},
			),
		}
	})
	return govMetrics
}

// GetGovMetrics returns the singleton governance metrics instance
func GetGovMetrics() *GovMetrics {
	if govMetrics == nil {
		return NewGovMetrics()
	}
	return govMetrics
}
