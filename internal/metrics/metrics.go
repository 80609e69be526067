// Package metrics defines the Prometheus collectors exported by circuitd.
// All methods are safe on a nil *Metrics so components can run unmetered.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "circuitd"

type Metrics struct {
	proposals      *prometheus.CounterVec
	votes          *prometheus.CounterVec
	outcomes       *prometheus.CounterVec
	refused        *prometheus.CounterVec
	messages       *prometheus.CounterVec
	storageRetries prometheus.Counter
	openProposals  prometheus.Gauge
}

// New builds the collectors and registers them with reg when reg is non-nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		proposals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "proposals_opened_total",
			Help:      "Circuit proposals opened on this node, by proposal type.",
		}, []string{"type"}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "votes_applied_total",
			Help:      "Votes recorded against outstanding proposals.",
		}, []string{"vote"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "proposal_outcomes_total",
			Help:      "Resolved proposals, by outcome.",
		}, []string{"outcome"}),
		refused: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "requests_refused_total",
			Help:      "Requests and peer messages refused, by error kind.",
		}, []string{"kind"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dissemination",
			Name:      "messages_total",
			Help:      "Admin messages handed to the transport or received from it.",
		}, []string{"direction", "type", "result"}),
		storageRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "retries_total",
			Help:      "Storage operations retried after a failure.",
		}),
		openProposals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "open_proposals",
			Help:      "Proposals opened minus proposals resolved since start.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.proposals, m.votes, m.outcomes, m.refused, m.messages, m.storageRetries, m.openProposals)
	}
	return m
}

func (m *Metrics) ProposalOpened(proposalType string) {
	if m == nil {
		return
	}
	m.proposals.WithLabelValues(proposalType).Inc()
	m.openProposals.Inc()
}

func (m *Metrics) ProposalResolved(outcome string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(outcome).Inc()
	m.openProposals.Dec()
}

func (m *Metrics) VoteApplied(vote string) {
	if m == nil {
		return
	}
	m.votes.WithLabelValues(vote).Inc()
}

func (m *Metrics) Refused(kind string) {
	if m == nil {
		return
	}
	m.refused.WithLabelValues(kind).Inc()
}

func (m *Metrics) MessageSent(msgType string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.messages.WithLabelValues("out", msgType, result).Inc()
}

func (m *Metrics) MessageReceived(msgType string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.messages.WithLabelValues("in", msgType, result).Inc()
}

func (m *Metrics) StorageRetry() {
	if m == nil {
		return
	}
	m.storageRetries.Inc()
}

// ProposalsRestored accounts for proposals found in storage at startup.
func (m *Metrics) ProposalsRestored(n int) {
	if m == nil {
		return
	}
	m.openProposals.Add(float64(n))
}
