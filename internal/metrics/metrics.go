// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors of the lead-sync server.
// Collectors are registered on the default registry and served by
// [Handler].
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leadsync"

// Mutation kinds.
const (
	MutationCreate = "create"
	MutationUpdate = "update"
	MutationDelete = "delete"
)

// Sync outcomes.
const (
	SyncInSync   = "in_sync"
	SyncMismatch = "mismatch"
	SyncDiff     = "diff"
)

// Notification outcomes, matching the heartbeat statuses plus "failed".
const (
	NotifyIdle       = "idle"
	NotifyThrottled  = "throttled"
	NotifyDispatched = "dispatched"
	NotifyBusy       = "busy"
	NotifyFailed     = "failed"
)

var (
	leadMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_mutations_total",
		Help:      "Committed lead mutations by kind.",
	}, []string{"kind"})

	syncRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_requests_total",
		Help:      "Sync requests by outcome.",
	}, []string{"outcome"})

	diffSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_diff_entries",
		Help:      "Entries returned by round two, by kind.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
	}, []string{"kind"})

	notificationCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_cycles_total",
		Help:      "Notifier heartbeats by outcome.",
	}, []string{"outcome"})

	notifiedLeads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notified_leads_total",
		Help:      "Leads included in dispatched batches.",
	})

	pendingLeads = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pending_leads",
		Help:      "Leads waiting for the next batch, as of the last heartbeat.",
	})

	archivedLeads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "archived_leads_total",
		Help:      "Soft-deleted leads moved to the archive.",
	})

	fingerprintAudits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fingerprint_audits_total",
		Help:      "Fingerprint audits by result.",
	}, []string{"result"})
)

// IncMutation counts one committed mutation of kind.
func IncMutation(kind string) {
	leadMutations.WithLabelValues(kind).Inc()
}

// ObserveSync counts one sync request. updates and deletions are recorded
// only for diff outcomes.
func ObserveSync(outcome string, updates, deletions int) {
	syncRequests.WithLabelValues(outcome).Inc()
	if outcome == SyncDiff {
		diffSize.WithLabelValues("updates").Observe(float64(updates))
		diffSize.WithLabelValues("deletions").Observe(float64(deletions))
	}
}

// ObserveHeartbeat counts one heartbeat and records the pending backlog.
func ObserveHeartbeat(outcome string, pending int) {
	notificationCycles.WithLabelValues(outcome).Inc()
	if outcome != NotifyBusy {
		pendingLeads.Set(float64(pending))
	}
	if outcome == NotifyDispatched {
		notifiedLeads.Add(float64(pending))
		pendingLeads.Set(0)
	}
}

// AddArchived counts leads moved to the archive.
func AddArchived(n int) {
	archivedLeads.Add(float64(n))
}

// ObserveAudit counts one fingerprint audit.
func ObserveAudit(inSync bool) {
	result := "in_sync"
	if !inSync {
		result = "desync"
	}
	fingerprintAudits.WithLabelValues(result).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
