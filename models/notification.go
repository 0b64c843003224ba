// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationState is the snapshot a notification cycle decides on. It is
// read under the throttle lock, so no other cycle can observe the same
// pending set until the cycle ends.
type NotificationState struct {
	// LastNotifiedAt is zero when no batch has ever been dispatched.
	LastNotifiedAt time.Time
	Pending        []Lead
}

// DispatchReceipt tells the store how a notification cycle ended. Pending
// leads are marked notified and the throttle advanced to At only when
// Dispatched is true.
type DispatchReceipt struct {
	Dispatched bool
	At         time.Time
}

// Notification is one rendered batch message.
type Notification struct {
	Subject  string  `json:"subject"`
	HTMLBody string  `json:"html_body"`
	TextBody string  `json:"text_body"`
	LeadIDs  []int64 `json:"lead_ids"`
}

// HeartbeatStatus names the outcome of a notifier heartbeat.
type HeartbeatStatus string

const (
	// HeartbeatIdle means there were no pending leads.
	HeartbeatIdle HeartbeatStatus = "idle"
	// HeartbeatThrottled means pending leads exist but the window is closed.
	HeartbeatThrottled HeartbeatStatus = "throttled"
	// HeartbeatDispatched means one batch was delivered.
	HeartbeatDispatched HeartbeatStatus = "dispatched"
	// HeartbeatBusy means another heartbeat of this process holds the cycle.
	HeartbeatBusy HeartbeatStatus = "busy"
)

// HeartbeatResult is returned by the notifier heartbeat.
type HeartbeatResult struct {
	Status      HeartbeatStatus `json:"status"`
	Pending     int             `json:"pending"`
	NextCycleIn time.Duration   `json:"next_cycle_in,omitempty"`
}
