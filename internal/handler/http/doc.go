// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the lead-sync server.
//
// It exposes the public intake endpoint, the admin lead endpoints, both
// rounds of the sync protocol and the operational endpoints (fingerprint,
// archive, heartbeat, version, metrics). Admin authentication, request
// tracing, access logging and response compression are handled here before
// requests reach the service layer.
package http
