// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the lead-sync transport servers.
//
// It owns the HTTP and gRPC listener lifecycles: startup, signal handling and
// graceful shutdown of every enabled transport.
package server
