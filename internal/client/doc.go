// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client process runtime.
//
// It wires the server adapter, the local SQLite snapshot and the periodic
// sync job into a single lifecycle driven by a context.
package client
