// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc describes the leadsync.SyncService gRPC contract shared by the
// server handler and the sync client adapter.
//
// Messages are the JSON-tagged types of the models package carried by a JSON
// codec, so the service descriptor and the client stub are written by hand
// instead of generated from a .proto file.
package rpc
