// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Notification channels understood by [Notifier.Channel].
const (
	ChannelLog     = "log"
	ChannelSMTP    = "smtp"
	ChannelWebhook = "webhook"
)

// Defaults applied by the builder to fields left empty by every source.
const (
	DefaultNotifyWindow        = 15 * time.Minute
	DefaultDispatchTimeout     = 30 * time.Second
	DefaultHistoryLimit        = 10
	DefaultHeartbeatInterval   = time.Minute
	DefaultAuditInterval       = 10 * time.Minute
	DefaultClientSyncInterval  = 30 * time.Second
	DefaultRequestTimeout      = 15 * time.Second
	DefaultNotificationSubject = "New Leads"
)

// StructuredConfig is the top-level configuration container for the
// lead-sync server and client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin token
	// verification key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings and fingerprint
	// history retention.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Notifier configures the batch notifier and its dispatch channel.
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// Archive configures the optional object-storage export of compacted
	// leads.
	Archive Archive `envPrefix:"ARCHIVE_"`

	// Adapter holds the client-side transport settings used to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the shared HS256 key used to verify admin tokens
	// issued by the external session service.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of admin tokens. Empty
	// disables the issuer check.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// HashKey is the HMAC key used to sign outgoing webhook payloads.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// HistoryLimit is the number of fingerprint history entries retained.
	// Env: STORAGE_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string for the server, or the SQLite
	// file path for the client. An empty server DSN selects the in-memory
	// store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Notifier configures the throttled batch notifier.
type Notifier struct {
	// Enabled turns real dispatch on. When false every batch is only logged
	// and counted as delivered.
	// Env: NOTIFIER_ENABLED
	Enabled bool `env:"ENABLED"`

	// Channel selects the dispatcher: "log", "smtp" or "webhook".
	// Env: NOTIFIER_CHANNEL
	Channel string `env:"CHANNEL"`

	// Window is the minimum time between two dispatched batches.
	// Env: NOTIFIER_WINDOW
	Window time.Duration `env:"WINDOW"`

	// DispatchTimeout bounds a single dispatch attempt.
	// Env: NOTIFIER_DISPATCH_TIMEOUT
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT"`

	// Subject is the subject prefix of the batch message.
	// Env: NOTIFIER_SUBJECT
	Subject string `env:"SUBJECT"`

	// Recipient is the destination address of the batch message.
	// Env: NOTIFIER_RECIPIENT
	Recipient string `env:"RECIPIENT"`

	// From is the sender address.
	// Env: NOTIFIER_FROM
	From string `env:"FROM"`

	// DashboardURL is linked from the rendered message.
	// Env: NOTIFIER_DASHBOARD_URL
	DashboardURL string `env:"DASHBOARD_URL"`

	// SMTP holds the mail relay settings for the "smtp" channel.
	SMTP SMTP `envPrefix:"SMTP_"`

	// Webhook holds the endpoint settings for the "webhook" channel.
	Webhook Webhook `envPrefix:"WEBHOOK_"`
}

// SMTP holds mail relay settings.
type SMTP struct {
	Host     string `env:"HOST" json:"host"`
	Port     int    `env:"PORT" json:"port"`
	Username string `env:"USERNAME" json:"username"`
	Password string `env:"PASSWORD" json:"password"`
}

// Webhook holds outbound webhook settings. The payload is signed with
// [App.HashKey].
type Webhook struct {
	URL string `env:"URL" json:"url"`
}

// Archive configures the S3-compatible export of compacted leads. Export is
// disabled while Bucket is empty.
type Archive struct {
	Bucket          string `env:"BUCKET"`
	Prefix          string `env:"PREFIX"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Adapter holds client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL or "host:port" of the server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the server's gRPC listener. When set
	// the sync client talks gRPC instead of REST.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the admin bearer token presented to the server.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HeartbeatInterval is the period of the notifier heartbeat worker.
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// AuditInterval is the period of the fingerprint audit worker.
	AuditInterval time.Duration `env:"AUDIT_INTERVAL"`

	// SyncInterval is the polling period of the sync client.
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
