// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		HashKey      string `json:"hash_key"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		HistoryLimit int `json:"history_limit"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Notifier struct {
		Enabled         bool     `json:"enabled"`
		Channel         string   `json:"channel"`
		Window          Duration `json:"window"`
		DispatchTimeout Duration `json:"dispatch_timeout"`
		Subject         string   `json:"subject"`
		Recipient       string   `json:"recipient"`
		From            string   `json:"from"`
		DashboardURL    string   `json:"dashboard_url"`
		SMTP            SMTP     `json:"smtp"`
		Webhook         Webhook  `json:"webhook"`
	} `json:"notifier,omitempty"`

	Archive struct {
		Bucket          string `json:"bucket"`
		Prefix          string `json:"prefix"`
		Region          string `json:"region"`
		Endpoint        string `json:"endpoint"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
	} `json:"archive,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HeartbeatInterval Duration `json:"heartbeat_interval"`
		AuditInterval     Duration `json:"audit_interval"`
		SyncInterval      Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			HashKey:      jsonCfg.App.HashKey,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:           DB{DSN: jsonCfg.Storage.DB.DSN},
			HistoryLimit: jsonCfg.Storage.HistoryLimit,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Notifier: Notifier{
			Enabled:         jsonCfg.Notifier.Enabled,
			Channel:         jsonCfg.Notifier.Channel,
			Window:          time.Duration(jsonCfg.Notifier.Window),
			DispatchTimeout: time.Duration(jsonCfg.Notifier.DispatchTimeout),
			Subject:         jsonCfg.Notifier.Subject,
			Recipient:       jsonCfg.Notifier.Recipient,
			From:            jsonCfg.Notifier.From,
			DashboardURL:    jsonCfg.Notifier.DashboardURL,
			SMTP:            jsonCfg.Notifier.SMTP,
			Webhook:         jsonCfg.Notifier.Webhook,
		},
		Archive: Archive{
			Bucket:          jsonCfg.Archive.Bucket,
			Prefix:          jsonCfg.Archive.Prefix,
			Region:          jsonCfg.Archive.Region,
			Endpoint:        jsonCfg.Archive.Endpoint,
			AccessKeyID:     jsonCfg.Archive.AccessKeyID,
			SecretAccessKey: jsonCfg.Archive.SecretAccessKey,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			HeartbeatInterval: time.Duration(jsonCfg.Workers.HeartbeatInterval),
			AuditInterval:     time.Duration(jsonCfg.Workers.AuditInterval),
			SyncInterval:      time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
