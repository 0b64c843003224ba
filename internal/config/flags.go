// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (postgres for the server, sqlite file for the client)
//	-c/-config json file path with configs
//	-token-sign-key admin token verification key
//	-token-issuer expected admin token issuer
//	-hash-key webhook signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-history-limit number of fingerprint history entries kept
//	-notify-channel notifier channel (log, smtp, webhook)
//	-notify-window notifier throttle window (e.g., "15m")
//	-server client: server address
//	-sync-interval client: polling interval
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var hashKey string
	var requestTimeout time.Duration
	var historyLimit int
	var notifyChannel string
	var notifyWindow time.Duration
	var adapterAddress string
	var adapterGRPCAddress string
	var syncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Admin token verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Expected admin token issuer")
	flag.StringVar(&hashKey, "hash-key", "", "Webhook signing key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&historyLimit, "history-limit", 0, "Fingerprint history entries kept")
	flag.StringVar(&notifyChannel, "notify-channel", "", "Notifier channel: log, smtp or webhook")
	flag.DurationVar(&notifyWindow, "notify-window", 0, "Notifier throttle window (e.g., 15m)")
	flag.StringVar(&adapterAddress, "server", "", "Server address used by the sync client")
	flag.StringVar(&adapterGRPCAddress, "server-grpc", "", "Server gRPC address used by the sync client")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Client polling interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			HashKey:      hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			HistoryLimit: historyLimit,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notifier: Notifier{
			Channel: notifyChannel,
			Window:  notifyWindow,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPCAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
