// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrDispatchFailed wraps every delivery failure of a [Dispatcher].
	ErrDispatchFailed = errors.New("notification dispatch failed")

	// ErrExportFailed wraps every failure of an [Exporter].
	ErrExportFailed = errors.New("archive export failed")

	ErrUnknownChannel = errors.New("unknown notification channel")
)
