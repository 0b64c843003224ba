// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRenderingNotification = errors.New("error rendering notification")

	ErrUnexpectedSyncResponse = errors.New("server returned neither a verdict nor a diff")
)
