// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload returns the hex-encoded HMAC-SHA256 of data under hashKey.
// Outgoing webhook bodies are signed with it.
func SignPayload(data []byte, hashKey string) string {
	return hex.EncodeToString(hashBytes(data, hashKey))
}

// VerifySignature reports whether signature is the hex HMAC-SHA256 of data
// under hashKey. The comparison is constant-time.
func VerifySignature(data []byte, signature string, hashKey string) bool {
	decoded, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(decoded, hashBytes(data, hashKey))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
