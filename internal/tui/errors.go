// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package tui

import "strings"

func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network or the server is unreachable"
	}

	return err.Error()
}
