// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// runEvery calls fn every interval until ctx is done. With immediate set the
// first call happens before the first tick.
func runEvery(ctx context.Context, interval time.Duration, immediate bool, fn func(context.Context)) {
	if immediate {
		fn(ctx)
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fn(ctx)
		}
	}
}
