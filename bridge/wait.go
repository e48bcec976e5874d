package bridge

import (
	"context"
	"time"
)

// awaitClient polls lookup at a fixed interval until the client reports
// loaded, the deadline passes, or ctx is done. It returns nil on timeout or
// cancellation. The poll is cooperative: nothing blocks between checks, so
// two bridges can wait on the same handle independently.
func awaitClient(ctx context.Context, lookup Lookup, deadline, interval time.Duration) Client {
	if c := lookup(); c != nil && c.Loaded() {
		return c
	}

	expired := time.NewTimer(deadline)
	defer expired.Stop()
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-expired.C:
			return nil
		case <-tick.C:
			if c := lookup(); c != nil && c.Loaded() {
				return c
			}
		}
	}
}
