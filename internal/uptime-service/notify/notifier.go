package notify

import (
	"context"
	"time"
)

// Alert describes one server outage that crossed the failure threshold.
type Alert struct {
	ServerID   string
	ServerName string
	Failures   int
	DetectedAt time.Time
}

// Notifier escalates an outage to human operators out-of-band. Delivery is
// fire-and-forget from the scan cycle's perspective: a returned error is
// logged by the caller, never propagated into the cycle result.
type Notifier interface {
	NotifyServerDown(ctx context.Context, alert Alert) error
}
