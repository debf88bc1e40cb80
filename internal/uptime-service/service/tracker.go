package service

import (
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"time"
)

// Tracker advances a server's persisted failure state from one check
// verdict. The consecutive-failure counter and the alert flag live on the
// Server row so the at-most-one-alert-per-outage guarantee survives
// process restarts.
type Tracker struct {
	threshold int
}

func NewTracker(threshold int) *Tracker {
	return &Tracker{
		threshold: threshold,
	}
}

func (t *Tracker) Threshold() int {
	return t.threshold
}

// Advance returns the updated server row and whether this verdict crosses
// the escalation threshold. Escalation fires at the crossing point only:
// once the alert flag is set it stays set until an online verdict clears it,
// so later offline verdicts in the same outage never re-escalate. The
// caller marks AlertSent after handing off to the dispatcher regardless of
// delivery success.
func (t *Tracker) Advance(server model.Server, result CheckResult) (model.Server, bool) {
	server.UpdatedAt = time.Now()
	if result.Online {
		server.Status = model.ServerStatusOnline
		server.ConsecutiveFailures = 0
		server.AlertSent = false
		server.PlayersOnline = result.PlayersOnline
		server.PlayersMax = result.PlayersMax
		return server, false
	}

	server.Status = model.ServerStatusOffline
	server.ConsecutiveFailures++
	server.PlayersOnline = 0
	escalate := server.ConsecutiveFailures >= t.threshold && !server.AlertSent
	return server, escalate
}
