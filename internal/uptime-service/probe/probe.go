// Package probe implements single-attempt liveness queries against game
// servers. A Prober performs exactly one attempt per call: a transport
// failure (timeout, refused connection, malformed reply) is returned as an
// error and is a normal outcome, not a programming error. A nil error means
// the prober got a definitive verdict, including Online=false for a server
// that is reachable but reports itself down.
package probe

import (
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"context"
	"time"
)

type Result struct {
	Online        bool
	PlayersOnline int
	PlayersMax    int
	Latency       time.Duration
}

type Prober interface {
	Probe(ctx context.Context, address string, port int) (Result, error)
}

// NativeProbers maps each supported game protocol to its native prober.
// The map is resolved once per probe, keyed by the roster's game enum.
func NativeProbers() map[model.GameType]Prober {
	return map[model.GameType]Prober{
		model.GameMinecraft: NewMinecraftProber(),
		model.GameSource:    NewSourceProber(),
	}
}
