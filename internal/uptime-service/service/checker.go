package service

import (
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"GSM_Uptime_Microservice/internal/uptime-service/probe"
	"context"
	"time"

	"go.uber.org/zap"
)

// CheckResult is the single authoritative verdict for one server in one
// scan cycle, produced by the Checker and consumed by the history store,
// the failure tracker and the trigger response.
type CheckResult struct {
	ServerID      string
	ServerName    string
	Online        bool
	PlayersOnline int
	PlayersMax    int
	LatencyMs     *int64 // nil when no probe got a response
	Method        model.CheckMethod
	Attempts      int
	Timestamp     time.Time
}

// Checker turns single-attempt probers into one authoritative verdict per
// server: the native probe is retried with a fixed backoff, then the remote
// status API is tried the same way. Only total communication failure across
// both methods is folded into an offline verdict with method "none", a
// single timeout never marks a server down on its own.
type Checker interface {
	Check(ctx context.Context, server model.Server) CheckResult
}

type checker struct {
	native     map[model.GameType]probe.Prober
	remote     probe.Prober
	maxRetries int
	backoff    time.Duration
	timeout    time.Duration
	logger     *zap.Logger
}

func (c *checker) Check(ctx context.Context, server model.Server) CheckResult {
	result := CheckResult{
		ServerID:   server.ID,
		ServerName: server.ServerName,
		Timestamp:  time.Now(),
	}

	native, ok := c.native[server.Game]
	if !ok {
		c.logger.Warn("no native prober for game type, falling back to remote API",
			zap.String("server_id", server.ID),
			zap.String("game", string(server.Game)))
	}

	attempts := 0
	methods := []struct {
		prober probe.Prober
		method model.CheckMethod
	}{
		{native, model.MethodNative},
		{c.remote, model.MethodRemoteAPI},
	}
	for _, m := range methods {
		if m.prober == nil {
			continue
		}
		for i := 0; i < c.maxRetries; i++ {
			if attempts > 0 && c.backoff > 0 {
				select {
				case <-ctx.Done():
					result.Method = model.MethodNone
					result.Attempts = attempts
					return result
				case <-time.After(c.backoff):
				}
			}
			attempts++
			probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
			r, err := m.prober.Probe(probeCtx, server.Address, server.Port)
			cancel()
			if err != nil {
				// transport failure, not a verdict
				c.logger.Debug("probe attempt failed",
					zap.String("server_id", server.ID),
					zap.String("method", string(m.method)),
					zap.Int("attempt", attempts),
					zap.Error(err))
				continue
			}
			result.Online = r.Online
			result.PlayersOnline = r.PlayersOnline
			result.PlayersMax = r.PlayersMax
			result.Method = m.method
			result.Attempts = attempts
			if r.Latency > 0 {
				ms := r.Latency.Milliseconds()
				result.LatencyMs = &ms
			}
			return result
		}
	}

	result.Online = false
	result.Method = model.MethodNone
	result.Attempts = attempts
	return result
}

func NewChecker(native map[model.GameType]probe.Prober, remote probe.Prober, maxRetries int, backoff time.Duration, timeout time.Duration, logger *zap.Logger) Checker {
	return &checker{
		native:     native,
		remote:     remote,
		maxRetries: maxRetries,
		backoff:    backoff,
		timeout:    timeout,
		logger:     logger,
	}
}
