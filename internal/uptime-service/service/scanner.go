package service

import (
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"GSM_Uptime_Microservice/internal/uptime-service/notify"
	"GSM_Uptime_Microservice/internal/uptime-service/repository"
	"GSM_Uptime_Microservice/internal/uptime-service/stream"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Summary is what one scan cycle reports back to the trigger endpoint.
type Summary struct {
	CycleID   string
	Checked   int
	Online    int
	Offline   int
	Skipped   int
	Threshold int
	Results   []CheckResult
}

// ScanService runs one full monitoring cycle: load the roster, probe every
// active server concurrently, persist history and failure state, escalate
// threshold crossings, prune aged history.
type ScanService interface {
	RunCycle(ctx context.Context) (Summary, error)
}

type scanService struct {
	servers   repository.ServerRepository
	history   repository.UptimeRecordRepository
	stats     repository.UptimeStatsRepository // optional
	checker   Checker
	tracker   *Tracker
	notifier  notify.Notifier  // optional
	publisher stream.Publisher // optional
	lock      ScanLock         // optional
	workers   int
	retention time.Duration
	logger    *zap.Logger

	running atomic.Bool
}

// ScannerDeps carries the optional collaborators so the constructor does
// not grow a parameter per side channel.
type ScannerDeps struct {
	Stats     repository.UptimeStatsRepository
	Notifier  notify.Notifier
	Publisher stream.Publisher
	Lock      ScanLock
}

func (s *scanService) RunCycle(ctx context.Context) (Summary, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Summary{}, fmt.Errorf("ScanService.RunCycle: %w", apperrors.ErrScanInProgress)
	}
	defer s.running.Store(false)

	if s.lock != nil {
		ok, err := s.lock.TryAcquire(ctx)
		if err != nil {
			// a broken lock backend must not stop monitoring
			s.logger.Warn("scan lock unavailable, proceeding without it", zap.Error(err))
		} else if !ok {
			return Summary{}, fmt.Errorf("ScanService.RunCycle: %w", apperrors.ErrScanInProgress)
		} else {
			defer func() {
				if e := s.lock.Release(context.WithoutCancel(ctx)); e != nil {
					s.logger.Warn("failed to release scan lock", zap.Error(e))
				}
			}()
		}
	}

	summary := Summary{
		CycleID:   uuid.NewString(),
		Threshold: s.tracker.Threshold(),
	}
	cycleLogger := s.logger.With(zap.String("cycle_id", summary.CycleID))

	roster, err := s.servers.GetServers(ctx)
	if err != nil {
		return summary, fmt.Errorf("ScanService.RunCycle: %w", err)
	}

	var active []model.Server
	for _, server := range roster {
		if server.Maintenance {
			// no probe, no record, no state transition
			summary.Skipped++
			continue
		}
		active = append(active, server)
	}
	cycleLogger.Info("starting scan cycle",
		zap.Int("active", len(active)),
		zap.Int("maintenance", summary.Skipped))

	results := s.probeAll(ctx, active)

	var persistErr error
	keepFirst := func(e error) {
		if persistErr == nil {
			persistErr = e
		}
	}
	for i, result := range results {
		summary.Checked++
		if result.Online {
			summary.Online++
		} else {
			summary.Offline++
		}
		summary.Results = append(summary.Results, result)

		record := model.UptimeRecord{
			ServerID:      result.ServerID,
			Online:        result.Online,
			PlayersOnline: result.PlayersOnline,
			PlayersMax:    result.PlayersMax,
			LatencyMs:     result.LatencyMs,
			Method:        result.Method,
			CreatedAt:     result.Timestamp,
		}
		stored, err := s.history.AppendRecord(ctx, record)
		if err != nil {
			cycleLogger.Error("failed to append uptime record", zap.String("server_id", result.ServerID), zap.Error(err))
			keepFirst(err)
		} else if s.stats != nil {
			if e := s.stats.IndexRecord(ctx, stored); e != nil {
				cycleLogger.Warn("failed to index uptime record", zap.String("server_id", result.ServerID), zap.Error(e))
			}
		}

		updated, escalate := s.tracker.Advance(active[i], result)
		if escalate {
			s.dispatchAlert(ctx, cycleLogger, updated)
			updated.AlertSent = true
		}
		if err = s.servers.UpdateServerCheckState(ctx, updated); err != nil {
			cycleLogger.Error("failed to persist server check state", zap.String("server_id", result.ServerID), zap.Error(err))
			keepFirst(err)
		}

		if s.publisher != nil {
			event := stream.CheckEvent{
				CycleID:       summary.CycleID,
				ServerID:      result.ServerID,
				ServerName:    result.ServerName,
				Online:        result.Online,
				PlayersOnline: result.PlayersOnline,
				PlayersMax:    result.PlayersMax,
				LatencyMs:     result.LatencyMs,
				Method:        string(result.Method),
				Attempts:      result.Attempts,
				Timestamp:     result.Timestamp,
			}
			if e := s.publisher.PublishCheckEvent(ctx, event); e != nil {
				cycleLogger.Warn("failed to publish check event", zap.String("server_id", result.ServerID), zap.Error(e))
			}
		}
	}

	pruned, err := s.history.PruneOlderThan(ctx, time.Now().Add(-s.retention))
	if err != nil {
		cycleLogger.Error("failed to prune uptime history", zap.Error(err))
		keepFirst(err)
	} else if pruned > 0 {
		cycleLogger.Info("pruned aged uptime records", zap.Int64("deleted", pruned))
	}

	cycleLogger.Info("scan cycle finished",
		zap.Int("checked", summary.Checked),
		zap.Int("online", summary.Online),
		zap.Int("offline", summary.Offline),
		zap.Int("skipped", summary.Skipped))

	if persistErr != nil {
		return summary, fmt.Errorf("ScanService.RunCycle: %w", persistErr)
	}
	return summary, nil
}

// probeAll fans the checker out over a bounded worker pool. Results are
// returned in roster order so the caller can pair them with their servers.
func (s *scanService) probeAll(ctx context.Context, servers []model.Server) []CheckResult {
	results := make([]CheckResult, len(servers))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i := range servers {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.checker.Check(ctx, servers[i])
		}(i)
	}
	wg.Wait()
	return results
}

func (s *scanService) dispatchAlert(ctx context.Context, logger *zap.Logger, server model.Server) {
	if s.notifier == nil {
		logger.Warn("escalation threshold crossed but no notifier is configured",
			zap.String("server_id", server.ID),
			zap.String("server_name", server.ServerName))
		return
	}
	alert := notify.Alert{
		ServerID:   server.ID,
		ServerName: server.ServerName,
		Failures:   server.ConsecutiveFailures,
		DetectedAt: time.Now(),
	}
	if err := s.notifier.NotifyServerDown(ctx, alert); err != nil {
		// alerting is best effort, the cycle result does not depend on it
		logger.Error("failed to dispatch escalation", zap.String("server_id", server.ID), zap.Error(err))
	}
}

func NewScanService(servers repository.ServerRepository, history repository.UptimeRecordRepository, checker Checker, tracker *Tracker, workers int, retention time.Duration, deps ScannerDeps, logger *zap.Logger) ScanService {
	if workers < 1 {
		workers = 1
	}
	return &scanService{
		servers:   servers,
		history:   history,
		stats:     deps.Stats,
		checker:   checker,
		tracker:   tracker,
		notifier:  deps.Notifier,
		publisher: deps.Publisher,
		lock:      deps.Lock,
		workers:   workers,
		retention: retention,
		logger:    logger,
	}
}
