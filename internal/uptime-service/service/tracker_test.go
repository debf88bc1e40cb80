package service

import (
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Advance(t *testing.T) {
	testCases := []struct {
		name             string
		threshold        int
		server           model.Server
		result           CheckResult
		expectedFailures int
		expectedStatus   string
		expectedAlert    bool
		expectEscalate   bool
	}{
		{
			name:      "Online verdict resets counter",
			threshold: 5,
			server: model.Server{
				ID:                  "s1",
				Status:              model.ServerStatusOffline,
				ConsecutiveFailures: 7,
				AlertSent:           true,
			},
			result:           CheckResult{Online: true, PlayersOnline: 12, PlayersMax: 64},
			expectedFailures: 0,
			expectedStatus:   model.ServerStatusOnline,
			expectedAlert:    false,
			expectEscalate:   false,
		},
		{
			name:      "Offline below threshold does not escalate",
			threshold: 5,
			server: model.Server{
				ID:                  "s1",
				Status:              model.ServerStatusOnline,
				ConsecutiveFailures: 3,
			},
			result:           CheckResult{Online: false},
			expectedFailures: 4,
			expectedStatus:   model.ServerStatusOffline,
			expectedAlert:    false,
			expectEscalate:   false,
		},
		{
			name:      "Offline crossing threshold escalates",
			threshold: 5,
			server: model.Server{
				ID:                  "s1",
				ConsecutiveFailures: 4,
			},
			result:           CheckResult{Online: false},
			expectedFailures: 5,
			expectedStatus:   model.ServerStatusOffline,
			expectedAlert:    false,
			expectEscalate:   true,
		},
		{
			name:      "Offline past threshold with alert already sent stays quiet",
			threshold: 5,
			server: model.Server{
				ID:                  "s1",
				ConsecutiveFailures: 5,
				AlertSent:           true,
			},
			result:           CheckResult{Online: false},
			expectedFailures: 6,
			expectedStatus:   model.ServerStatusOffline,
			expectedAlert:    true,
			expectEscalate:   false,
		},
		{
			name:      "Offline zeroes player counts",
			threshold: 3,
			server: model.Server{
				ID:            "s1",
				PlayersOnline: 17,
				PlayersMax:    32,
			},
			result:           CheckResult{Online: false},
			expectedFailures: 1,
			expectedStatus:   model.ServerStatusOffline,
			expectedAlert:    false,
			expectEscalate:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := NewTracker(tc.threshold)
			updated, escalate := tracker.Advance(tc.server, tc.result)

			assert.Equal(t, tc.expectedFailures, updated.ConsecutiveFailures)
			assert.Equal(t, tc.expectedStatus, updated.Status)
			assert.Equal(t, tc.expectedAlert, updated.AlertSent)
			assert.Equal(t, tc.expectEscalate, escalate)
			if !tc.result.Online {
				assert.Equal(t, 0, updated.PlayersOnline)
			}
			assert.False(t, updated.UpdatedAt.IsZero())
		})
	}
}

// Full outage lifecycle: five offline cycles escalate exactly once, the
// sixth cycle comes back online and re-arms escalation.
func TestTracker_OutageLifecycle(t *testing.T) {
	tracker := NewTracker(5)
	server := model.Server{ID: "s1", Status: model.ServerStatusOnline}

	escalations := 0
	for cycle := 1; cycle <= 5; cycle++ {
		var escalate bool
		server, escalate = tracker.Advance(server, CheckResult{Online: false})
		if escalate {
			escalations++
			server.AlertSent = true
		}
		assert.Equal(t, cycle, server.ConsecutiveFailures)
	}
	assert.Equal(t, 1, escalations)
	assert.True(t, server.AlertSent)

	// two more offline cycles must not re-escalate
	for cycle := 0; cycle < 2; cycle++ {
		var escalate bool
		server, escalate = tracker.Advance(server, CheckResult{Online: false})
		assert.False(t, escalate)
	}
	assert.Equal(t, 7, server.ConsecutiveFailures)

	// recovery resets everything
	server, escalate := tracker.Advance(server, CheckResult{Online: true, PlayersOnline: 3, PlayersMax: 20})
	assert.False(t, escalate)
	assert.Equal(t, 0, server.ConsecutiveFailures)
	assert.False(t, server.AlertSent)
	assert.Equal(t, model.ServerStatusOnline, server.Status)
	assert.Equal(t, 3, server.PlayersOnline)

	// next outage can escalate again
	for cycle := 1; cycle <= 5; cycle++ {
		var esc bool
		server, esc = tracker.Advance(server, CheckResult{Online: false})
		if cycle == 5 {
			assert.True(t, esc)
		} else {
			assert.False(t, esc)
		}
	}
}
