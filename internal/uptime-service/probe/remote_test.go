package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteProber_Probe(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectedOnline bool
		expectedCount  int
		expectedMax    int
		expectError    bool
	}{
		{
			name: "Success Server online",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/play.example.com:25565", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"online":true,"players":{"online":12,"max":100}}`))
			},
			expectedOnline: true,
			expectedCount:  12,
			expectedMax:    100,
		},
		{
			name: "Success API reports server offline",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"online":false}`))
			},
			expectedOnline: false,
		},
		{
			name: "Error API returns non-200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			expectError: true,
		},
		{
			name: "Error API returns malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"online":`))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			prober := NewRemoteProber(ts.URL+"/", 2*time.Second)
			result, err := prober.Probe(context.Background(), "play.example.com", 25565)

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOnline, result.Online)
			assert.Equal(t, tc.expectedCount, result.PlayersOnline)
			assert.Equal(t, tc.expectedMax, result.PlayersMax)
			assert.Greater(t, result.Latency, time.Duration(0))
		})
	}
}

func TestRemoteProber_Probe_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	prober := NewRemoteProber(ts.URL, time.Second)
	_, err := prober.Probe(context.Background(), "play.example.com", 25565)
	assert.Error(t, err)
}
