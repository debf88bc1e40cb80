package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// remoteProber asks a third-party status API about a server instead of
// talking to the server directly. It exists for infrastructure resilience:
// the hosting platform may block direct egress to arbitrary game ports
// while plain HTTPS to the status API still works. A definitive reply from
// the API is authoritative, including "offline".
type remoteProber struct {
	client  *http.Client
	baseURL string
}

func NewRemoteProber(baseURL string, timeout time.Duration) Prober {
	return &remoteProber{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *remoteProber) Probe(ctx context.Context, address string, port int) (Result, error) {
	start := time.Now()
	requestURL := fmt.Sprintf("%s/%s:%d", p.baseURL, address, port)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("remote probe creating request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("remote probe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("remote probe: status API returned %d", resp.StatusCode)
	}

	var body struct {
		Online  bool `json:"online"`
		Players struct {
			Online int `json:"online"`
			Max    int `json:"max"`
		} `json:"players"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("remote probe decode response: %w", err)
	}

	return Result{
		Online:        body.Online,
		PlayersOnline: body.Players.Online,
		PlayersMax:    body.Players.Max,
		Latency:       time.Since(start),
	}, nil
}
