package probe

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	a2sInfoRequestHeader   = 0x54 // 'T'
	a2sInfoResponseHeader  = 0x49 // 'I'
	a2sChallengeHeader     = 0x41 // 'A'
	a2sMaxResponseSize     = 4096
	a2sMaxChallengeResends = 2
)

var a2sInfoPayload = append([]byte{0xFF, 0xFF, 0xFF, 0xFF, a2sInfoRequestHeader}, []byte("Source Engine Query\x00")...)

// sourceProber queries Source engine servers with A2S_INFO over UDP,
// answering the challenge handshake newer servers require before they
// reply with the info packet.
type sourceProber struct {
	dialer net.Dialer
}

func NewSourceProber() Prober {
	return &sourceProber{}
}

func (p *sourceProber) Probe(ctx context.Context, address string, port int) (Result, error) {
	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "udp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return Result{}, fmt.Errorf("source probe dial: %w", err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return Result{}, fmt.Errorf("source probe set deadline: %w", err)
		}
	}

	request := a2sInfoPayload
	buf := make([]byte, a2sMaxResponseSize)
	for attempt := 0; attempt <= a2sMaxChallengeResends; attempt++ {
		if _, err = conn.Write(request); err != nil {
			return Result{}, fmt.Errorf("source probe write: %w", err)
		}
		var n int
		n, err = conn.Read(buf)
		if err != nil {
			return Result{}, fmt.Errorf("source probe read: %w", err)
		}
		if n < 5 || binary.LittleEndian.Uint32(buf[:4]) != 0xFFFFFFFF {
			return Result{}, fmt.Errorf("source probe: malformed response header")
		}
		switch buf[4] {
		case a2sChallengeHeader:
			if n < 9 {
				return Result{}, fmt.Errorf("source probe: short challenge response")
			}
			request = append(append([]byte{}, a2sInfoPayload...), buf[5:9]...)
		case a2sInfoResponseHeader:
			return parseA2SInfo(buf[5:n], time.Since(start))
		default:
			return Result{}, fmt.Errorf("source probe: unexpected response header 0x%02x", buf[4])
		}
	}
	return Result{}, fmt.Errorf("source probe: challenge loop exceeded %d resends", a2sMaxChallengeResends)
}

// parseA2SInfo walks the A2S_INFO reply far enough to reach the player
// counts: protocol byte, four null-terminated strings, app id, then
// players and max players.
func parseA2SInfo(payload []byte, latency time.Duration) (Result, error) {
	r := bytes.NewBuffer(payload)
	if _, err := r.ReadByte(); err != nil { // protocol version
		return Result{}, fmt.Errorf("source probe: truncated info response")
	}
	for i := 0; i < 4; i++ { // name, map, folder, game
		if _, err := r.ReadString(0x00); err != nil {
			return Result{}, fmt.Errorf("source probe: truncated info response")
		}
	}
	fixed := make([]byte, 4) // app id (2), players (1), max players (1)
	if n, err := r.Read(fixed); err != nil || n < 4 {
		return Result{}, fmt.Errorf("source probe: truncated info response")
	}
	return Result{
		Online:        true,
		PlayersOnline: int(fixed[2]),
		PlayersMax:    int(fixed[3]),
		Latency:       latency,
	}, nil
}
