package probe

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// maxStatusPacketSize bounds the server list ping reply so a misbehaving
// endpoint cannot make us allocate unbounded memory.
const maxStatusPacketSize = 1 << 20

// minecraftProber speaks the Java edition server list ping protocol:
// a handshake with next-state=status followed by a status request, answered
// with a JSON status document that carries the player counts.
type minecraftProber struct {
	dialer net.Dialer
}

func NewMinecraftProber() Prober {
	return &minecraftProber{}
}

func (p *minecraftProber) Probe(ctx context.Context, address string, port int) (Result, error) {
	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return Result{}, fmt.Errorf("minecraft probe dial: %w", err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return Result{}, fmt.Errorf("minecraft probe set deadline: %w", err)
		}
	}

	var handshake bytes.Buffer
	handshake.WriteByte(0x00)       // handshake packet id
	writeVarInt(&handshake, -1)     // protocol version, -1 for a plain status query
	writeVarInt(&handshake, len(address))
	handshake.WriteString(address)
	_ = binary.Write(&handshake, binary.BigEndian, uint16(port))
	writeVarInt(&handshake, 1) // next state: status

	if err = writePacket(conn, handshake.Bytes()); err != nil {
		return Result{}, fmt.Errorf("minecraft probe handshake: %w", err)
	}
	if err = writePacket(conn, []byte{0x00}); err != nil {
		return Result{}, fmt.Errorf("minecraft probe status request: %w", err)
	}

	payload, err := readPacket(bufio.NewReader(conn))
	if err != nil {
		return Result{}, fmt.Errorf("minecraft probe status response: %w", err)
	}
	latency := time.Since(start)

	body := bytes.NewReader(payload)
	packetID, err := readVarInt(body)
	if err != nil {
		return Result{}, fmt.Errorf("minecraft probe status response: %w", err)
	}
	if packetID != 0x00 {
		return Result{}, fmt.Errorf("minecraft probe: unexpected packet id 0x%02x", packetID)
	}
	jsonLen, err := readVarInt(body)
	if err != nil {
		return Result{}, fmt.Errorf("minecraft probe status response: %w", err)
	}
	if jsonLen < 0 || jsonLen > body.Len() {
		return Result{}, fmt.Errorf("minecraft probe: invalid status length %d", jsonLen)
	}
	doc := make([]byte, jsonLen)
	if _, err = io.ReadFull(body, doc); err != nil {
		return Result{}, fmt.Errorf("minecraft probe status response: %w", err)
	}

	var status struct {
		Players struct {
			Online int `json:"online"`
			Max    int `json:"max"`
		} `json:"players"`
	}
	if err = json.Unmarshal(doc, &status); err != nil {
		return Result{}, fmt.Errorf("minecraft probe decode status: %w", err)
	}

	return Result{
		Online:        true,
		PlayersOnline: status.Players.Online,
		PlayersMax:    status.Players.Max,
		Latency:       latency,
	}, nil
}

func writePacket(w io.Writer, payload []byte) error {
	var framed bytes.Buffer
	writeVarInt(&framed, len(payload))
	framed.Write(payload)
	_, err := w.Write(framed.Bytes())
	return err
}

func readPacket(r *bufio.Reader) ([]byte, error) {
	length, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if length <= 0 || length > maxStatusPacketSize {
		return nil, fmt.Errorf("invalid packet length %d", length)
	}
	payload := make([]byte, length)
	if _, err = io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func writeVarInt(buf *bytes.Buffer, n int) {
	v := uint32(n)
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

func readVarInt(r io.ByteReader) (int, error) {
	var result uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return int(int32(result)), nil
		}
	}
	return 0, errors.New("varint longer than five bytes")
}
