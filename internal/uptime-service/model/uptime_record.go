package model

import "time"

// CheckMethod records which probing method produced a verdict.
type CheckMethod string

const (
	MethodNative    CheckMethod = "native"
	MethodRemoteAPI CheckMethod = "remote-api"
	MethodNone      CheckMethod = "none"
)

// UptimeRecord is one append-only time-series sample per check per server.
// Rows are never updated, only pruned once they age past the retention window.
type UptimeRecord struct {
	ID            uint64 `gorm:"primaryKey"`
	ServerID      string `gorm:"index:idx_uptime_records_server_created"`
	Online        bool
	PlayersOnline int
	PlayersMax    int
	LatencyMs     *int64 // nil means no response was received
	Method        CheckMethod
	CreatedAt     time.Time `gorm:"index:idx_uptime_records_server_created"`
}
