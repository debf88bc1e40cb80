package model

import "time"

const (
	ServerStatusOnline  = "online"
	ServerStatusOffline = "offline"
	ServerStatusPending = "pending"
)

// GameType selects the native wire protocol used to probe a server.
type GameType string

const (
	GameMinecraft GameType = "minecraft"
	GameSource    GameType = "source"
)

type Server struct {
	ID                  string `gorm:"default:(-)"`
	ServerName          string
	Address             string
	Port                int
	Game                GameType
	Maintenance         bool
	Status              string
	PlayersOnline       int
	PlayersMax          int
	ConsecutiveFailures int
	AlertSent           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
