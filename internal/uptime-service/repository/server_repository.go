package repository

import (
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ServerRepository is the engine's view of the server roster. The roster
// itself is owned by the admin surface, the monitor only reads membership
// and writes back the per-check state columns.
type ServerRepository interface {
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServerById(ctx context.Context, serverId string) (model.Server, error)
	UpdateServerCheckState(ctx context.Context, server model.Server) error
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Order("server_name ASC").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId string) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

// UpdateServerCheckState writes only the columns the monitoring engine owns.
// A map is used so zero values (counter reset, cleared alert flag) are persisted.
func (s *serverRepository) UpdateServerCheckState(ctx context.Context, server model.Server) error {
	result := s.db.WithContext(ctx).Model(&model.Server{}).Where("id = ?", server.ID).Updates(map[string]interface{}{
		"alert_sent":           server.AlertSent,
		"consecutive_failures": server.ConsecutiveFailures,
		"players_max":          server.PlayersMax,
		"players_online":       server.PlayersOnline,
		"status":               server.Status,
		"updated_at":           server.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.UpdateServerCheckState: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.UpdateServerCheckState: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
