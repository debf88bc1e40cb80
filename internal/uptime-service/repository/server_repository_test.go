package repository

import (
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func serverColumns() []string {
	return []string{"id", "server_name", "address", "port", "game", "maintenance", "status",
		"players_online", "players_max", "consecutive_failures", "alert_sent", "created_at", "updated_at"}
}

func TestGetServers(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedCount int
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(serverColumns()).
					AddRow("id-1", "Survival EU", "mc.example.com", 25565, "minecraft", false, "online",
						4, 64, 0, false, time.Now(), time.Now()).
					AddRow("id-2", "Arena US", "cs.example.com", 27015, "source", true, "offline",
						0, 32, 3, false, time.Now(), time.Now())
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" ORDER BY server_name ASC`)).
					WillReturnRows(rows)
			},
			expectedCount: 2,
			expectedError: nil,
		},
		{
			name: "Error Database failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" ORDER BY server_name ASC`)).
					WillReturnError(testErr)
			},
			expectedCount: 0,
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			tc.mockSetup(mock)

			repo := NewServerRepository(db)
			servers, err := repo.GetServers(context.Background())

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, servers, tc.expectedCount)
				assert.Equal(t, "Survival EU", servers[0].ServerName)
				assert.Equal(t, model.GameMinecraft, servers[0].Game)
				assert.True(t, servers[1].Maintenance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetServerById(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(serverColumns()).
					AddRow("id-1", "Survival EU", "mc.example.com", 25565, "minecraft", false, "online",
						4, 64, 0, false, time.Now(), time.Now())
				mock.ExpectQuery(`SELECT \* FROM "servers" WHERE id = \$1`).
					WithArgs("id-1", 1).
					WillReturnRows(rows)
			},
			expectedError: nil,
		},
		{
			name: "Error Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "servers" WHERE id = \$1`).
					WithArgs("id-1", 1).
					WillReturnRows(sqlmock.NewRows(serverColumns()))
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name: "Error Database failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "servers" WHERE id = \$1`).
					WithArgs("id-1", 1).
					WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			tc.mockSetup(mock)

			repo := NewServerRepository(db)
			server, err := repo.GetServerById(context.Background(), "id-1")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "id-1", server.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateServerCheckState(t *testing.T) {
	testErr := errors.New("test error")
	updateSQL := regexp.QuoteMeta(`UPDATE "servers" SET "alert_sent"=$1,"consecutive_failures"=$2,"players_max"=$3,"players_online"=$4,"status"=$5,"updated_at"=$6 WHERE id = $7`)
	server := model.Server{
		ID:                  "id-1",
		Status:              model.ServerStatusOffline,
		PlayersOnline:       0,
		PlayersMax:          64,
		ConsecutiveFailures: 3,
		AlertSent:           false,
		UpdatedAt:           time.Now(),
	}

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).
					WithArgs(server.AlertSent, server.ConsecutiveFailures, server.PlayersMax,
						server.PlayersOnline, server.Status, sqlmock.AnyArg(), server.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name: "Error Server not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name: "Error Database failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			tc.mockSetup(mock)

			repo := NewServerRepository(db)
			err := repo.UpdateServerCheckState(context.Background(), server)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
