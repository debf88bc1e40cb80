package repository

import (
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UptimeRecordRepository is the append-only check history. Records are
// written once per check per server and removed only by retention pruning.
type UptimeRecordRepository interface {
	AppendRecord(ctx context.Context, record model.UptimeRecord) (model.UptimeRecord, error)
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type uptimeRecordRepository struct {
	db *gorm.DB
}

func (u *uptimeRecordRepository) AppendRecord(ctx context.Context, record model.UptimeRecord) (model.UptimeRecord, error) {
	result := u.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			// server row was deleted between roster load and history append
			return record, fmt.Errorf("UptimeRecordRepository.AppendRecord: %w", apperrors.ErrServerNotFound)
		}
		return record, fmt.Errorf("UptimeRecordRepository.AppendRecord: %w", result.Error)
	}
	return record, nil
}

// PruneOlderThan deletes aged records and is idempotent, running it twice
// with the same cutoff removes nothing the second time.
func (u *uptimeRecordRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := u.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.UptimeRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("UptimeRecordRepository.PruneOlderThan: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func NewUptimeRecordRepository(db *gorm.DB) UptimeRecordRepository {
	return &uptimeRecordRepository{
		db: db,
	}
}
