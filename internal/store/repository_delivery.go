// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/utils"
	"github.com/MKhiriev/wecom-callback/models"
)

// retryDelays lists the waits between attempts of a retryable insert.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

// deliveryRepository is the SQL implementation of [DeliveryRepository]
// shared by the PostgreSQL and SQLite backends.
type deliveryRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewDeliveryRepository constructs a [DeliveryRepository] on top of db.
func NewDeliveryRepository(db *DB, log *logger.Logger) DeliveryRepository {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating delivery repository")
	return &deliveryRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

// SaveDelivery implements [DeliveryRepository]. Retryable driver errors are
// retried with the delays in retryDelays.
func (r *deliveryRepository) SaveDelivery(ctx context.Context, rec models.DeliveryRecord) error {
	log := logger.FromContextOr(ctx, r.logger)

	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	}
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = time.Now().UTC()
	}

	var msgID sql.NullInt64
	if rec.MsgID != nil {
		msgID = sql.NullInt64{Int64: *rec.MsgID, Valid: true}
	}

	query, args, err := r.db.builder().
		Insert(deliveriesTable).
		Columns(deliveryColumns...).
		Values(
			rec.ID,
			rec.TraceID,
			msgID,
			rec.ToUserName,
			rec.FromUserName,
			rec.MsgType,
			rec.Event,
			rec.ChangeType,
			rec.Kind,
			string(rec.Outcome),
			rec.Reason,
			rec.ReceivedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 0; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if r.db.classify(err) != Retryable || attempt >= len(retryDelays) {
			log.Err(err).Str("func", "*deliveryRepository.SaveDelivery").Int("attempts", attempt+1).Msg("error saving delivery")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Warn().Err(err).Int("attempt", attempt+1).Msg("retryable error saving delivery")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(retryDelays[attempt]):
		}
	}
}

// ListDeliveries implements [DeliveryRepository].
func (r *deliveryRepository) ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.DeliveryRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	builder := r.db.builder().
		Select(deliveryColumns...).
		From(deliveriesTable).
		OrderBy("received_at DESC", "delivery_id DESC").
		Limit(limit)

	if filter.Outcome != "" {
		builder = builder.Where(sq.Eq{"outcome": string(filter.Outcome)})
	}
	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": filter.Kind})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*deliveryRepository.ListDeliveries").Msg("error querying deliveries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.DeliveryRecord, 0)
	for rows.Next() {
		var rec models.DeliveryRecord
		var msgID sql.NullInt64
		var outcome string

		if err := rows.Scan(
			&rec.ID,
			&rec.TraceID,
			&msgID,
			&rec.ToUserName,
			&rec.FromUserName,
			&rec.MsgType,
			&rec.Event,
			&rec.ChangeType,
			&rec.Kind,
			&outcome,
			&rec.Reason,
			&rec.ReceivedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if msgID.Valid {
			v := msgID.Int64
			rec.MsgID = &v
		}
		rec.Outcome = models.DeliveryOutcome(outcome)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
