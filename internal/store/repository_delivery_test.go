// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/utils"
	"github.com/MKhiriev/wecom-callback/models"
)

func newTestDeliveryRepo(t *testing.T, dialect Dialect) (*deliveryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	l := logger.Nop()
	repo := &deliveryRepository{
		db:     &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: l},
		ids:    utils.NewUUIDGenerator(),
		logger: l,
	}
	return repo, mock
}

func noRetryDelays(t *testing.T) {
	t.Helper()
	old := retryDelays
	retryDelays = []time.Duration{0, 0, 0}
	t.Cleanup(func() { retryDelays = old })
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sampleRecord() models.DeliveryRecord {
	msgID := int64(1234567890)
	return models.DeliveryRecord{
		ID:           "0190b3f0-0000-7000-8000-000000000001",
		TraceID:      "trace-1",
		MsgID:        &msgID,
		ToUserName:   "ww5823bf96d3bd56c7",
		FromUserName: "sys",
		MsgType:      "event",
		Event:        "change_external_contact",
		ChangeType:   "add_external_contact",
		Kind:         "external_contact_add",
		Outcome:      models.DeliveryAccepted,
		ReceivedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ─── SaveDelivery ─────────────────────────────────────────────────────────────

func TestSaveDelivery_Postgres(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)
	rec := sampleRecord()

	mock.ExpectExec(`INSERT INTO deliveries \(delivery_id,trace_id,msg_id,.*\) VALUES \(\$1,\$2,\$3,.*\$12\)`).
		WithArgs(rec.ID, rec.TraceID, sql.NullInt64{Int64: *rec.MsgID, Valid: true}, rec.ToUserName, rec.FromUserName,
			rec.MsgType, rec.Event, rec.ChangeType, rec.Kind, "accepted", "", rec.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDelivery(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDelivery_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectSQLite)
	rec := sampleRecord()
	rec.MsgID = nil

	mock.ExpectExec(`INSERT INTO deliveries .* VALUES \(\?,\?,\?,\?,\?,\?,\?,\?,\?,\?,\?,\?\)`).
		WithArgs(rec.ID, rec.TraceID, sql.NullInt64{}, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "accepted", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveDelivery(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDelivery_FillsIDAndTime(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)
	rec := sampleRecord()
	rec.ID = ""
	rec.ReceivedAt = time.Time{}

	var gotID any
	mock.ExpectExec(`INSERT INTO deliveries`).
		WithArgs(idCapture{&gotID}, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), notZeroTime{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDelivery(context.Background(), rec))
	assert.NotEmpty(t, gotID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDelivery_RetriesTransientErrors(t *testing.T) {
	noRetryDelays(t)
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)

	mock.ExpectExec(`INSERT INTO deliveries`).WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec(`INSERT INTO deliveries`).WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec(`INSERT INTO deliveries`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDelivery(context.Background(), sampleRecord()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDelivery_GivesUpAfterThreeRetries(t *testing.T) {
	noRetryDelays(t)
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)

	for i := 0; i < 4; i++ {
		mock.ExpectExec(`INSERT INTO deliveries`).WillReturnError(pgError(pgerrcode.SerializationFailure))
	}

	err := repo.SaveDelivery(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDelivery_NonRetryable(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)

	mock.ExpectExec(`INSERT INTO deliveries`).WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveDelivery(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.UniqueViolation, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDelivery_ContextCancelledDuringBackoff(t *testing.T) {
	old := retryDelays
	retryDelays = []time.Duration{time.Hour}
	t.Cleanup(func() { retryDelays = old })

	repo, mock := newTestDeliveryRepo(t, DialectPostgres)
	mock.ExpectExec(`INSERT INTO deliveries`).WillReturnError(pgError(pgerrcode.CannotConnectNow))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveDelivery(ctx, sampleRecord())
	assert.ErrorIs(t, err, context.Canceled)
}

// ─── ListDeliveries ───────────────────────────────────────────────────────────

func TestListDeliveries_Filters(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)
	rec := sampleRecord()

	rows := sqlmock.NewRows(deliveryColumns).
		AddRow(rec.ID, rec.TraceID, *rec.MsgID, rec.ToUserName, rec.FromUserName, rec.MsgType, rec.Event,
			rec.ChangeType, rec.Kind, "signature_mismatch", "bad signature", rec.ReceivedAt).
		AddRow("id-2", "", nil, "", "", "", "", "", "unrecognized", "signature_mismatch", "", rec.ReceivedAt)

	mock.ExpectQuery(`SELECT delivery_id,.* FROM deliveries WHERE outcome = \$1 AND kind = \$2 ORDER BY received_at DESC, delivery_id DESC LIMIT 5`).
		WithArgs("signature_mismatch", "external_contact_add").
		WillReturnRows(rows)

	got, err := repo.ListDeliveries(context.Background(), models.DeliveryFilter{
		Outcome: models.DeliverySignatureMismatch,
		Kind:    "external_contact_add",
		Limit:   5,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, rec.ID, got[0].ID)
	require.NotNil(t, got[0].MsgID)
	assert.Equal(t, *rec.MsgID, *got[0].MsgID)
	assert.Equal(t, models.DeliverySignatureMismatch, got[0].Outcome)
	assert.Equal(t, "bad signature", got[0].Reason)
	assert.Nil(t, got[1].MsgID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDeliveries_DefaultLimit(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectSQLite)

	mock.ExpectQuery(`SELECT .* FROM deliveries ORDER BY received_at DESC, delivery_id DESC LIMIT 100`).
		WillReturnRows(sqlmock.NewRows(deliveryColumns))

	got, err := repo.ListDeliveries(context.Background(), models.DeliveryFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDeliveries_QueryError(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListDeliveries(context.Background(), models.DeliveryFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListDeliveries_ScanError(t *testing.T) {
	repo, mock := newTestDeliveryRepo(t, DialectPostgres)

	rows := sqlmock.NewRows(deliveryColumns).
		AddRow("id", "", "not-a-number", "", "", "", "", "", "", "accepted", "", time.Now())
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	_, err := repo.ListDeliveries(context.Background(), models.DeliveryFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─── helpers ──────────────────────────────────────────────────────────────────

// idCapture is a sqlmock.Argument that records the value it was matched
// against.
type idCapture struct{ dst *any }

func (c idCapture) Match(v driver.Value) bool {
	*c.dst = v
	s, ok := v.(string)
	return ok && s != ""
}

type notZeroTime struct{}

func (notZeroTime) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	return ok && !ts.IsZero()
}
