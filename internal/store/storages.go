// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the delivery journal in PostgreSQL (pgx) or SQLite
// (go-sqlite3). Queries are built with squirrel using the placeholder style
// of the selected dialect; the schema is managed by goose migrations.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/logger"
)

// Storages aggregates the repositories used by the services.
type Storages struct {
	DeliveryRepository DeliveryRepository

	db *DB
}

// NewStorages connects to the database configured in cfg, applies
// migrations and constructs the repositories. An empty DSN yields a no-op
// journal.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no journal database configured, deliveries will not be recorded")
		return &Storages{DeliveryRepository: NewNopDeliveryRepository()}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect journal database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DeliveryRepository: NewDeliveryRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
