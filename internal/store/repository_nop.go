// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/wecom-callback/models"
)

// nopDeliveryRepository discards records. It is used when no journal DSN is
// configured.
type nopDeliveryRepository struct{}

// NewNopDeliveryRepository returns a [DeliveryRepository] that stores nothing.
func NewNopDeliveryRepository() DeliveryRepository {
	return nopDeliveryRepository{}
}

func (nopDeliveryRepository) SaveDelivery(context.Context, models.DeliveryRecord) error {
	return nil
}

func (nopDeliveryRepository) ListDeliveries(context.Context, models.DeliveryFilter) ([]models.DeliveryRecord, error) {
	return []models.DeliveryRecord{}, nil
}
