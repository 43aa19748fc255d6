// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/wecom-callback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeliveryRepository persists the outcome of every callback delivery so that
// rejected or failing traffic stays visible even though the platform always
// receives "success".
type DeliveryRepository interface {
	// SaveDelivery stores rec. An empty rec.ID is filled with a UUIDv7.
	SaveDelivery(ctx context.Context, rec models.DeliveryRecord) error

	// ListDeliveries returns records matching filter, newest first.
	ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.DeliveryRecord, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
