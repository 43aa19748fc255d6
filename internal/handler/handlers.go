// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/handler/http"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/service"
	"github.com/MKhiriev/wecom-callback/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, buildInfo, logger)}, nil
}
