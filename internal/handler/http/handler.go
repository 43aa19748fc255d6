// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/service"
	"github.com/MKhiriev/wecom-callback/models"
)

type Handler struct {
	services    *service.Services
	maxBodySize int64
	buildInfo   models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	maxBodySize := cfg.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = config.DefaultMaxBodySize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		maxBodySize: maxBodySize,
		buildInfo:   buildInfo,
		logger:      logger,
	}
}
