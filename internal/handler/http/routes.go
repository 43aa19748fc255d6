// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	callbackPath = "/api/wechat/callback"
	healthPath   = "/api/wechat/health"
	versionPath  = "/api/wechat/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Get(callbackPath, h.verifyURL)
	router.Post(callbackPath, h.receiveEvent)

	router.Get(healthPath, h.health)
	router.Get(versionPath, h.version)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
