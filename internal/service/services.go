// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the callback dispatcher.
//
// [CallbackService] selects between the URL verification handshake and event
// delivery, authenticates and decrypts the request with the crypto package,
// parses it with the envelope package and routes the resulting event through
// a [Registry] to an [EventHandler]. Handlers and journal writes run on a
// [workers.Submitter] so the acknowledgement is never delayed.
package service

import (
	"fmt"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/crypto"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/store"
	"github.com/MKhiriev/wecom-callback/internal/workers"
)

type Services struct {
	CallbackService CallbackService
}

// NewServices builds the crypto primitives from cfg and wires the callback
// service with the customer handlers registered.
func NewServices(cfg config.App, storages *store.Storages, submitter workers.Submitter, sender WelcomeSender, log *logger.Logger) (*Services, error) {
	codec, err := crypto.NewMessageCodec(cfg.EncodingAESKey, cfg.CorpID)
	if err != nil {
		return nil, fmt.Errorf("build message codec: %w", err)
	}
	verifier := crypto.NewSignatureVerifier(cfg.Token)

	registry := NewCustomerHandlers(cfg.H5BaseURL, sender, log).Register(NewRegistry())

	var journal store.DeliveryRepository
	if storages != nil {
		journal = storages.DeliveryRepository
	}

	return &Services{
		CallbackService: NewCallbackService(verifier, codec, registry, journal, submitter, log),
	}, nil
}
