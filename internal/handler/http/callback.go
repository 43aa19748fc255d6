// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/service"
	"github.com/MKhiriev/wecom-callback/internal/utils"
	"github.com/MKhiriev/wecom-callback/models"
)

// Query parameter names of the callback URL.
const (
	paramMsgSignature = "msg_signature"
	paramTimestamp    = "timestamp"
	paramNonce        = "nonce"
	paramEchoStr      = "echostr"
)

func callbackQuery(r *http.Request) models.CallbackQuery {
	q := r.URL.Query()
	return models.CallbackQuery{
		MsgSignature: q.Get(paramMsgSignature),
		Timestamp:    q.Get(paramTimestamp),
		Nonce:        q.Get(paramNonce),
		EchoStr:      q.Get(paramEchoStr),
	}
}

// verifyURL answers the handshake with the decrypted echostr, or "fail".
func (h *Handler) verifyURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := callbackQuery(r)
	if !query.IsHandshakeComplete() {
		log.Warn().Str("func", "*Handler.verifyURL").Msg("handshake with missing query parameters")
		utils.WritePlainText(w, service.AckFail, http.StatusOK)
		return
	}

	echo, err := h.services.CallbackService.VerifyURL(r.Context(), query)
	if err != nil {
		utils.WritePlainText(w, service.AckFail, http.StatusOK)
		return
	}

	utils.WritePlainText(w, echo, http.StatusOK)
}

// receiveEvent acknowledges an event push. The body is capped at
// maxBodySize; an unreadable or oversized body is passed on as empty and
// ends up journaled as a malformed envelope.
func (h *Handler) receiveEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.receiveEvent").Int64("max_body_size", h.maxBodySize).Msg("error reading callback body")
		body = nil
	}

	query := callbackQuery(r)
	if !query.IsDeliveryComplete() {
		log.Warn().Str("func", "*Handler.receiveEvent").Msg("event push with missing query parameters")
	}

	ack := h.services.CallbackService.HandleDelivery(r.Context(), query, body)
	utils.WritePlainText(w, ack, http.StatusOK)
}
