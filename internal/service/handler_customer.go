// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/wecom-callback/internal/envelope"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/models"
)

// CustomerHandlers reacts to external contact changes: a newly added
// customer receives a welcome message with a personal H5 link.
type CustomerHandlers struct {
	h5BaseURL string
	sender    WelcomeSender

	logger *logger.Logger
}

func NewCustomerHandlers(h5BaseURL string, sender WelcomeSender, log *logger.Logger) *CustomerHandlers {
	return &CustomerHandlers{
		h5BaseURL: strings.TrimSpace(h5BaseURL),
		sender:    sender,
		logger:    log,
	}
}

// Register binds the customer handlers to r.
func (h *CustomerHandlers) Register(r *Registry) *Registry {
	return r.
		RegisterFunc(models.EventKindExternalContactAdd, h.HandleAdd).
		RegisterFunc(models.EventKindExternalContactDelete, h.HandleDelete).
		RegisterFunc(models.EventKindExternalContactDelFollowUser, h.HandleDelete)
}

// HandleAdd sends the welcome message for an add_external_contact event.
// An event without ExternalUserID is ignored. Without a WelcomeCode the
// link is logged so staff can send it by hand.
func (h *CustomerHandlers) HandleAdd(ctx context.Context, event *models.CallbackEvent) error {
	log := logger.FromContextOr(ctx, h.logger)

	added, err := envelope.ParseCustomerAddEvent(event.Raw)
	if err != nil {
		return fmt.Errorf("parse customer add event: %w", err)
	}

	if added.ExternalUserID == "" {
		log.Warn().Str("func", "HandleAdd").Msg("customer add event without ExternalUserID")
		return nil
	}

	link := h.BuildH5Link(added.ExternalUserID)
	log = &logger.Logger{Logger: log.With().
		Str("external_user_id", added.ExternalUserID).
		Str("user_id", added.UserID).
		Logger()}

	if added.WelcomeCode == "" {
		log.Warn().Str("func", "HandleAdd").Str("h5_link", link).
			Msg("no welcome code, send the link to the customer manually")
		return nil
	}

	if err = h.sender.SendWelcomeMessage(ctx, added.WelcomeCode, BuildWelcomeMessage(link)); err != nil {
		log.Warn().Err(err).Str("func", "HandleAdd").Str("h5_link", link).
			Msg("welcome message not delivered, send the link to the customer manually")
		return fmt.Errorf("send welcome message: %w", err)
	}

	log.Info().Str("func", "HandleAdd").Msg("welcome message sent")
	return nil
}

// HandleDelete logs the removal of a customer by a staff member or of a
// staff member by a customer.
func (h *CustomerHandlers) HandleDelete(ctx context.Context, event *models.CallbackEvent) error {
	removed, err := envelope.ParseCustomerAddEvent(event.Raw)
	if err != nil {
		return fmt.Errorf("parse customer delete event: %w", err)
	}

	logger.FromContextOr(ctx, h.logger).Info().
		Str("func", "HandleDelete").
		Str("change_type", event.ChangeType).
		Str("external_user_id", removed.ExternalUserID).
		Str("user_id", removed.UserID).
		Msg("external contact removed")
	return nil
}

// BuildH5Link appends the url-escaped external user id to the H5 base URL.
func (h *CustomerHandlers) BuildH5Link(externalUserID string) string {
	return h.h5BaseURL + "?external_userid=" + url.QueryEscape(externalUserID)
}

// BuildWelcomeMessage renders the welcome text around link.
func BuildWelcomeMessage(link string) string {
	return "您好！感谢添加我们的企业微信。\n\n" +
		"请点击下方链接完善您的信息：\n" +
		link + "\n\n" +
		"如有任何问题，欢迎随时联系我们！"
}
