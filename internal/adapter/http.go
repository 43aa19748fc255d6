// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/utils"
	"github.com/MKhiriev/wecom-callback/models"
)

const (
	getTokenPath       = "/cgi-bin/gettoken"
	sendWelcomeMsgPath = "/cgi-bin/externalcontact/send_welcome_msg"
)

type httpPlatformAdapter struct {
	client *utils.HTTPClient

	corpID        string
	contactSecret string

	logger *logger.Logger
}

// NewHTTPPlatformAdapter constructs a resty implementation of
// [PlatformAdapter]. It normalises adapterCfg.BaseURL (https is assumed
// when no scheme is given) and instruments the transport with otelhttp.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPPlatformAdapter(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (PlatformAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout).
		WithTransport(otelhttp.NewTransport(http.DefaultTransport))

	return &httpPlatformAdapter{
		client:        client,
		corpID:        appCfg.CorpID,
		contactSecret: appCfg.ContactSecret,
		logger:        log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AccessToken implements [PlatformAdapter]. It calls
// GET /cgi-bin/gettoken?corpid=...&corpsecret=...
func (a *httpPlatformAdapter) AccessToken(ctx context.Context) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("corpid", a.corpID).
		SetQueryParam("corpsecret", a.contactSecret).
		Get(getTokenPath)
	if err != nil {
		return "", fmt.Errorf("gettoken request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.AccessTokenResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode gettoken response: %w", err)
	}
	if err = mapPlatformError(result.PlatformResponse); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", ErrEmptyAccessToken
	}

	return result.AccessToken, nil
}

// SendWelcomeMessage implements [PlatformAdapter]. A new access token is
// requested for every call, then the text is posted to
// POST /cgi-bin/externalcontact/send_welcome_msg?access_token=...
func (a *httpPlatformAdapter) SendWelcomeMessage(ctx context.Context, welcomeCode, content string) error {
	token, err := a.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("send welcome message: %w", err)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetHeader("Content-Type", "application/json").
		SetBody(models.WelcomeMessageRequest{
			WelcomeCode: welcomeCode,
			Text:        models.TextContent{Content: content},
		}).
		Post(sendWelcomeMsgPath)
	if err != nil {
		return fmt.Errorf("send_welcome_msg request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var result models.PlatformResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("decode send_welcome_msg response: %w", err)
	}
	if err = mapPlatformError(result); err != nil {
		return err
	}

	logger.FromContextOr(ctx, a.logger).Debug().Str("func", "SendWelcomeMessage").Msg("welcome message sent")
	return nil
}
