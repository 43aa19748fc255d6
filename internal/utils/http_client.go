// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
//	client := utils.NewHTTPClient("https://qyapi.weixin.qq.com", 5*time.Second)
//	resp, err := client.R().Get("/cgi-bin/gettoken")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL. A positive timeout
// bounds every request. Each call returns an independent client with its
// own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithTransport replaces the underlying round tripper, e.g. with an
// otelhttp transport.
func (c *HTTPClient) WithTransport(rt http.RoundTripper) *HTTPClient {
	c.SetTransport(rt)
	return c
}
