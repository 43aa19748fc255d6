// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PlatformResponse is the common envelope of every platform REST reply.
type PlatformResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// AccessTokenResponse is the reply of GET /cgi-bin/gettoken.
type AccessTokenResponse struct {
	PlatformResponse
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// WelcomeMessageRequest is the body of POST /cgi-bin/externalcontact/send_welcome_msg.
type WelcomeMessageRequest struct {
	WelcomeCode string      `json:"welcome_code"`
	Text        TextContent `json:"text"`
}

// TextContent is a plain-text message body.
type TextContent struct {
	Content string `json:"content"`
}
