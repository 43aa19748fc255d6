// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/wecom-callback/models"
)

// innerDocument mirrors the fields consumed from the decrypted document.
// Numeric fields are kept as text so that absence and malformed values can
// be told apart.
type innerDocument struct {
	ToUserName     string `xml:"ToUserName"`
	FromUserName   string `xml:"FromUserName"`
	CreateTime     string `xml:"CreateTime"`
	MsgType        string `xml:"MsgType"`
	Event          string `xml:"Event"`
	ChangeType     string `xml:"ChangeType"`
	MsgID          string `xml:"MsgId"`
	ExternalUserID string `xml:"ExternalUserID"`
	UserID         string `xml:"UserID"`
	State          string `xml:"State"`
	WelcomeCode    string `xml:"WelcomeCode"`
}

func decode(plaintext []byte) (*innerDocument, error) {
	var doc innerDocument
	if err := xml.Unmarshal(plaintext, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsableDocument, err)
	}
	return &doc, nil
}

// ParseEvent parses a decrypted inner document into a [models.CallbackEvent].
//
// Absent fields stay empty (or nil for CreateTime and MsgId). A MsgType that
// is missing or blank yields [ErrMissingMsgType]; the event is still returned
// so callers can log what was received. The event kind is resolved once here.
func ParseEvent(plaintext []byte) (*models.CallbackEvent, error) {
	doc, err := decode(plaintext)
	if err != nil {
		return nil, err
	}

	createTime, err := parseOptionalInt(doc.CreateTime)
	if err != nil {
		return nil, fmt.Errorf("CreateTime: %w", err)
	}
	msgID, err := parseOptionalInt(doc.MsgID)
	if err != nil {
		return nil, fmt.Errorf("MsgId: %w", err)
	}

	event := &models.CallbackEvent{
		ToUserName:   strings.TrimSpace(doc.ToUserName),
		FromUserName: strings.TrimSpace(doc.FromUserName),
		CreateTime:   createTime,
		MsgType:      strings.TrimSpace(doc.MsgType),
		Event:        strings.TrimSpace(doc.Event),
		ChangeType:   strings.TrimSpace(doc.ChangeType),
		MsgID:        msgID,
		Raw:          plaintext,
	}
	event.Kind = models.ResolveEventKind(event.MsgType, event.Event, event.ChangeType)

	if event.MsgType == "" {
		return event, ErrMissingMsgType
	}

	return event, nil
}

// ParseCustomerAddEvent extracts the external contact fields of an
// add_external_contact notification.
func ParseCustomerAddEvent(plaintext []byte) (*models.CustomerAddEvent, error) {
	doc, err := decode(plaintext)
	if err != nil {
		return nil, err
	}

	createTime, err := parseOptionalInt(doc.CreateTime)
	if err != nil {
		return nil, fmt.Errorf("CreateTime: %w", err)
	}

	return &models.CustomerAddEvent{
		ExternalUserID: strings.TrimSpace(doc.ExternalUserID),
		UserID:         strings.TrimSpace(doc.UserID),
		State:          strings.TrimSpace(doc.State),
		WelcomeCode:    strings.TrimSpace(doc.WelcomeCode),
		CreateTime:     createTime,
	}, nil
}

func parseOptionalInt(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumericField, s)
	}
	return &v, nil
}
