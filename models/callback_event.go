// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CallbackEvent is the structured form of a decrypted inner document.
//
// String fields are empty when the element is absent. CreateTime and MsgID
// are nil when absent. Kind is resolved from the raw triple during parsing.
type CallbackEvent struct {
	// ToUserName is the corp id the event was addressed to.
	ToUserName string

	// FromUserName is the sender (usually "sys" for system events).
	FromUserName string

	// CreateTime is the unix time the platform created the event.
	CreateTime *int64

	MsgType    string
	Event      string
	ChangeType string

	// MsgID is only present on message (non-event) callbacks.
	MsgID *int64

	// Kind is the dispatch variant resolved from MsgType, Event and ChangeType.
	Kind EventKind

	// Raw holds the complete decrypted document so handlers can read
	// event-specific elements.
	Raw []byte
}

// CustomerAddEvent carries the event-specific elements of an
// add_external_contact callback.
type CustomerAddEvent struct {
	// ExternalUserID identifies the customer (external contact).
	ExternalUserID string

	// UserID identifies the staff member the customer was added by.
	UserID string

	// State is the custom channel parameter attached to the contact-me link.
	State string

	// WelcomeCode allows exactly one welcome message within 20 seconds.
	WelcomeCode string

	CreateTime *int64
}
