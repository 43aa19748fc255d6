// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeliveryOutcome is the terminal classification of a single delivery push.
type DeliveryOutcome string

const (
	DeliveryAccepted          DeliveryOutcome = "accepted"
	DeliveryMalformedEnvelope DeliveryOutcome = "malformed_envelope"
	DeliverySignatureMismatch DeliveryOutcome = "signature_mismatch"
	DeliveryDecryptionFailed  DeliveryOutcome = "decryption_failed"
	DeliveryUnparsableEvent   DeliveryOutcome = "unparsable_event"
	DeliveryHandlerFailed     DeliveryOutcome = "handler_failed"
	DeliveryDropped           DeliveryOutcome = "dropped"
)

// DeliveryRecord is one row of the delivery journal.
type DeliveryRecord struct {
	ID           string          `json:"id"`
	TraceID      string          `json:"trace_id,omitempty"`
	MsgID        *int64          `json:"msg_id,omitempty"`
	ToUserName   string          `json:"to_user_name,omitempty"`
	FromUserName string          `json:"from_user_name,omitempty"`
	MsgType      string          `json:"msg_type,omitempty"`
	Event        string          `json:"event,omitempty"`
	ChangeType   string          `json:"change_type,omitempty"`
	Kind         string          `json:"kind,omitempty"`
	Outcome      DeliveryOutcome `json:"outcome"`
	Reason       string          `json:"reason,omitempty"`
	ReceivedAt   time.Time       `json:"received_at"`
}

// DeliveryFilter narrows a journal listing. Zero values mean "any".
type DeliveryFilter struct {
	Outcome DeliveryOutcome
	Kind    string
	Limit   uint64
}
