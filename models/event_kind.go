// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Raw MsgType / Event / ChangeType values emitted by the platform.
const (
	MsgTypeEvent = "event"

	EventChangeExternalContact = "change_external_contact"

	ChangeTypeAddExternalContact     = "add_external_contact"
	ChangeTypeAddHalfExternalContact = "add_half_external_contact"
	ChangeTypeEditExternalContact    = "edit_external_contact"
	ChangeTypeDelExternalContact     = "del_external_contact"
	ChangeTypeDelFollowUser          = "del_follow_user"
)

// EventKind is the closed set of callback variants the dispatcher routes on.
// It is resolved exactly once while parsing the decrypted document, so the
// raw string triple never travels further than the parser.
type EventKind int

const (
	// EventKindUnrecognized is the catch-all for any triple outside the set below.
	EventKindUnrecognized EventKind = iota
	EventKindExternalContactAdd
	EventKindExternalContactAddHalf
	EventKindExternalContactEdit
	EventKindExternalContactDelete
	EventKindExternalContactDelFollowUser
	// EventKindMessage covers every non-event MsgType (text, image, ...).
	EventKindMessage
)

// AllEventKinds lists every variant, catch-all first.
var AllEventKinds = []EventKind{
	EventKindUnrecognized,
	EventKindExternalContactAdd,
	EventKindExternalContactAddHalf,
	EventKindExternalContactEdit,
	EventKindExternalContactDelete,
	EventKindExternalContactDelFollowUser,
	EventKindMessage,
}

// ResolveEventKind maps the (MsgType, Event, ChangeType) triple to its variant.
// An empty msgType resolves to [EventKindUnrecognized].
func ResolveEventKind(msgType, event, changeType string) EventKind {
	switch {
	case msgType == "":
		return EventKindUnrecognized
	case msgType != MsgTypeEvent:
		return EventKindMessage
	case event != EventChangeExternalContact:
		return EventKindUnrecognized
	}

	switch changeType {
	case ChangeTypeAddExternalContact:
		return EventKindExternalContactAdd
	case ChangeTypeAddHalfExternalContact:
		return EventKindExternalContactAddHalf
	case ChangeTypeEditExternalContact:
		return EventKindExternalContactEdit
	case ChangeTypeDelExternalContact:
		return EventKindExternalContactDelete
	case ChangeTypeDelFollowUser:
		return EventKindExternalContactDelFollowUser
	default:
		return EventKindUnrecognized
	}
}

// String returns the stable name used in logs and in the delivery journal.
func (k EventKind) String() string {
	switch k {
	case EventKindExternalContactAdd:
		return "external_contact_add"
	case EventKindExternalContactAddHalf:
		return "external_contact_add_half"
	case EventKindExternalContactEdit:
		return "external_contact_edit"
	case EventKindExternalContactDelete:
		return "external_contact_delete"
	case EventKindExternalContactDelFollowUser:
		return "external_contact_del_follow_user"
	case EventKindMessage:
		return "message"
	default:
		return "unrecognized"
	}
}

// ParseEventKind is the inverse of [EventKind.String]. ok is false for
// unknown names.
func ParseEventKind(name string) (kind EventKind, ok bool) {
	for _, k := range AllEventKinds {
		if k.String() == name {
			return k, true
		}
	}
	return EventKindUnrecognized, false
}
