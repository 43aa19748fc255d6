// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import "errors"

var (
	// ErrMalformedEnvelope is returned when the transport document has no
	// Encrypt field in either accepted shape.
	ErrMalformedEnvelope = errors.New("transport document has no Encrypt field")

	ErrUnparsableDocument  = errors.New("inner document is not valid XML")
	ErrMissingMsgType      = errors.New("inner document has no MsgType")
	ErrInvalidNumericField = errors.New("numeric field is not a 64-bit integer")
)
