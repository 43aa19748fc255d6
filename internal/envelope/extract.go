// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"fmt"
	"strings"
)

const (
	cdataOpen  = "<Encrypt><![CDATA["
	cdataClose = "]]></Encrypt>"
	plainOpen  = "<Encrypt>"
	plainClose = "</Encrypt>"
)

// ExtractEncrypt returns the content of the Encrypt field of a transport
// document. The CDATA form is tried first, then the plain element form.
// Returns [ErrMalformedEnvelope] when neither shape is present.
func ExtractEncrypt(document string) (string, error) {
	if v, ok := between(document, cdataOpen, cdataClose); ok {
		return v, nil
	}
	if v, ok := between(document, plainOpen, plainClose); ok {
		return v, nil
	}

	return "", fmt.Errorf("%w: %d bytes inspected", ErrMalformedEnvelope, len(document))
}

// between returns the text between the first occurrence of open and the first
// occurrence of close. Both markers must exist and close must not start
// before the end of open.
func between(s, open, close string) (string, bool) {
	start := strings.Index(s, open)
	end := strings.Index(s, close)
	if start < 0 || end < 0 {
		return "", false
	}

	start += len(open)
	if end < start {
		return "", false
	}

	return s[start:end], true
}
